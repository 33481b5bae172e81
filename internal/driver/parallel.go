package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"spvlift/internal/sr"
)

// Result is the outcome of lifting one file of a batch. A per-file failure
// is recorded here instead of aborting the other files.
type Result struct {
	Path   string
	Module *sr.Module
	Err    error
}

// Options configures a batch lift.
type Options struct {
	// Jobs bounds the number of concurrent lifts, 0 means GOMAXPROCS.
	Jobs int
	// Sink receives progress events. Nil disables reporting.
	Sink ProgressSink
}

// ListModuleFiles returns the sorted list of all *.spm files under dir.
func ListModuleFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".spm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for deterministic result order.
	sort.Strings(files)
	return files, nil
}

// LiftDir lifts every *.spm file under dir in parallel. Results come back
// in sorted path order regardless of completion order. Each file gets its
// own conversion pass; only context cancellation aborts the batch.
func LiftDir(ctx context.Context, dir string, opts Options) ([]Result, error) {
	files, err := ListModuleFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(evt Event) {
		if opts.Sink != nil {
			opts.Sink.OnEvent(evt)
		}
	}
	for _, path := range files {
		emit(Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			emit(Event{File: path, Stage: StageLift, Status: StatusWorking})

			m, err := Lift(path)
			results[i] = Result{Path: path, Module: m, Err: err}

			status := StatusDone
			if err != nil {
				status = StatusError
			}
			emit(Event{File: path, Stage: StageLift, Status: status, Err: err, Elapsed: time.Since(start)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
