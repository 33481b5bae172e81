package driver

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"spvlift/internal/raw"
	"spvlift/internal/spv"
	"spvlift/internal/sr"
)

func wellFormed() *raw.Module {
	return &raw.Module{
		Header: &raw.ModuleHeader{Magic: 0x07230203, Version: 0x00010000, Bound: 8},
		MemoryModel: &raw.Instruction{Op: spv.OpMemoryModel, Operands: []raw.Operand{
			raw.Enum(raw.KindAddressingModel, uint32(spv.AddressingLogical)),
			raw.Enum(raw.KindMemoryModel, uint32(spv.MemoryModelGLSL450)),
		}},
		TypesGlobalValues: []raw.Instruction{
			{Op: spv.OpTypeVoid, ResultID: 2},
			{Op: spv.OpTypeFunction, ResultID: 3, Operands: []raw.Operand{raw.IDRef(2)}},
		},
		Functions: []raw.Function{
			{
				Def: &raw.Instruction{Op: spv.OpFunction, ResultType: 2, ResultID: 4, Operands: []raw.Operand{
					raw.Enum(raw.KindFunctionControl, uint32(spv.FunctionControlNone)),
					raw.IDRef(3),
				}},
				Body: []raw.Instruction{
					{Op: spv.OpLabel, ResultID: 5},
					{Op: spv.OpReturn},
				},
			},
		},
	}
}

func writeModule(t *testing.T, path string, m *raw.Module) {
	t.Helper()
	if err := raw.WriteFile(path, m); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.spm")
	writeModule(t, path, wellFormed())

	m, err := Lift(path)
	if err != nil {
		t.Fatalf("lift: %v", err)
	}
	if len(m.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(m.Functions))
	}
}

func TestLiftMissingFile(t *testing.T) {
	if _, err := Lift(filepath.Join(t.TempDir(), "absent.spm")); err == nil {
		t.Fatalf("a missing file must fail")
	}
}

func TestLiftConversionErrorKeepsChain(t *testing.T) {
	bad := wellFormed()
	bad.MemoryModel = nil
	path := filepath.Join(t.TempDir(), "bad.spm")
	writeModule(t, path, bad)

	_, err := Lift(path)
	var ce *sr.ConversionError
	if !errors.As(err, &ce) || ce.Kind != sr.ConvMissingMemoryModel {
		t.Fatalf("the conversion error must stay reachable: %v", err)
	}
}

func TestLiftDir(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, filepath.Join(dir, "b.spm"), wellFormed())
	writeModule(t, filepath.Join(dir, "a.spm"), wellFormed())
	bad := wellFormed()
	bad.Functions[0].Def = nil
	writeModule(t, filepath.Join(dir, "c.spm"), bad)

	events := make(chan Event, 64)
	results, err := LiftDir(context.Background(), dir, Options{
		Jobs: 2,
		Sink: ChannelSink{Ch: events},
	})
	if err != nil {
		t.Fatalf("lift dir: %v", err)
	}
	close(events)

	if len(results) != 3 {
		t.Fatalf("expected three results, got %d", len(results))
	}
	for i, want := range []string{"a.spm", "b.spm", "c.spm"} {
		if filepath.Base(results[i].Path) != want {
			t.Fatalf("results out of order: %+v", results)
		}
	}
	if results[0].Err != nil || results[1].Err != nil {
		t.Fatalf("well-formed files must lift: %+v", results)
	}
	if results[2].Err == nil || results[2].Module != nil {
		t.Fatalf("the bad file must fail without a module: %+v", results[2])
	}

	var done, failed int
	for evt := range events {
		if evt.Stage != StageLift {
			continue
		}
		switch evt.Status {
		case StatusDone:
			done++
		case StatusError:
			failed++
		}
	}
	if done != 2 || failed != 1 {
		t.Fatalf("expected 2 done and 1 error event, got %d and %d", done, failed)
	}
}

func TestLiftDirEmpty(t *testing.T) {
	results, err := LiftDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("lift dir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("an empty directory must yield no results: %+v", results)
	}
}

func TestLiftDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, filepath.Join(dir, "a.spm"), wellFormed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LiftDir(ctx, dir, Options{Jobs: 1}); err == nil {
		t.Fatalf("a cancelled context must abort the batch")
	}
}
