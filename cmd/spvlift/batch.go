package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"spvlift/internal/driver"
)

var (
	batchJobs int
	batchUI   string
)

// progressUI is the resolved --ui choice for a batch run. The flag wins over
// the manifest's batch.ui key; blank falls through to auto.
type progressUI int

const (
	progressAuto progressUI = iota
	progressOn
	progressOff
)

func parseProgressUI(s string) (progressUI, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressOn, nil
	case "off":
		return progressOff, nil
	}
	return 0, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", s)
}

// wantTUI decides whether the run drives the interactive progress view.
// Auto follows whether stdout is a terminal.
func (p progressUI) wantTUI() bool {
	if p == progressAuto {
		return isTerminal(os.Stdout)
	}
	return p == progressOn
}

func init() {
	batchCmd.Flags().IntVar(&batchJobs, "jobs", 0, "maximum concurrent lifts (0 = GOMAXPROCS)")
	batchCmd.Flags().StringVar(&batchUI, "ui", "", "progress UI (auto|on|off)")
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Lift every .spm module under a directory in parallel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return err
		}

		jobs := batchJobs
		uiFlag := batchUI
		if cfg, ok, err := loadToolManifest(dir); err != nil {
			return err
		} else if ok {
			if jobs == 0 {
				jobs = cfg.Config.Batch.Jobs
			}
			if uiFlag == "" {
				uiFlag = cfg.Config.Batch.UI
			}
		}
		mode, err := parseProgressUI(uiFlag)
		if err != nil {
			return err
		}

		var results []driver.Result
		if mode.wantTUI() && !quiet {
			results, err = runLiftWithUI(cmd.Context(), "lifting "+dir, dir, driver.Options{Jobs: jobs})
		} else {
			results, err = driver.LiftDir(cmd.Context(), dir, driver.Options{Jobs: jobs})
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
				continue
			}
			if !quiet {
				fmt.Fprintf(out, "%s: ok (%d funcs)\n", res.Path, len(res.Module.Functions))
			}
		}
		if !quiet {
			fmt.Fprintf(out, "lifted %d of %d modules\n", len(results)-failed, len(results))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d modules failed", failed, len(results))
		}
		return nil
	},
}
