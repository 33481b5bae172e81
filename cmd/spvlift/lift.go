package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spvlift/internal/driver"
	"spvlift/internal/srfmt"
)

var liftFormat string

func init() {
	liftCmd.Flags().StringVar(&liftFormat, "format", "", "output format (pretty|json)")
}

var liftCmd = &cobra.Command{
	Use:   "lift <file.spm>",
	Short: "Lift one serialized raw module and render it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(liftFormat)
		if err != nil {
			return err
		}
		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return err
		}

		m, err := driver.Lift(args[0])
		if err != nil {
			return err
		}
		if quiet {
			return nil
		}

		out := cmd.OutOrStdout()
		if format == "json" {
			return srfmt.JSON(out, m)
		}
		useColor, err := colorEnabled(cmd)
		if err != nil {
			return err
		}
		return srfmt.Pretty(out, m, srfmt.PrettyOpts{Color: useColor})
	},
}

// resolveFormat picks the output format: the flag wins, then the manifest,
// then pretty.
func resolveFormat(flagValue string) (string, error) {
	value := strings.TrimSpace(strings.ToLower(flagValue))
	if value == "" {
		if cfg, ok, err := loadToolManifest("."); err != nil {
			return "", err
		} else if ok {
			value = strings.TrimSpace(strings.ToLower(cfg.Config.Output.Format))
		}
	}
	switch value {
	case "":
		return "pretty", nil
	case "pretty", "json":
		return value, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be pretty or json)", value)
	}
}
