// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/eps-dataset/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a generated dataset",
	Long: `Check reads a dataset JSON file (default: the configured source copy) and
verifies session numbering, exercise codes, field completeness and that the
file is pure ASCII. With --images, missing illustrations are reported as
warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := extractConfig()
		path := cfg.Resolve(cfg.Output.Src)
		if len(args) == 1 {
			path = args[0]
		}

		var opts check.Options
		if withImages, _ := cmd.Flags().GetBool("images"); withImages {
			opts.ImagesDir = cfg.Resolve(cfg.Output.Images)
		}
		return runCheck(path, opts, cmd.OutOrStdout())
	},
}

func runCheck(path string, opts check.Options, w io.Writer) error {
	report, err := check.File(path, opts)
	if err != nil {
		return err
	}
	report.Print(w)
	if !report.OK() {
		return fmt.Errorf("%d error(s) in %s", report.Errors(), path)
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("images", false, "warn about exercises without an illustration file")

	rootCmd.AddCommand(checkCmd)
}
