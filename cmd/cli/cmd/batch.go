// Package cmd - batch command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isofit/adapters/batch"
	"isofit/core/engine"
	"isofit/core/output"
	"isofit/internal/config"
	"isofit/internal/logging"
)

var (
	batchMode   string
	batchFormat string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file.hcl>",
	Short: "Evaluate a file of named tolerance checks",
	Long: `Evaluate every check block in an HCL check file.

Checks run independently: failures are reported per check and do not abort
the rest of the file.

Example file:
  check "spindle_bore" {
    size = 25
    zone = "H7"
  }

  check "dowel_pin" {
    designation = "8p6"
    mode        = "table"
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", "", "default mode for checks without one")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format (cli, json)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	mode, err := resolveMode(batchMode)
	if err != nil {
		return err
	}

	file, err := batch.ParseFile(args[0], mode)
	if err != nil {
		return err
	}
	logging.Info("check file parsed",
		zap.String("file", file.Path),
		zap.Int("checks", len(file.Checks)),
	)

	format := output.Format(cfg.Output.DefaultFormat)
	if batchFormat != "" {
		format = output.Format(batchFormat)
	}
	formatter, err := output.New(format, cfg.Output.Decimals)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range file.Run(engine.New()) {
		fmt.Printf("=== %s\n", result.Name)
		if result.Err != nil {
			failed++
			fmt.Printf("error: %v\n", result.Err)
			continue
		}
		if err := formatter.Render(os.Stdout, result.Tolerance); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(file.Checks))
	}
	return nil
}
