// Package cmd - fit command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isofit/core/designation"
	"isofit/core/engine"
	"isofit/core/output"
	"isofit/core/types"
	"isofit/internal/config"
	"isofit/internal/logging"
)

var (
	fitSize   float64
	fitZone   string
	fitMode   string
	fitFormat string
)

// fitCmd represents the fit command
var fitCmd = &cobra.Command{
	Use:   "fit [designation]",
	Short: "Compute the tolerance for one designation",
	Long: `Compute IT width, deviations, limiting dimensions and fit class.

The query is either a full designation or separate size and zone flags.

Examples:
  isofit fit 25JS9
  isofit fit 15H7 --format json
  isofit fit --size 50 --zone g6 --mode table
  isofit fit --size 800 --zone H8 --mode formula`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().Float64VarP(&fitSize, "size", "s", 0, "nominal size in mm")
	fitCmd.Flags().StringVarP(&fitZone, "zone", "z", "", "tolerance zone, e.g. H7")
	fitCmd.Flags().StringVarP(&fitMode, "mode", "m", "", "calculation mode (table, formula, formula_bracketed)")
	fitCmd.Flags().StringVarP(&fitFormat, "format", "f", "", "output format (cli, json)")
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	mode, err := resolveMode(fitMode)
	if err != nil {
		return err
	}

	eng := engine.New()
	var result *types.ToleranceResult

	switch {
	case len(args) == 1:
		result, err = eng.ComputeDesignation(args[0], mode)
	default:
		zone, zerr := designation.ParseZone(fitZone)
		if zerr != nil {
			return zerr
		}
		result, err = eng.Compute(fitSize, zone.Letter, zone.Grade, mode)
	}
	if err != nil {
		logging.Error("tolerance query failed", zap.Error(err))
		return err
	}

	format := output.Format(cfg.Output.DefaultFormat)
	if fitFormat != "" {
		format = output.Format(fitFormat)
	}
	formatter, err := output.New(format, cfg.Output.Decimals)
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, result)
}

// resolveMode picks the mode flag over the configured default
func resolveMode(flag string) (types.Mode, error) {
	if flag != "" {
		return types.ParseMode(flag)
	}
	return types.ParseMode(config.Get().Engine.DefaultMode)
}
