// Package cmd provides the CLI commands for isofit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"isofit/internal/config"
	"isofit/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "isofit",
	Short: "Compute ISO 286 fit tolerances",
	Long: `isofit computes ISO 286 fit tolerances: standard tolerance (IT)
widths, upper/lower deviations and limiting dimensions for a nominal size
and a tolerance zone, classified as clearance, transition or interference.

Examples:
  isofit fit 25JS9
  isofit fit --size 50 --zone H7 --mode table
  isofit batch checks.hcl
  isofit zones`,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.isofit.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("isofit version 0.1.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("default mode:   %s\n", cfg.Engine.DefaultMode)
		fmt.Printf("output format:  %s\n", cfg.Output.DefaultFormat)
		fmt.Printf("decimals:       %d\n", cfg.Output.Decimals)
		fmt.Printf("log level:      %s\n", cfg.Logging.Level)
		return nil
	},
}
