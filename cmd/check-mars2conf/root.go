package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var suitePath string

var rootCmd = &cobra.Command{
	Use:   "check-mars2conf",
	Short: "Run a YAML suite of MARS-to-GRIB2 resolution test cases",
	Long: `check-mars2conf loads a YAML file of test cases, runs each one through
the mars2grib encoder, and fails if any resolved section template number
doesn't match what the case expects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := loadSuite(suitePath)
		if err != nil {
			return fmt.Errorf("check-mars2conf: loading %s: %w", suitePath, err)
		}

		failures := runSuite(cmd.OutOrStdout(), suite)
		if failures > 0 {
			return fmt.Errorf("check-mars2conf: %d case(s) failed", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&suitePath, "suite", "f", "", "path to the YAML test suite (required)")
	rootCmd.MarkFlagRequired("suite")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
