// dino is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	dino                 - Play a run
//	dino config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--seed <value>       - RNG seed for reproducible runs (0 = time based)
//	--frontend <name>    - raw (default) or tea
//	--log-file <path>    - Write logs to a file (logs are discarded otherwise)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFrontend string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Jump over cacti in your terminal",
	Long: `dino is an endless runner: the dinosaur runs along the ground while
cacti scroll in from the right. Jump over them to score; touching one ends
the run.

Controls:
  Space      - Jump
  Q/Ctrl+C   - Quit

Examples:
  dino
  dino --seed 42
  dino --frontend tea
  dino --config ./my-dino.yaml --log-file dino.log --log-level debug
  dino config > my-dino.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", "raw", "Front end: raw or tea")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
}
