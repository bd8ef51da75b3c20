package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML.

The configuration is looked up in this order:
  1. --config path
  2. ~/.tui-dino/dino.yaml
  3. ./configs/dino.yaml
  4. built-in defaults

With --defaults the built-in default file is printed as is, comments
included, as a starting point for a custom config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}

		cfg, err := config.LoadDino(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}
