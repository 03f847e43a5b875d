package cmd

import (
	"github.com/itsmostafa/bookindex/internal/config"
	"github.com/itsmostafa/bookindex/internal/output"
	"github.com/spf13/cobra"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Print the configuration a run would use after applying the config file and BOOKINDEX_* environment variables.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(configFormat)
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		return output.Encode(cmd.OutOrStdout(), format, cfg)
	},
}

func init() {
	configCmd.Flags().StringVarP(&configFormat, "output", "o", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(configCmd)
}
