package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgonzale60/telomeric-identifier/internal/config"
	"github.com/pgonzale60/telomeric-identifier/internal/paths"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tidk configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a commented default config file",
		Long: `Write the default configuration to path (default: .tidk/config.yaml).
An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.LocalConfigFile("")
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	})
	return configCmd
}
