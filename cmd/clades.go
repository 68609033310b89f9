package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pgonzale60/telomeric-identifier/internal/presentation"
)

func newCladesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clades",
		Short: "List every clade with curated telomeric repeats",
		Long: `List every clade in the dataset, one per line, in lexicographic order.

Use this to check a clade name before calling 'tidk lookup'; names are
matched exactly and case-sensitively.

Examples:
  tidk clades
  tidk clades --json | jq length`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.registry()
			if err != nil {
				return err
			}
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatClades(svc.Clades(), a.jsonOutput(cmd))
		},
	}
	cmd.Flags().Bool("json", false, "print a JSON array")
	return cmd
}
