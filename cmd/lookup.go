package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgonzale60/telomeric-identifier/internal/log"
	"github.com/pgonzale60/telomeric-identifier/internal/presentation"
	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
)

func newLookupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <clade>",
		Short: "Show the telomeric repeat motifs of a clade",
		Long: `Show the curated telomeric repeat motifs for one clade.

The clade name must match exactly (case-sensitive). Run 'tidk clades' for
the list of known names.

Examples:
  tidk lookup Primates
  tidk lookup Hymenoptera --json | jq '.motifs[0]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.registry()
			if err != nil {
				return err
			}

			clade := args[0]
			rec, err := svc.Lookup(clade)
			if err != nil {
				if errors.Is(err, registry.ErrNotFound) {
					log.Warn(log.CatCLI, "unknown clade", "clade", clade)
					return fmt.Errorf("%w (run 'tidk clades' to list known clades)", err)
				}
				return err
			}

			formatter := presentation.NewFormatter(cmd.OutOrStdout())
			dto := presentation.FromDomainRecord(rec)
			if a.jsonOutput(cmd) {
				return formatter.FormatRecord(dto)
			}
			return formatter.FormatRecordText(dto, registry.DefaultMotifSeparator)
		},
	}
	cmd.Flags().Bool("json", false, "print the record as JSON")
	return cmd
}
