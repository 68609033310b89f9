package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pgonzale60/telomeric-identifier/internal/config"
	"github.com/pgonzale60/telomeric-identifier/internal/presentation"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the full telomeric repeat table",
		Long: `Print every clade with its telomeric repeat units and count.

The table is meant for reading and is written to standard error. Use
--json for machine-readable records on standard output.

Examples:
  tidk table
  tidk table --width 60 --border rounded
  tidk table --json > clades.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.registry()
			if err != nil {
				return err
			}

			if a.jsonOutput(cmd) {
				return presentation.NewFormatter(cmd.OutOrStdout()).FormatRecords(presentation.FromRecordSource(svc))
			}

			opts, err := a.reportOptions(cmd)
			if err != nil {
				return err
			}
			report, err := svc.Report(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}
			_, err = io.WriteString(cmd.ErrOrStderr(), report)
			return err
		},
	}
	cmd.Flags().Int("width", 0, "wrap width of the motif column, 0 disables wrapping (default from config: 30)")
	cmd.Flags().String("border", "", "table border: normal, rounded, ascii or hidden")
	cmd.Flags().Bool("color", false, "colour the table")
	cmd.Flags().Bool("json", false, "print records as JSON on stdout instead of the table")
	return cmd
}

// reportOptions merges explicitly set flags over the configured report section.
func (a *app) reportOptions(cmd *cobra.Command) (presentation.ReportOptions, error) {
	cfg := a.cfg
	if cmd.Flags().Changed("width") {
		cfg.Report.WrapWidth, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("border") {
		cfg.Report.Border, _ = cmd.Flags().GetString("border")
	}
	if cmd.Flags().Changed("color") {
		cfg.Report.Color, _ = cmd.Flags().GetBool("color")
	}
	if err := config.ValidateReport(cfg.Report); err != nil {
		return presentation.ReportOptions{}, err
	}
	return cfg.ReportOptions(), nil
}
