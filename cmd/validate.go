package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pgonzale60/telomeric-identifier/internal/log"
	appreg "github.com/pgonzale60/telomeric-identifier/internal/registry/application"
	"github.com/pgonzale60/telomeric-identifier/internal/watcher"
)

func newValidateCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate <clades.yaml>",
		Short: "Check an edited dataset file for integrity errors",
		Long: `Run the registry's dataset integrity checks against a clades.yaml file.

Every problem is reported: duplicate clades, empty motif lists, motifs with
characters outside A, C, G and T, and declared counts that disagree with
the motifs listed.

With --watch the file is checked again every time it is saved, until the
command is interrupted.

Examples:
  tidk validate internal/dataset/clades.yaml
  tidk validate --watch internal/dataset/clades.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !watch {
				return validateOnce(cmd.OutOrStdout(), path)
			}
			return watchAndValidate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-validate whenever the file changes")
	return cmd
}

func validateOnce(out io.Writer, path string) error {
	n, err := appreg.ValidateFile(path)
	if err != nil {
		log.ErrorErr(log.CatRegistry, "dataset validation failed", err, "path", path)
		return err
	}
	_, err = fmt.Fprintf(out, "%s: ok (%d clades)\n", path, n)
	return err
}

// watchAndValidate validates path now and after every change. Integrity
// errors are printed and watching continues; only watcher failures and
// context cancellation end the loop.
func watchAndValidate(ctx context.Context, out, errOut io.Writer, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}
	log.Info(log.CatWatch, "watching dataset", "path", path)

	report := func() {
		if err := validateOnce(out, path); err != nil {
			_, _ = fmt.Fprintf(errOut, "%s: %v\n", path, err)
		}
	}

	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			report()
		}
	}
}
