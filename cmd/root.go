package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgonzale60/telomeric-identifier/internal/config"
	"github.com/pgonzale60/telomeric-identifier/internal/log"
	"github.com/pgonzale60/telomeric-identifier/internal/paths"
	appreg "github.com/pgonzale60/telomeric-identifier/internal/registry/application"
)

var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	cfgFile    string
	cfg        config.Config
	svc        *appreg.RegistryService
	logCleanup func()
}

// NewRootCmd builds the tidk command tree.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "tidk",
		Short: "Telomeric repeat reference for biological clades",
		Long: `tidk serves a curated table of telomeric repeat motifs observed across
biological clades. Look up a clade, list the known clades, or print the
whole table.

The data is modified from "A telomeric repeat database"
(https://github.com/tolkit/a-telomeric-repeat-database).`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .tidk/config.yaml, then ~/.config/tidk/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "write debug logs (also TIDK_DEBUG=1)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	// Bind flags to viper
	_ = a.v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = a.v.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(
		newCladesCmd(a),
		newLookupCmd(a),
		newTableCmd(a),
		newValidateCmd(a),
		newBrowseCmd(a),
		newConfigCmd(a),
	)
	return rootCmd, a
}

func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	defaults := config.Defaults()
	a.v.SetDefault("debug", defaults.Debug)
	a.v.SetDefault("log_file", defaults.LogFile)
	a.v.SetDefault("log_level", defaults.LogLevel)
	a.v.SetDefault("report.wrap_width", defaults.Report.WrapWidth)
	a.v.SetDefault("report.border", defaults.Report.Border)
	a.v.SetDefault("report.color", defaults.Report.Color)
	a.v.SetDefault("output.format", defaults.Output.Format)

	a.v.SetEnvPrefix("TIDK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	} else {
		// Config lookup order:
		// 1. .tidk/config.yaml (current directory, redirects followed)
		// 2. ~/.config/tidk/config.yaml (user config)
		if local := paths.LocalConfigFile(""); fileExists(local) {
			a.v.SetConfigFile(local)
		} else {
			if dir := paths.UserConfigDir(); dir != "" {
				a.v.AddConfigPath(dir)
			}
			a.v.SetConfigName("config")
			a.v.SetConfigType("yaml")
		}

		if err := a.v.ReadInConfig(); err != nil {
			// No config file is fine; defaults and env still apply
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := a.initLogging(cmd); err != nil {
		return err
	}
	log.Debug(log.CatConfig, "config loaded", "file", a.v.ConfigFileUsed(), "command", cmd.CommandPath())
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (a *app) initLogging(cmd *cobra.Command) error {
	if !a.cfg.Debug {
		log.SetEnabled(false)
		return nil
	}

	if a.cfg.LogFile != "" {
		cleanup, err := log.Init(a.cfg.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.logCleanup = cleanup
	} else {
		log.InitWriter(cmd.ErrOrStderr())
	}

	if a.cfg.LogLevel != "" {
		level, err := log.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return err
		}
		log.SetMinLevel(level)
	}
	return nil
}

// registry builds the registry service on first use. A malformed embedded
// dataset stops the command here.
func (a *app) registry() (*appreg.RegistryService, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	svc, err := appreg.NewDefaultRegistryService()
	if err != nil {
		return nil, fmt.Errorf("loading telomere dataset: %w", err)
	}
	a.svc = svc
	return svc, nil
}

// jsonOutput reports whether JSON was requested by flag or by output.format.
func (a *app) jsonOutput(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		asJSON, _ := cmd.Flags().GetBool("json")
		return asJSON
	}
	return a.cfg.Output.Format == config.FormatJSON
}

func (a *app) close() {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	log.SetEnabled(false)
}

// Execute runs the root command. An interrupt cancels the command context
// so long-running commands (browse, validate --watch) shut down cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd, a := newRootCmd()
	return a.execute(ctx, rootCmd)
}

// execute runs rootCmd and releases the log file whether or not the command
// failed. cobra skips post-run hooks when RunE returns an error.
func (a *app) execute(ctx context.Context, rootCmd *cobra.Command) error {
	defer a.close()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}
