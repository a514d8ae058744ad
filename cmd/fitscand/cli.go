package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fitscan/internal/config"
)

// options holds the command line flags.
type options struct {
	configPath string
	envFile    string
	addr       string
	env        string
	logLevel   string
	logFormat  string
}

func buildRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "fitscand",
		Short:         "FitScan API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file (.yaml, .json or .toml)")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	pf.StringVar(&opts.addr, "addr", "", "HTTP listen address, e.g. :8000 (overrides config)")
	pf.StringVar(&opts.env, "env", "", "Environment: development|staging|production (overrides config)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: json|console (overrides config)")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP server (default)",
		Example: "  fitscand serve --addr :8000 --env production",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the API version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fitscand %s\n", config.Version)
		},
	}
	checkCmd := &cobra.Command{
		Use:   "check-config",
		Short: "Resolve and validate the configuration, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			mode := "simulation"
			if cfg.HasOpenAIKey() {
				mode = "openai"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config ok: addr=%s environment=%s ai_mode=%s\n", cfg.Addr, cfg.Environment, mode)
			return nil
		},
	}
	root.AddCommand(serveCmd, versionCmd, checkCmd)
	return root
}

// resolveConfig layers defaults, the config file, the environment (after
// loading the dotenv file) and finally the flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	if opts.envFile != "" {
		if err := config.LoadDotenv(opts.envFile); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("env") {
		cfg.Environment = opts.env
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, cfg, nil, newLogger(cfg, os.Stderr)); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
