// Package cli implements the studio command line: the web server and thin
// wrappers around the backend API client.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"studio/internal/config"
)

// options collects the persistent flags. Flags the user set win over env,
// config file and defaults.
type options struct {
	configPath string
	addr       string
	apiBase    string
	timeout    int
	demoAPI    bool
	catalog    string
	logLevel   string
	logFormat  string

	cfg config.Config
	log zerolog.Logger
}

// buildRootCmd constructs the cobra command tree writing logs to logOut.
func buildRootCmd(logOut io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "studio",
		Short:         "Web front-end and API client for LLM fine-tuning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "Config file (.yaml/.yml/.json/.toml); defaults to $STUDIO_CONFIG")
	pf.StringVar(&o.addr, "addr", config.DefaultAddr, "HTTP listen address")
	pf.StringVar(&o.apiBase, "api-base", "", "Backend base URL (empty = same origin)")
	pf.IntVar(&o.timeout, "api-timeout", 0, "Per-call backend timeout in seconds (0 = none)")
	pf.BoolVar(&o.demoAPI, "demo-api", true, "Mount the built-in demo backend under /api")
	pf.StringVar(&o.catalog, "catalog", "", "Model catalog file for the demo backend")
	pf.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error|off")
	pf.StringVar(&o.logFormat, "log-format", config.DefaultLogFormat, "Log format: console|json")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(o.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		o.cfg = o.overlay(cmd, cfg)
		o.log = newLogger(logOut, o.cfg.LogLevel, o.cfg.LogFormat)
		return nil
	}

	root.AddCommand(
		newServeCmd(o),
		newHealthCmd(o),
		newSystemCmd(o),
		newModelsCmd(o),
		newTrainStatusCmd(o),
		newTrainCmd(o),
		newEchoCmd(o),
	)
	return root
}

// overlay applies the flags the user explicitly set.
func (o *options) overlay(cmd *cobra.Command, cfg config.Config) config.Config {
	fs := cmd.Flags()
	if fs.Changed("addr") {
		cfg.Addr = o.addr
	}
	if fs.Changed("api-base") {
		cfg.APIBase = o.apiBase
	}
	if fs.Changed("api-timeout") {
		cfg.APITimeoutSeconds = o.timeout
	}
	if fs.Changed("demo-api") {
		on := o.demoAPI
		cfg.DemoAPI = &on
	}
	if fs.Changed("catalog") {
		cfg.CatalogPath = o.catalog
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	return config.WithDefaults(cfg)
}

// MainWithArgs runs the CLI and returns a process exit code.
func MainWithArgs(args []string, stdout, stderr io.Writer) int {
	root := buildRootCmd(stderr)
	root.SetErr(stderr)
	if len(args) == 0 {
		root.SetOut(stderr)
		_ = root.Usage()
		return 2
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

// Main runs the CLI against the process arguments.
func Main() int { return MainWithArgs(os.Args[1:], os.Stdout, os.Stderr) }
