package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/ai-directory/internal/config"
	"github.com/Its-donkey/ai-directory/logging"
)

const logSource = "ai-directory"

type rootOptions struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Serve and check the AI directory site",
		Long: `site serves the directory's static pages together with the wasm
page-behaviour bundle, and checks page markup for the hooks that bundle
binds to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "site.yml", "config file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newDevCmd(opts))
	cmd.AddCommand(newLogsCmd(opts))
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if o.verbose {
		cfg.LogLevel = logging.DEBUG.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger writes JSON entries to stdout and, when a log dir is configured,
// to a rotating file. The returned closer releases the file.
func newLogger(cfg *config.Config, stdout io.Writer) (*logging.Logger, func(), error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := logging.New(logSource, cfg.Level(), stdout)
	if cfg.LogDir == "" {
		return logger, func() {}, nil
	}
	fw, err := logging.NewFileWriter(cfg.LogDir, logFile, 0, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.AddWriter(fw)
	return logger, func() { _ = fw.Close() }, nil
}
