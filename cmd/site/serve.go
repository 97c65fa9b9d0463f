package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/ai-directory/internal/config"
	"github.com/Its-donkey/ai-directory/internal/ui/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var listen, dir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site directory over HTTP",
		Long: `Serves the configured site directory. "/" maps to index.html, .wasm files
are sent as application/wasm and /healthz reports liveness. Every request is
logged as a JSON entry with a request id.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if dir != "" {
				cfg.Dir = dir
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, cmd)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "override the listen address")
	cmd.Flags().StringVar(&dir, "dir", "", "override the site directory")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	logger, closeLog, err := newLogger(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeLog()

	srv, err := server.New(server.Options{
		Listen:      cfg.Listen,
		Dir:         cfg.Dir,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
