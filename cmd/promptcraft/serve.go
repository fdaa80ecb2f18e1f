package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/promptcraft/internal/engine"
	"github.com/sant0-9/promptcraft/internal/server"
)

func (c *cli) newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prompt engine over HTTP",
		Long: `Serve exposes POST /v1/generate, GET /v1/catalog and GET /healthz
for browser extensions and other local clients.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			eng, err := engine.FromConfig(cmd.Context(), c.cfg, c.logger)
			if eng == nil {
				return err
			}
			if err != nil {
				c.logger.Warn("model unavailable, every request will use offline templates", zap.Error(err))
			}

			return server.New(addr, eng, c.logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8787)")
	return cmd
}
