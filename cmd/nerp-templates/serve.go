package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/server"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/util"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Server.Port = listenPort(cfgInfo.PortSpecified || cmd.Flags().Changed("port"))

	srv := server.NewServer(cfg, version, logger)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx, addr) })

	if !cfg.Server.DevMode && !noBrowser {
		logger.Info("opening browser", zap.String("url", url))
		if err := util.OpenBrowserWithFallback(url); err != nil {
			logger.Warn("could not open browser, open it manually", zap.String("url", url), zap.Error(err))
		}
	} else {
		logger.Info("server ready", zap.String("url", url))
	}

	return g.Wait()
}

// listenPort returns the configured port, or the next free one when it is
// busy. A pinned port (config file, NERP_PORT or --port) is used as is.
func listenPort(pinned bool) int {
	if pinned {
		return cfg.Server.Port
	}
	free, err := util.FindAvailablePort(cfg.Server.Port, 10)
	if err != nil || free == cfg.Server.Port {
		return cfg.Server.Port
	}
	logger.Warn("port in use, falling back", zap.Int("port", cfg.Server.Port), zap.Int("fallback", free))
	return free
}
