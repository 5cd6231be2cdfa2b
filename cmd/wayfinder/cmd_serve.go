package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wayfinder/internal/config"
	"github.com/katalvlaran/wayfinder/internal/loader"
	"github.com/katalvlaran/wayfinder/internal/server"
	"github.com/katalvlaran/wayfinder/routes"
)

var serveAddr string

// newWatcher is replaced in tests.
var newWatcher = loader.NewWatcher

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve route queries over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func serve(ctx context.Context) error {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var metrics *routes.Metrics
	if cfg.Server.Metrics {
		metrics = routes.NewMetrics(reg)
	}

	// The source stays open for the life of the server so reloads can reuse it.
	src, release, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer release()

	svc := routes.New(
		routes.WithLogger(log),
		routes.WithMetrics(metrics),
		routes.WithNodeCapacity(cfg.Graph.NodeCapacity),
	)
	if _, err := svc.Load(ctx, src); err != nil {
		return err
	}
	reload := func(ctx context.Context) (routes.Stats, error) { return svc.Load(ctx, src) }

	opts := []server.Option{server.WithLogger(log), server.WithReload(reload)}
	if cfg.Server.Metrics {
		opts = append(opts, server.WithGatherer(reg))
	}
	srv := server.New(svc, opts...)

	var watcher *loader.Watcher
	if cfg.Watch.Enabled && cfg.Graph.Source == config.SourceFile {
		watcher, err = newWatcher(cfg.Graph.Path, cfg.Watch.Debounce, func(ctx context.Context) error {
			_, err := svc.Load(ctx, src)
			return err
		}, log)
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout)
	})
	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}

	return g.Wait()
}
