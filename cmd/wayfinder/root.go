package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfinder/internal/config"
	"github.com/katalvlaran/wayfinder/internal/loader"
	"github.com/katalvlaran/wayfinder/internal/logging"
	"github.com/katalvlaran/wayfinder/routes"
)

var (
	configPath string
	graphPath  string
	logLevel   string

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "wayfinder",
	Short:         "Shortest travel times between named locations",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var overrides []config.Override
		if cmd.Flags().Changed("graph") {
			overrides = append(overrides, func(c *config.Config) {
				c.Graph.Source, c.Graph.Path = config.SourceFile, graphPath
			})
		}
		if cmd.Flags().Changed("log-level") {
			overrides = append(overrides, func(c *config.Config) { c.Log.Level = logLevel })
		}

		var err error
		if cfg, err = config.Load(configPath, overrides...); err != nil {
			return err
		}
		log, err = logging.New(cfg.Log.Level, cfg.Log.Format)

		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to wayfinder.yaml")
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", "", "DOT file to load (overrides graph.source)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error")

	rootCmd.AddCommand(locationsCmd, pathCmd, furthestCmd, reachableCmd, generateCmd, serveCmd)
}

// openSource returns the configured graph source and a release func.
func openSource(ctx context.Context) (loader.Source, func(), error) {
	switch cfg.Graph.Source {
	case config.SourceNeo4j:
		n := cfg.Graph.Neo4j
		client, err := loader.NewNeo4jClient(ctx, loader.Neo4jOptions{
			URI:            n.URI,
			Username:       n.Username,
			Password:       n.Password,
			Database:       n.Database,
			MaxConnections: n.MaxConnections,
		})
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				log.WithError(err).Warn("closing neo4j client")
			}
		}

		return loader.Neo4jSource{Client: client, Cypher: n.Cypher}, release, nil
	default:
		return loader.FileSource{Path: cfg.Graph.Path}, func() {}, nil
	}
}

// newService builds a Service and loads the configured graph into it.
func newService(ctx context.Context, opts ...routes.Option) (*routes.Service, error) {
	src, release, err := openSource(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	opts = append([]routes.Option{
		routes.WithLogger(log),
		routes.WithNodeCapacity(cfg.Graph.NodeCapacity),
	}, opts...)
	svc := routes.New(opts...)
	if _, err := svc.Load(ctx, src); err != nil {
		return nil, err
	}

	return svc, nil
}

func formatSeconds(v float64) string {
	return fmt.Sprintf("%g s", v)
}
