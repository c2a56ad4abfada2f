package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/genofig/genofig/internal/server"
	"github.com/genofig/genofig/pkg/cache"
	"github.com/genofig/genofig/pkg/config"
	"github.com/genofig/genofig/pkg/pipeline"
	"github.com/genofig/genofig/pkg/store"
)

// newServeCmd creates the serve command, which runs the figure HTTP API.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the figure HTTP API",
		Long: `Serve runs an HTTP server exposing the figure pipeline. Figures are
composed from uploaded annotation data, stored by ID, and can be fetched
back as JSON documents or standalone HTML pages.

Storage and caching are configured in genofig.toml: figures persist to
MongoDB when server.mongo_uri is set (in memory otherwise), and the cache
backend follows the [cache] section.`,
		Example: `  genofig serve
  genofig serve --addr :9000 --config ./genofig.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			c, err := newServerCache(cmd.Context(), cfg.Cache)
			if err != nil {
				return err
			}
			defer c.Close()

			st, err := newServerStore(cmd.Context(), cfg.Server)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			runner := pipeline.NewRunner(c, nil, logger)
			applyCacheTTL(runner, cfg.Cache)
			srv := server.New(runner, st, logger)
			return srv.Run(cmd.Context(), cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFileName, "config file path")

	return cmd
}

// applyCacheTTL overrides the runner's cache entry lifetimes with the
// configured ttl_seconds. Zero keeps the pipeline defaults.
func applyCacheTTL(runner *pipeline.Runner, cfg config.CacheConfig) {
	if cfg.TTLSeconds <= 0 {
		return
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	runner.FeatureTTL = ttl
	runner.ArtifactTTL = ttl
}

func newServerCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}

func newServerStore(ctx context.Context, cfg config.ServerConfig) (store.Store, error) {
	if cfg.MongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoConfig{URI: cfg.MongoURI})
}
