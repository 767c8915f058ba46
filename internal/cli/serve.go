package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/lwoodhull/cladogram/internal/server"
	"github.com/lwoodhull/cladogram/pkg/cache"
	"github.com/lwoodhull/cladogram/pkg/config"
	"github.com/lwoodhull/cladogram/pkg/store"
)

// shutdownGrace bounds how long in-flight requests get to finish.
const shutdownGrace = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr         string        // listen address
	cacheBackend string        // render cache backend: "null", "file", "redis"
	cacheDir     string        // directory for the file cache
	cacheTTL     time.Duration // how long rendered artifacts stay cached
	redisAddr    string        // address for the redis cache
	mongoURI     string        // Mongo connection string for the tree store
}

// newServeCmd creates the serve command for running the HTTP rendering
// service. Trees are kept in memory unless --mongo-uri is given.
func newServeCmd(configPath *string) *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyServeConfig(cmd, *configPath, &opts); err != nil {
				return err
			}
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache", "null", "render cache backend: null (default), file, redis")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for the file cache backend")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", 15*time.Minute, "lifetime of cached renders")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "address for the redis cache backend")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for persistent tree storage")

	return cmd
}

// applyServeConfig fills flag defaults from the config file. Flags given
// explicitly on the command line win over the file.
func applyServeConfig(cmd *cobra.Command, path string, opts *serveOpts) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("addr") {
		opts.addr = cfg.Serve.Addr
	}
	if !cmd.Flags().Changed("cache") {
		opts.cacheBackend = cfg.Serve.Cache
	}
	if !cmd.Flags().Changed("cache-dir") && cfg.Serve.CacheDir != "" {
		opts.cacheDir = cfg.Serve.CacheDir
	}
	if !cmd.Flags().Changed("cache-ttl") {
		opts.cacheTTL = cfg.Serve.Duration()
	}
	if !cmd.Flags().Changed("redis-addr") && cfg.Serve.RedisAddr != "" {
		opts.redisAddr = cfg.Serve.RedisAddr
	}
	if !cmd.Flags().Changed("mongo-uri") {
		opts.mongoURI = cfg.Serve.MongoURI
	}
	return nil
}

// newServeCache builds the render cache backend.
func newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.cacheBackend {
	case "null", "":
		return cache.NewNullCache(), nil
	case "file":
		if opts.cacheDir == "" {
			return nil, errors.New("file cache requires --cache-dir")
		}
		return cache.NewFileCache(opts.cacheDir)
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (must be 'null', 'file', or 'redis')", opts.cacheBackend)
	}
}

// newServeStore builds the tree store backend.
func newServeStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, opts.mongoURI)
}

// runServe wires the backends together and serves until the context is
// canceled, then drains in-flight requests.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	st, err := newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close()

	c, err := newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := server.New(st, c, opts.cacheTTL, logger)
	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s (cache: %s)", opts.addr, opts.cacheBackend)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
