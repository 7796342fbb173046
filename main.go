package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creditcalc/cli"
	"creditcalc/common"
	httpLayer "creditcalc/http"
	"creditcalc/repository"
	"creditcalc/service"
)

func main() {
	configPaths := []string{common.DefaultConfigFile, os.Getenv("CREDITCALC_CONFIG")}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		config, err := common.LoadConfig(configPaths...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(serve(config, common.NewLogger(config.Logging.Level, config.Logging.Format)))
	}

	// A broken config file must not stop a one-off calculation.
	config, err := common.LoadConfigOrDefault(configPaths...)
	logger := common.NewLogger(config.Logging.Level, config.Logging.Format)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring config, using defaults")
	}

	loanService := service.NewLoanService(nil, nil, logger)
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, loanService, logger))
}

func serve(config *common.Config, logger *common.Logger) int {
	loanRepo := repository.NewLoanRepositoryMemory()

	var cache repository.CacheRepository = repository.NewMemoryCache(config.Cache.GetTTL())
	if addr := config.Cache.RedisAddr; addr != "" {
		redisCache := repository.NewRedisCache(addr, config.Cache.GetTTL())
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisCache.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, calculations will not be cached")
		}
		cache = redisCache
	}

	loanService := service.NewLoanService(loanRepo, cache, logger)
	loanHandler := httpLayer.NewLoanHandler(loanService, logger)

	rateLimiter := httpLayer.NewRateLimiter(config.RateLimit.Requests, config.RateLimit.GetWindow())
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         config.Server.Addr(),
		Handler:      httpLayer.NewRouter(loanHandler, rateLimiter),
		ReadTimeout:  config.Server.GetReadTimeout(),
		WriteTimeout: config.Server.GetWriteTimeout(),
		IdleTimeout:  config.Server.GetIdleTimeout(),
	}

	common.PrintBanner(os.Stderr, config, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error().Err(err).Msg("HTTP server failed")
		return 1
	case <-quit:
		logger.Info().Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	common.PrintShutdownBanner(os.Stderr, logger)
	return 0
}
