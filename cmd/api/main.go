package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/config"
	"storefront-backend/internal/delivery/http/middleware"
	v1 "storefront-backend/internal/delivery/http/v1"
	"storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/observability"
	sqlcrepo "storefront-backend/internal/repository/sqlc"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/storage"
	"storefront-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	pgxPool, err := sqlcrepo.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgxPool.Close()
	log.Info().Msg("Connected to PostgreSQL")

	shippingRepo := sqlcrepo.NewShippingRepository(pgxPool)
	txManager := sqlcrepo.NewTransactionManager(pgxPool)

	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	metrics, err := observability.NewShippingMetrics(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register metrics")
	}

	opts := []usecase.ShippingOption{usecase.WithShippingMetrics(metrics)}
	if cfg.SnapshotsEnabled() {
		r2Storage, err := storage.NewR2Storage(
			context.Background(),
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 storage")
		}
		opts = append(opts, usecase.WithSnapshotStorage(r2Storage))
	} else {
		log.Warn().Msg("R2 not configured, shipping zone export disabled")
	}

	shippingUC := usecase.NewShippingUsecase(
		shippingRepo,
		txManager,
		memCache,
		cfg.CacheShippingTTL,
		usecase.FallbackRate{MethodName: cfg.ShippingFallbackMethod, Amount: cfg.ShippingFallbackRate},
		opts...,
	)

	shippingHandler := v1.NewShippingHandler(shippingUC)
	configHandler := v1.NewConfigHandler(memCache, cfg.CacheEnumsTTL)
	adminConfigHandler := v1.NewAdminConfigHandler(shippingUC)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /api/v1/shipping/quote", shippingHandler.GetQuote)
	mux.HandleFunc("POST /api/v1/shipping/quote", shippingHandler.PostQuote)
	mux.HandleFunc("GET /api/v1/config/enums", configHandler.GetEnums)

	// Admin: AuthMiddleware -> AdminMiddleware -> handler
	adminMiddleware := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	mux.Handle("GET /api/v1/admin/config/shipping-zones", adminMiddleware(adminConfigHandler.GetAllShippingZones))
	mux.Handle("POST /api/v1/admin/config/shipping-zones", adminMiddleware(adminConfigHandler.CreateShippingZone))
	mux.Handle("GET /api/v1/admin/config/shipping-zones/{id}", adminMiddleware(adminConfigHandler.GetShippingZone))
	mux.Handle("PUT /api/v1/admin/config/shipping-zones/{id}", adminMiddleware(adminConfigHandler.UpdateShippingZone))
	mux.Handle("DELETE /api/v1/admin/config/shipping-zones/{id}", adminMiddleware(adminConfigHandler.DeleteShippingZone))
	mux.Handle("PATCH /api/v1/admin/config/shipping-zones/{id}/status", adminMiddleware(adminConfigHandler.UpdateShippingZoneStatus))
	mux.Handle("POST /api/v1/admin/config/shipping-zones/match", adminMiddleware(adminConfigHandler.MatchShippingZone))
	mux.Handle("POST /api/v1/admin/config/shipping-zones/export", adminMiddleware(adminConfigHandler.ExportShippingZones))

	mux.Handle("GET /metrics", metrics.Handler())

	health := healthHandler(pgxPool)
	mux.HandleFunc("GET /api/v1/health", health)
	mux.HandleFunc("GET /health", health) // load balancers probe the root path

	rateLimiter := middleware.NewRateLimiter(context.Background(), cfg.RateLimitRPS, cfg.RateLimitBurst)

	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()
	logger.ServiceStart("storefront-shipping", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")
	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.ServiceStop("storefront-shipping")
}

func healthHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "db": "unreachable"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "db": "connected"})
	}
}
