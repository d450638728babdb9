package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelreservation/internal/config"
	"hotelreservation/internal/lock"
	"hotelreservation/internal/logger"
	"hotelreservation/internal/middleware"
	"hotelreservation/internal/modules/booking"
	"hotelreservation/internal/modules/catalog"
	"hotelreservation/internal/modules/events"
	"hotelreservation/internal/seed"
	"hotelreservation/internal/server"
	"hotelreservation/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "hotel-api")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx := context.Background()

	store, err := storage.Open(ctx, storage.Options{
		URL:           cfg.DatabaseURL,
		MongoDatabase: cfg.MongoDatabase,
		Debug:         cfg.LogLevel == "debug",
		Timeout:       cfg.StoreTimeout,
	}, zl)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()
	zl.Info("storage ready", zap.String("kind", store.Kind))

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	if cfg.SeedOnStart {
		if _, err := seed.Run(ctx, store.Seeder, zl, false); err != nil {
			return err
		}
	}

	var locker booking.RoomLocker
	if cfg.RedisURL != "" {
		rdb, err := lock.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		locker = lock.NewRoomLocker(rdb, cfg.LockTTL, cfg.LockWait, zl)
		zl.Info("room lock enabled")
	} else {
		zl.Warn("REDIS_URL not set; concurrent bookings for one room are not serialised")
	}

	hub := events.NewHub(zl)
	defer hub.Close()

	bookingService := booking.NewService(store.Bookings, store.Rooms, store.Guests, locker, hub, zl)
	catalogService := catalog.NewService(store.Rooms, zl)

	router := server.NewRouter(server.Deps{
		Bookings:       booking.NewHandler(bookingService),
		Rooms:          catalog.NewHandler(catalogService),
		Events:         events.NewHandler(hub, middleware.OriginAllowed(cfg.AllowedOrigins)),
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		AllowedOrigins: cfg.AllowedOrigins,
		StoreTimeout:   cfg.StoreTimeout,
		Log:            zl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zl.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	hub.Close()
	return srv.Shutdown(shutdownCtx)
}
