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

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/yritu05/Scholar-Connect/internal/api"
	"github.com/yritu05/Scholar-Connect/internal/api/metrics"
	"github.com/yritu05/Scholar-Connect/internal/api/middleware"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
	"github.com/yritu05/Scholar-Connect/internal/core/service"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/db/redis"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/http/handlers"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/notify"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/storage"
	"github.com/yritu05/Scholar-Connect/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return rt.serve(ctx)
		},
	}
}

func (rt *runtime) serve(ctx context.Context) error {
	cfg, log := rt.cfg, rt.log

	store, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.close(context.Background()) }()

	if cfg.Database.AutoMigrate {
		if err := store.migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	files, err := storage.New(ctx, storage.Config{
		Driver:    cfg.Storage.Driver,
		Root:      cfg.Storage.Root,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
	})
	if err != nil {
		return err
	}

	ready := map[string]handlers.Pinger{store.name: handlers.PingFunc(store.ping)}
	if p, ok := files.(handlers.Pinger); ok {
		ready["storage"] = p
	}

	var notes ports.NotificationLog
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		redisLog := redis.NewNotificationLog(client, cfg.Notifications.Capacity)
		ready["redis"] = redisLog
		notes = redisLog
	} else {
		notes = notify.NewRing(cfg.Notifications.Capacity)
	}
	notes = metrics.InstrumentNotificationLog(notes)

	creds := service.NewCredentials(bcrypt.DefaultCost)
	e, err := api.NewRouter(api.Deps{
		Auth:          service.NewAuthService(store.users, notes, creds, logger.Component("auth")),
		Profiles:      service.NewProfileService(store.users, creds, logger.Component("profile")),
		Papers:        service.NewPaperService(store.papers, store.users, files, notes, logger.Component("papers")),
		Chats:         service.NewChatService(store.chats, store.users, logger.Component("chat")),
		Notifications: service.NewNotificationService(notes),
		Sessions:      middleware.NewSessions(cfg.SecretKey, cfg.SessionTTL, cfg.IsProduction()),
		FlashSecret:   []byte(cfg.SecretKey),
		SecureCookie:  cfg.IsProduction(),
		Readiness:     ready,
		Log:           logger.Component("http"),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("database", store.name).
			Str("storage", cfg.Storage.Driver).
			Bool("redis", cfg.Redis.Addr != "").
			Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}
