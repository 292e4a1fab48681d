package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubevents/config"
	_ "clubevents/docs"
	"clubevents/internal/adapters/web"
	"clubevents/internal/database"
	deliveryhttp "clubevents/internal/delivery/http"
	"clubevents/internal/delivery/http/controllers"
	"clubevents/internal/repository/sqlstore"
	"clubevents/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Club Events API
// @version 1.0
// @description Members, events and RSVPs for the club site.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, dialect, err := database.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, dialect); err != nil {
		return err
	}
	logger.Info("database ready", "dialect", string(dialect))

	memberRepo := sqlstore.NewMemberRepository(db)
	eventRepo := sqlstore.NewEventRepository(db)
	rsvpRepo := sqlstore.NewRSVPRepository(db)

	if cfg.SeedData {
		if _, _, err := services.NewSeedService(memberRepo, eventRepo, logger).Seed(ctx); err != nil {
			return err
		}
	}

	rsvpService := services.NewRSVPService(eventRepo, memberRepo, rsvpRepo, cfg.RequestTimeout)
	memberService := services.NewMemberService(memberRepo, eventRepo, cfg.RequestTimeout)
	eventService := services.NewEventService(eventRepo, memberRepo, rsvpRepo, cfg.RequestTimeout)

	renderer, err := web.NewPageRenderer()
	if err != nil {
		return err
	}

	handler := deliveryhttp.NewHandler(deliveryhttp.Controllers{
		Members: controllers.NewMemberController(logger, memberService),
		Events:  controllers.NewEventController(logger, eventService, rsvpService),
		RSVPs:   controllers.NewRSVPController(logger, rsvpService),
		Pages:   controllers.NewPageController(logger, eventService, memberService, rsvpService, renderer),
		Health:  controllers.NewHealthController(logger, db),
	}, logger, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
