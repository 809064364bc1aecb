package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/migration"
	"github.com/avstrong/hotel/internal/storage/memory"
	"github.com/avstrong/hotel/internal/transport/web"
)

func Run(cfg config.Config, l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	storage := memory.New(memory.Config{L: l.With("component", "storage")})

	if cfg.SeedDemoHotel {
		seed := migration.Seed{HotelName: cfg.DemoHotelName, BasePrice: cfg.DemoBasePrice}
		if err := migration.Up(ctx, l.With("component", "migration"), storage, seed); err != nil {
			return fmt.Errorf("seed demo hotel: %w", err)
		}
	}

	bookManager := booking.New(l.With("component", "booking"), storage)

	webConf := web.Conf{
		L:                 l.With("component", "http"),
		ServerLogger:      l.Std(),
		Host:              cfg.HTTPHost,
		Port:              cfg.HTTPPort,
		ReadHeaderTimeout: cfg.HTTPReadHeaderTimeout,
		LivenessEndpoint:  cfg.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, bookManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v in %q environment...", webConf.Host, webConf.Port, cfg.Env)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		cancel()

		return fmt.Errorf("run http server: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
