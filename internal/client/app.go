package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/service"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/internal/workers"
	"github.com/MKhiriev/go-chat-sync/models"
)

// App is the client process runtime. It owns the session lifecycle, the
// startup sync, and the periodic background sync job.
type App struct {
	services *service.ClientServices
	channel  *realtime.Channel
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, channel *realtime.Channel, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if cfg == nil {
		return nil, errors.New("client config is required")
	}

	return &App{services: services, channel: channel, cfg: cfg, logger: log}, nil
}

// Run starts the client and blocks until SIGINT or SIGTERM. The session is
// restored from the local store when possible and established fresh otherwise;
// after one immediate sync the periodic job takes over.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.channel != nil {
		defer a.channel.Close()
	}

	session, err := a.ensureSession(ctx)
	if err != nil {
		return err
	}
	a.logger.Info().Str("user_id", session.UserID).Str("server", session.ServerURL).Msg("session ready")

	a.initialSync(ctx)

	background := workers.New(&syncWorker{job: a.services.SyncJob, interval: a.cfg.Workers.SyncInterval})
	background.Run(ctx)
	defer background.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received")
	return nil
}

// syncWorker adapts the periodic sync job to the workers lifecycle.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func (w *syncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}

// ensureSession restores the persisted session, falling back to a fresh login
// when none is stored or the stored one expired.
func (a *App) ensureSession(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) && !errors.Is(err, service.ErrSessionExpired) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	session, err = a.services.AuthService.EstablishSession(ctx, a.cfg.App.Login, a.cfg.App.Password)
	if err != nil {
		return models.Session{}, fmt.Errorf("establish session: %w", err)
	}
	return session, nil
}

// initialSync runs one full sync cycle at startup. Failures degrade to a
// warning; the periodic job retries on its own schedule.
func (a *App) initialSync(ctx context.Context) {
	if _, err := a.services.SyncService.SyncSubscriptions(ctx, nil); err != nil {
		a.logger.Warn().Err(err).Msg("initial subscription sync failed")
	}
	if _, err := a.services.SyncService.SyncRooms(ctx, nil); err != nil {
		a.logger.Warn().Err(err).Msg("initial room sync failed")
	}

	subs, err := a.services.SyncService.OwnedSubscriptions(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("list owned subscriptions failed")
		return
	}
	a.logger.Info().Int("count", len(subs)).Msg("subscriptions ready")
}
