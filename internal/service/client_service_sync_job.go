package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
)

// defaultSyncInterval is used when Start receives a non-positive interval.
const defaultSyncInterval = 5 * time.Minute

// clientSyncJob periodically refreshes the local subscription and room state.
// Each tick runs one subscription sync followed by one room sync under a
// shared run id, so the log entries of a cycle can be grouped.
type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger
	uuid        *utils.UUIDGenerator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob returns an idle job; nothing runs until Start.
func NewClientSyncJob(syncService ClientSyncService, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: log, uuid: utils.NewUUIDGenerator()}
}

// Start replaces any previously running job with a fresh background loop
// ticking every interval, [defaultSyncInterval] when non-positive. The loop
// exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go j.loop(jobCtx, interval)
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

// Stop cancels the loop and waits for it to exit. No-op when idle.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// runOnce drives one sync cycle. Failures are logged and swallowed: the next
// tick gets a fresh attempt.
func (j *clientSyncJob) runOnce(ctx context.Context) {
	log := j.logger.With().Str("sync_run", j.uuid.Generate()).Logger()
	ctx = log.WithContext(ctx)

	if _, err := j.syncService.SyncSubscriptions(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("background subscription sync failed")
	}
	if _, err := j.syncService.SyncRooms(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("background room sync failed")
	}
}
