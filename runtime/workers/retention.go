package workers

import (
	"context"
	"log/slog"
	"time"

	"toxicity-coach/infrastructure/storage"
)

// RetentionWorker purges score history older than the retention period, once at start then every interval.
type RetentionWorker struct {
	log        *slog.Logger
	repository storage.IScoreRepository
	retention  time.Duration
	interval   time.Duration
	now        func() time.Time
}

func NewRetentionWorker(log *slog.Logger, repository storage.IScoreRepository, retention, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{log: log, repository: repository, retention: retention, interval: interval, now: time.Now}
}

func (w *RetentionWorker) Run(ctx context.Context) error {
	if err := w.purge(); err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.purge(); err != nil {
				return err
			}
		}
	}
}

func (w *RetentionWorker) purge() error {
	cutoff := w.now().Add(-w.retention)
	purged, err := w.repository.PurgeOlderThan(cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		w.log.Info("Score history purged", "records", purged, "cutoff", cutoff.UTC().Format(time.RFC3339))
	}
	return nil
}
