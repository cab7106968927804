package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"toxicity-coach/contract"
	"toxicity-coach/domain/event"
	"toxicity-coach/infrastructure/storage"
	"toxicity-coach/runtime/workers"
	"toxicity-coach/services"
)

type PipelineConfig struct {
	BufferSize        int
	RestartInterval   time.Duration
	RetentionPeriod   time.Duration
	RetentionInterval time.Duration
	HealthInterval    time.Duration
}

// Pipeline wires the chat stream to the sinks:
// ingestion -> moderation -> notifier, with retention and health alongside.
// Each worker runs under the supervisor and the channels are owned here.
type Pipeline struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	notifier   *workers.NotifierWorker
	Stats      *workers.Stats
}

func NewPipeline(
	log *slog.Logger,
	cfg PipelineConfig,
	source io.Reader,
	coach services.ICoachService,
	scores storage.IScoreRepository,
	sinks ...contract.EventSink,
) *Pipeline {
	stats := &workers.Stats{}
	posted := make(chan event.Event, cfg.BufferSize)
	flagged := make(chan event.Event, cfg.BufferSize)

	notifier := workers.NewNotifierWorker(log, flagged, stats, sinks...)
	supervisor := workers.NewSupervisor(log, cfg.RestartInterval).Add(
		workers.NewIngestionWorker(log, source, posted, stats),
		workers.NewModerationWorker(coach, posted, flagged, stats, log),
		notifier,
	)
	if scores != nil && cfg.RetentionPeriod > 0 && cfg.RetentionInterval > 0 {
		supervisor.Add(workers.NewRetentionWorker(log, scores, cfg.RetentionPeriod, cfg.RetentionInterval))
	}
	if cfg.HealthInterval > 0 {
		supervisor.Add(workers.NewHealthWorker(log, stats, cfg.HealthInterval))
	}
	return &Pipeline{log: log, supervisor: supervisor, notifier: notifier, Stats: stats}
}

// Run blocks until the context is canceled or the chat stream has been fully processed.
func (p *Pipeline) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-p.notifier.Drained():
			p.log.Info("Chat stream drained, stopping pipeline")
			cancel()
		case <-ctx.Done():
		}
	}()
	p.supervisor.Run(ctx)
}
