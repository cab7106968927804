package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"toxicity-coach/domain/event"
	"toxicity-coach/services"
)

// ModerationWorker reviews every posted message and forwards the flagged ones.
type ModerationWorker struct {
	coach services.ICoachService
	in    <-chan event.Event
	out   chan<- event.Event
	stats *Stats
	log   *slog.Logger
}

func NewModerationWorker(coach services.ICoachService, in <-chan event.Event,
	out chan<- event.Event, stats *Stats, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{coach: coach, in: in, out: out, stats: stats, log: log}
}

func (w *ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.in:
			if !ok {
				w.log.Debug("Channel is closed")
				close(w.out)
				return nil
			}
			evt, ok := e.Payload.(event.MessagePosted)
			if !ok {
				continue
			}
			verdict, err := w.coach.Review(ctx, evt.Message)
			if err != nil {
				return fmt.Errorf("review %s: %w", evt.Message.ID, err)
			}
			if verdict.Skipped != services.NotSkipped {
				w.stats.Skipped.Add(1)
				w.log.Debug("Message skipped", "message_id", verdict.MessageID, "reason", verdict.Skipped)
				continue
			}
			w.stats.Scored.Add(1)
			if !verdict.Triggered() {
				continue
			}
			w.stats.Flagged.Add(1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.out <- toFlaggedEvent(verdict):
			}
		}
	}
}

func toFlaggedEvent(v services.Verdict) event.Event {
	now := time.Now().UTC()
	return event.Event{
		Type:      event.DomainType,
		CreatedAt: now,
		Payload: event.MessageFlagged{
			MessageID:   v.MessageID,
			Scope:       v.Scope,
			Author:      v.Author,
			Scores:      v.Scores,
			Explanation: v.Explanation,
			Preview:     v.Preview,
			Lang:        v.Lang,
			At:          now,
		},
	}
}
