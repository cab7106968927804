package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"toxicity-coach/contract"
	"toxicity-coach/domain/event"
)

// NotifierWorker hands flagged messages to the sinks.
// A failing sink is logged and skipped; the other sinks still get the event.
type NotifierWorker struct {
	log     *slog.Logger
	in      <-chan event.Event
	sinks   []contract.EventSink
	stats   *Stats
	drained chan struct{}
	once    *sync.Once
}

func NewNotifierWorker(log *slog.Logger, in <-chan event.Event, stats *Stats, sinks ...contract.EventSink) *NotifierWorker {
	return &NotifierWorker{
		log:     log,
		in:      in,
		sinks:   sinks,
		stats:   stats,
		drained: make(chan struct{}),
		once:    &sync.Once{},
	}
}

// Drained is closed once the input channel has been closed and emptied.
func (w *NotifierWorker) Drained() <-chan struct{} {
	return w.drained
}

func (w *NotifierWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-w.in:
			if !ok {
				w.once.Do(func() { close(w.drained) })
				return nil
			}
			flagged, ok := e.Payload.(event.MessageFlagged)
			if !ok {
				continue
			}
			for _, sink := range w.sinks {
				if err := sink.Consume(ctx, flagged); err != nil {
					w.log.Error("Sink failed", "sink", fmt.Sprintf("%T", sink), "message_id", flagged.MessageID, "error", err)
				}
			}
			w.stats.Notified.Add(1)
		}
	}
}
