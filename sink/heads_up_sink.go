package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"toxicity-coach/domain/event"

	"github.com/gookit/color"
)

// HeadsUpSink renders the private heads-up an author receives when a message is flagged.
// Writes are serialized so concurrent notifiers never interleave their blocks.
type HeadsUpSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewHeadsUpSink(w io.Writer) *HeadsUpSink {
	return &HeadsUpSink{w: w}
}

func (s *HeadsUpSink) Consume(ctx context.Context, e event.MessageFlagged) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "%s %s in %s\n%s\n%s %s\n\n",
		color.Yellow.Sprint("Heads-up for"),
		color.Bold.Sprint(e.Author),
		e.Scope,
		e.Explanation,
		color.Gray.Sprint("Preview:"),
		e.Preview,
	)
	return err
}
