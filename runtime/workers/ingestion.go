package workers

import (
	"bufio"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"toxicity-coach/domain"
	"toxicity-coach/domain/event"

	"github.com/google/uuid"
)

const maxLineSize = 1 << 20

// inboundMessage is one JSON line of the chat stream.
type inboundMessage struct {
	ID      string `json:"id"`
	Guild   string `json:"guild"`
	Channel string `json:"channel"`
	Author  string `json:"author"`
	Bot     bool   `json:"bot"`
	Content string `json:"content"`
}

type streamLine struct {
	text      string
	oversized bool
}

// IngestionWorker turns the JSON lines of a chat stream into MessagePosted events.
// It closes its output when the stream ends so downstream workers can drain.
type IngestionWorker struct {
	log    *slog.Logger
	reader *bufio.Reader
	out    chan<- event.Event
	stats  *Stats
}

func NewIngestionWorker(log *slog.Logger, r io.Reader, out chan<- event.Event, stats *Stats) *IngestionWorker {
	return &IngestionWorker{log: log, reader: bufio.NewReaderSize(r, 64*1024), out: out, stats: stats}
}

// Run returns as soon as the context is canceled, even while the reader is blocked.
// Lines longer than maxLineSize are dropped and counted as rejected.
func (w *IngestionWorker) Run(ctx context.Context) error {
	lines := make(chan streamLine)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		for {
			line, err := readLine(w.reader)
			if line.oversized || line.text != "" {
				select {
				case lines <- line:
				case <-ctx.Done():
					errc <- ctx.Err()
					return
				}
			}
			if err != nil {
				if goerrors.Is(err, io.EOF) {
					err = nil
				}
				errc <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("read chat stream: %w", err)
				}
				w.log.Debug("Chat stream exhausted")
				close(w.out)
				return nil
			}
			if line.oversized {
				w.stats.Rejected.Add(1)
				w.log.Warn("Dropping oversized chat line", "limit", maxLineSize)
				continue
			}
			if err := w.publish(ctx, strings.TrimSpace(line.text)); err != nil {
				return err
			}
		}
	}
}

// readLine reads up to the next newline. An oversized line is consumed
// entirely but its content is discarded.
func readLine(r *bufio.Reader) (streamLine, error) {
	var (
		buf       []byte
		oversized bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		if !oversized {
			if len(buf)+len(chunk) > maxLineSize {
				oversized, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if goerrors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return streamLine{text: string(buf), oversized: oversized}, err
	}
}

func (w *IngestionWorker) publish(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	msg, err := decodeLine(line)
	if err != nil {
		w.stats.Rejected.Add(1)
		w.log.Warn("Dropping malformed chat line", "error", err)
		return nil
	}
	w.stats.Ingested.Add(1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case w.out <- event.Event{Type: event.DomainType, CreatedAt: time.Now().UTC(), Payload: event.MessagePosted{Message: msg}}:
		return nil
	}
}

// decodeLine keeps uuid ids as is; platform ids are mapped to a stable name-based uuid.
func decodeLine(line string) (domain.ChatMessage, error) {
	var in inboundMessage
	if err := json.Unmarshal([]byte(line), &in); err != nil {
		return domain.ChatMessage{}, err
	}
	if in.Author == "" {
		return domain.ChatMessage{}, fmt.Errorf("missing author")
	}
	id, err := uuid.Parse(in.ID)
	if err != nil {
		if in.ID == "" {
			id = uuid.New()
		} else {
			id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(in.ID))
		}
	}
	return domain.ChatMessage{
		ID:        id,
		Guild:     in.Guild,
		Channel:   in.Channel,
		Author:    in.Author,
		IsBot:     in.Bot,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}, nil
}
