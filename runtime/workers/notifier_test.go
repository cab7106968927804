package workers

import (
	"context"
	goerrors "errors"
	"log/slog"
	"testing"
	"time"

	"toxicity-coach/domain/event"
	"toxicity-coach/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifierWorker_Run(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockEventSink(ctrl)
	working := mocks.NewMockEventSink(ctrl)

	flagged := event.MessageFlagged{MessageID: uuid.New(), Author: "alice"}
	failing.EXPECT().Consume(gomock.Any(), flagged).Return(goerrors.New("dm closed")).Times(1)
	working.EXPECT().Consume(gomock.Any(), flagged).Return(nil).Times(1)

	in := make(chan event.Event, 2)
	in <- event.Event{Type: event.DomainType, Payload: flagged}
	in <- event.Event{Type: event.TechnicalType, Payload: "ignored"}
	close(in)

	stats := &Stats{}
	worker := NewNotifierWorker(slog.Default(), in, stats, failing, working)
	req.NoError(worker.Run(context.Background()))
	req.Equal(int64(1), stats.Notified.Load())

	select {
	case <-worker.Drained():
	case <-time.After(time.Second):
		req.Fail("Drained should be closed once the input is closed")
	}
}
