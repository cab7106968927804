package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"toxicity-coach/domain"
	"toxicity-coach/infrastructure/storage"

	"github.com/samber/lo"
)

const (
	DefaultMeterWidth = 20
	meterFull         = "█"
	meterEmpty        = "░"
)

var csvHeader = []string{"timestamp_iso", "toxicity", "severe_toxicity", "insult", "threat", "obscene", "identity_attack"}

// Respect summarizes a user's recent toxicity.
type Respect struct {
	Score        float64
	AvgToxicity  float64
	PeakToxicity float64
	Samples      int
}

// RespectScore is 100 for a user without history, else (1 - average toxicity) * 100 clamped into [0,100].
func RespectScore(records []storage.ScoreRecord) Respect {
	if len(records) == 0 {
		return Respect{Score: 100}
	}
	toxicity := lo.Map(records, func(r storage.ScoreRecord, _ int) float64 { return r.Scores.Toxicity })
	avg := lo.Sum(toxicity) / float64(len(toxicity))
	return Respect{
		Score:        math.Min(100, math.Max(0, (1-avg)*100)),
		AvgToxicity:  avg,
		PeakToxicity: lo.Max(toxicity),
		Samples:      len(records),
	}
}

// Meter draws score (0..100) as a bar of width cells.
func Meter(score float64, width int) string {
	filled := int(math.Round(score / 100 * float64(width)))
	filled = lo.Clamp(filled, 0, width)
	return strings.Repeat(meterFull, filled) + strings.Repeat(meterEmpty, width-filled)
}

// ExportCSV writes one row per record, timestamps in UTC RFC3339.
func ExportCSV(w io.Writer, records []storage.ScoreRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.CreatedAt.UTC().Format(time.RFC3339)}
		for _, l := range domain.Labels {
			row = append(row, strconv.FormatFloat(r.Scores.Get(l), 'f', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

type IStatusService interface {
	Status(guild, user string) (Respect, []storage.ScoreRecord, error)
}

type StatusService struct {
	log        *slog.Logger
	repository storage.IScoreRepository
	window     time.Duration
	now        func() time.Time
}

func NewStatusService(log *slog.Logger, repository storage.IScoreRepository, window time.Duration) *StatusService {
	return &StatusService{log: log, repository: repository, window: window, now: time.Now}
}

// Status returns the respect summary of a user over the configured window and the records behind it.
func (s *StatusService) Status(guild, user string) (Respect, []storage.ScoreRecord, error) {
	since := s.now().Add(-s.window)
	records, err := s.repository.RecentUserScores(guild, user, since)
	if err != nil {
		return Respect{}, nil, fmt.Errorf("status of %s: %w", user, err)
	}
	s.log.Debug("Status computed", "guild", guild, "user", user, "samples", len(records))
	return RespectScore(records), records, nil
}
