//go:generate go run go.uber.org/mock/mockgen -source=score_repository.go -destination=../../mocks/mock_score_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"toxicity-coach/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const scorePrefix = "score:"

// ScoreRecord is what is kept of a scored message: ids, scores and decision, never the content.
type ScoreRecord struct {
	MessageID uuid.UUID
	Guild     string
	Channel   string
	User      string
	CreatedAt time.Time
	Scores    domain.LabelScores
	Triggered bool
	Lang      string
}

type IScoreRepository interface {
	Record(record ScoreRecord) error
	RecentUserScores(guild, user string, since time.Time) ([]ScoreRecord, error)
	PurgeOlderThan(cutoff time.Time) (int, error)
}

type ScoreRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewScoreRepository(db *badger.DB, log *slog.Logger) *ScoreRepository {
	return &ScoreRepository{db: db, log: log}
}

// scoreKey is "score:{guild}:{user}:{unix_nano_padded}:{message_id}".
// The 19-digit padding keeps a user's records in chronological order.
func scoreKey(r ScoreRecord) []byte {
	return []byte(fmt.Sprintf("%s%s:%s:%019d:%s", scorePrefix, r.Guild, r.User, r.CreatedAt.UnixNano(), r.MessageID))
}

// Record inserts or replaces the record of a message.
func (s ScoreRepository) Record(record ScoreRecord) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(scoreKey(record), data)
	})
}

// RecentUserScores returns the records of a user created at or after since, oldest first.
func (s ScoreRepository) RecentUserScores(guild, user string, since time.Time) ([]ScoreRecord, error) {
	prefix := []byte(fmt.Sprintf("%s%s:%s:", scorePrefix, guild, user))
	seek := append(append([]byte{}, prefix...), []byte(fmt.Sprintf("%019d", max(since.UnixNano(), 0)))...)

	var records []ScoreRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				record, err := DecodeScoreRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch scores of %s in %s: %w", user, guild, err)
	}
	return records, nil
}

// PurgeOlderThan deletes every record created before cutoff and returns how many were removed.
func (s ScoreRepository) PurgeOlderThan(cutoff time.Time) (int, error) {
	prefix := []byte(scorePrefix)
	var expired [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			at, err := keyTime(key)
			if err != nil {
				s.log.Warn("Skipping unreadable score key", "key", string(key), "error", err)
				continue
			}
			if at < cutoff.UnixNano() {
				expired = append(expired, key)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range expired {
		if err := wb.Delete(key); err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	return len(expired), nil
}

// keyTime reads the timestamp segment, second from the end since ids never hold ':'.
func keyTime(key []byte) (int64, error) {
	parts := strings.Split(string(key), ":")
	if len(parts) < 5 {
		return 0, fmt.Errorf("unexpected score key")
	}
	return strconv.ParseInt(parts[len(parts)-2], 10, 64)
}

func encodeRecord(r ScoreRecord) ([]byte, error) {
	scores := make(map[string]any, len(domain.Labels))
	for label, v := range r.Scores.Map() {
		scores[label] = v
	}
	s, err := structpb.NewStruct(map[string]any{
		"message_id": r.MessageID.String(),
		"guild":      r.Guild,
		"channel":    r.Channel,
		"user":       r.User,
		"created_at": r.CreatedAt.UTC().Format(time.RFC3339Nano),
		"triggered":  r.Triggered,
		"lang":       r.Lang,
		"scores":     scores,
	})
	if err != nil {
		return nil, fmt.Errorf("encode score record: %w", err)
	}
	return proto.Marshal(s)
}

// DecodeScoreRecord reads a value written by Record.
func DecodeScoreRecord(data []byte) (ScoreRecord, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return ScoreRecord{}, fmt.Errorf("decode score record: %w", err)
	}
	fields := s.GetFields()
	id, err := uuid.Parse(fields["message_id"].GetStringValue())
	if err != nil {
		return ScoreRecord{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return ScoreRecord{}, err
	}
	scores := make(map[string]float64, len(domain.Labels))
	for label, v := range fields["scores"].GetStructValue().GetFields() {
		scores[label] = v.GetNumberValue()
	}
	return ScoreRecord{
		MessageID: id,
		Guild:     fields["guild"].GetStringValue(),
		Channel:   fields["channel"].GetStringValue(),
		User:      fields["user"].GetStringValue(),
		CreatedAt: createdAt,
		Scores:    domain.ScoresFromMap(scores),
		Triggered: fields["triggered"].GetBoolValue(),
		Lang:      fields["lang"].GetStringValue(),
	}, nil
}
