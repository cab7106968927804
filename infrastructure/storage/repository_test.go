package storage

import (
	"log/slog"
	"testing"
	"time"

	"toxicity-coach/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPolicyRepository_Threshold_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewPolicyRepository(openDB(t), slog.Default())
	scope := domain.Scope{Guild: "g1", Channel: "c1"}

	threshold, err := repository.Threshold(scope, domain.Insult)
	req.NoError(err)
	req.Nil(threshold)

	req.NoError(repository.UpsertThreshold(scope, domain.Insult, 0.3))
	threshold, err = repository.Threshold(scope, domain.Insult)
	req.NoError(err)
	req.NotNil(threshold)
	req.Equal(0.3, *threshold)

	req.NoError(repository.UpsertThreshold(scope, domain.Insult, 0.0))
	threshold, err = repository.Threshold(scope, domain.Insult)
	req.NoError(err)
	req.NotNil(threshold)
	req.Equal(0.0, *threshold)

	other, err := repository.Threshold(domain.Scope{Guild: "g1", Channel: "c2"}, domain.Insult)
	req.NoError(err)
	req.Nil(other)
}

func TestPolicyRepository_Closed_DB_Fails_Loudly(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	repository := NewPolicyRepository(db, slog.Default())
	req.NoError(db.Close())

	_, err = repository.Threshold(domain.Scope{Guild: "g", Channel: "c"}, domain.Threat)
	req.Error(err)
}

func TestScoreRepository_Recent_User_Scores(t *testing.T) {
	req := require.New(t)
	repository := NewScoreRepository(openDB(t), slog.Default())
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	records := []ScoreRecord{
		{MessageID: uuid.New(), Guild: "g1", Channel: "c1", User: "alice", CreatedAt: at.Add(-10 * 24 * time.Hour),
			Scores: domain.LabelScores{Toxicity: 0.2}},
		{MessageID: uuid.New(), Guild: "g1", Channel: "c1", User: "alice", CreatedAt: at.Add(-2 * time.Hour),
			Scores: domain.LabelScores{Toxicity: 0.98, SevereToxicity: 0.85, IdentityAttack: 0.9}, Triggered: true, Lang: "en"},
		{MessageID: uuid.New(), Guild: "g1", Channel: "c2", User: "alice", CreatedAt: at.Add(-1 * time.Hour),
			Scores: domain.LabelScores{Insult: 0.4512}, Lang: "en"},
		{MessageID: uuid.New(), Guild: "g1", Channel: "c1", User: "bob", CreatedAt: at.Add(-1 * time.Hour),
			Scores: domain.LabelScores{Threat: 0.95}},
		{MessageID: uuid.New(), Guild: "g2", Channel: "c1", User: "alice", CreatedAt: at.Add(-1 * time.Hour)},
	}
	// Insert newest first to check ordering comes from the key.
	for i := len(records) - 1; i >= 0; i-- {
		req.NoError(repository.Record(records[i]))
	}

	recent, err := repository.RecentUserScores("g1", "alice", at.Add(-7*24*time.Hour))
	req.NoError(err)
	req.Equal([]ScoreRecord{records[1], records[2]}, recent)

	all, err := repository.RecentUserScores("g1", "alice", time.Time{})
	req.NoError(err)
	req.Len(all, 3)

	none, err := repository.RecentUserScores("g1", "carol", time.Time{})
	req.NoError(err)
	req.Empty(none)
}

func TestScoreRepository_Purge_Older_Than(t *testing.T) {
	req := require.New(t)
	repository := NewScoreRepository(openDB(t), slog.Default())
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	for i, age := range []time.Duration{40 * 24 * time.Hour, 31 * 24 * time.Hour, 29 * 24 * time.Hour, time.Hour} {
		req.NoError(repository.Record(ScoreRecord{
			MessageID: uuid.New(),
			Guild:     "g1",
			Channel:   "c1",
			User:      []string{"alice", "bob"}[i%2],
			CreatedAt: now.Add(-age),
		}))
	}

	purged, err := repository.PurgeOlderThan(now.Add(-30 * 24 * time.Hour))
	req.NoError(err)
	req.Equal(2, purged)

	purged, err = repository.PurgeOlderThan(now.Add(-30 * 24 * time.Hour))
	req.NoError(err)
	req.Equal(0, purged)

	alice, err := repository.RecentUserScores("g1", "alice", time.Time{})
	req.NoError(err)
	bob, err := repository.RecentUserScores("g1", "bob", time.Time{})
	req.NoError(err)
	req.Len(append(alice, bob...), 2)
}
