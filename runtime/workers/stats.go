package workers

import "sync/atomic"

// Stats are the pipeline counters reported by the HealthWorker.
type Stats struct {
	Ingested atomic.Int64
	Rejected atomic.Int64
	Scored   atomic.Int64
	Skipped  atomic.Int64
	Flagged  atomic.Int64
	Notified atomic.Int64
}

type StatsSnapshot struct {
	Ingested, Rejected, Scored, Skipped, Flagged, Notified int64
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Ingested: s.Ingested.Load(),
		Rejected: s.Rejected.Load(),
		Scored:   s.Scored.Load(),
		Skipped:  s.Skipped.Load(),
		Flagged:  s.Flagged.Load(),
		Notified: s.Notified.Load(),
	}
}
