package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthWorker logs the process footprint and the pipeline counters every interval.
type HealthWorker struct {
	log      *slog.Logger
	stats    *Stats
	interval time.Duration
}

func NewHealthWorker(log *slog.Logger, stats *Stats, interval time.Duration) *HealthWorker {
	return &HealthWorker{log: log, stats: stats, interval: interval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			s := w.stats.Snapshot()
			w.log.Info("Health",
				"rss_mb", rss/1024/1024,
				"cpu_percent", cpu,
				"ingested", s.Ingested,
				"rejected", s.Rejected,
				"scored", s.Scored,
				"skipped", s.Skipped,
				"flagged", s.Flagged,
				"notified", s.Notified)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return mem.RSS, cpu, nil
}
