package retention

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// RowDeleter removes history rows older than age.
type RowDeleter interface {
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

// Pruner removes old report files and history rows.
type Pruner struct {
	Dir    string
	MaxAge time.Duration
	Rows   RowDeleter // optional

	now func() time.Time
}

func NewPruner(dir string, maxAge time.Duration, rows RowDeleter) *Pruner {
	return &Pruner{Dir: dir, MaxAge: maxAge, Rows: rows, now: time.Now}
}

// Run prunes once. A missing result dir is not an error.
func (p *Pruner) Run(ctx context.Context) (files int, rows int64, err error) {
	cutoff := p.now().Add(-p.MaxAge)

	entries, err := os.ReadDir(p.Dir)
	if err != nil && !os.IsNotExist(err) {
		return 0, 0, fmt.Errorf("read result dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(p.Dir, e.Name())); err != nil {
				log.Printf("retention: remove %s: %v", e.Name(), err)
				continue
			}
			files++
		}
	}

	if p.Rows != nil {
		rows, err = p.Rows.DeleteOlderThan(ctx, p.MaxAge)
		if err != nil {
			return files, 0, fmt.Errorf("prune history: %w", err)
		}
	}
	return files, rows, nil
}

// Scheduler runs a Pruner on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
}

// Start schedules p with spec (standard 5-field cron or descriptors like @daily)
// and starts the scheduler.
func Start(spec string, p *Pruner) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		files, rows, err := p.Run(ctx)
		if err != nil {
			log.Printf("retention: %v", err)
			return
		}
		log.Printf("retention: removed %d reports, %d history rows", files, rows)
	})
	if err != nil {
		return nil, fmt.Errorf("retention schedule %q: %w", spec, err)
	}
	c.Start()
	log.Printf("retention scheduled: %s, max age %v", spec, p.MaxAge)
	return &Scheduler{cron: c}, nil
}

// Stop halts the scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
