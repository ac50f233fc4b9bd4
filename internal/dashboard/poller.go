package dashboard

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"fuel-console/internal/cache"
	"fuel-console/internal/metrics"
	"fuel-console/internal/models"
	"fuel-console/internal/timeutil"
)

// Source fetches the dashboard figures from the backend.
type Source interface {
	GetDashboard(ctx context.Context) (*models.DashboardData, error)
}

// Poller refreshes the dashboard snapshot on a fixed interval and pushes
// every result to the hub.
type Poller struct {
	source    Source
	hub       *Hub
	interval  time.Duration
	scheduler gocron.Scheduler
	now       func() time.Time

	mu       sync.RWMutex
	snapshot models.DashboardSnapshot
}

// NewPoller creates a poller. hub may be nil.
func NewPoller(source Source, hub *Hub, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{
		source:   source,
		hub:      hub,
		interval: interval,
		now:      timeutil.Now,
	}
}

// Start schedules the poll job. The first poll runs immediately. A slow
// backend delays the next run instead of stacking requests.
func (p *Poller) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(p.Poll),
		gocron.WithName("dashboard-poll"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		scheduler.Shutdown()
		return err
	}

	p.scheduler = scheduler
	scheduler.Start()
	log.Printf("[Dashboard] Polling backend every %s", p.interval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running poll to finish.
func (p *Poller) Stop() error {
	if p.scheduler == nil {
		return nil
	}
	log.Printf("[Dashboard] Stopping poller")
	return p.scheduler.Shutdown()
}

// Poll fetches the dashboard once. A failed fetch keeps the previous
// figures and records the error on the snapshot.
func (p *Poller) Poll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	data, err := p.source.GetDashboard(ctx)

	p.mu.Lock()
	if err != nil {
		log.Printf("[Dashboard] Poll failed: %v", err)
		metrics.DashboardPollsTotal.WithLabelValues("error").Inc()
		p.snapshot.Error = err.Error()
	} else {
		metrics.DashboardPollsTotal.WithLabelValues("ok").Inc()
		p.snapshot = models.DashboardSnapshot{
			Data:      data,
			FetchedAt: p.now().Format(time.RFC3339),
		}
	}
	snap := p.snapshot
	p.mu.Unlock()

	p.mirror(ctx, snap)
	if p.hub != nil {
		p.hub.Broadcast(snap)
	}
}

// Snapshot returns the latest poll result.
func (p *Poller) Snapshot() models.DashboardSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Restore seeds the snapshot from Redis so a restarted console serves the
// last known figures before its first poll completes.
func (p *Poller) Restore(ctx context.Context) bool {
	raw, ok := cache.GetCached(ctx, cache.DashboardSnapshotKey)
	if !ok {
		return false
	}
	var snap models.DashboardSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Printf("[Dashboard] Ignoring cached snapshot: %v", err)
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snapshot.Data != nil {
		return false
	}
	p.snapshot = snap
	return true
}

func (p *Poller) mirror(ctx context.Context, snap models.DashboardSnapshot) {
	if !cache.Enabled() || snap.Data == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := cache.SetCached(ctx, cache.DashboardSnapshotKey, raw, 0); err != nil {
		log.Printf("[Redis] Failed to store dashboard snapshot: %v", err)
	}
}
