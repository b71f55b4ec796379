// Background generation scheduling — a drain loop that works through the
// prioritized batch queue and a slower organic-growth loop that injects
// small migration batches.
package population

import (
	"log/slog"
	"time"
)

const (
	// maxBatchPerTick bounds how much one drain tick may generate so a
	// single tick never starves interactive calls.
	maxBatchPerTick = 50

	// organicChance is the per-tick probability of an organic spawn.
	organicChance = 0.10
)

// Scheduler drives background population growth for the lifetime of the
// generator. The configured total target is a soft asymptote, not a
// completion contract.
type Scheduler struct {
	gen *Generator

	DrainInterval time.Duration
	SpawnInterval time.Duration

	stop chan struct{}
}

// NewScheduler creates a scheduler with the default intervals.
func NewScheduler(gen *Generator) *Scheduler {
	return &Scheduler{
		gen:           gen,
		DrainInterval: 5 * time.Second,
		SpawnInterval: 60 * time.Second,
		stop:          make(chan struct{}),
	}
}

// Run starts both loops and blocks until Stop is called.
func (s *Scheduler) Run() {
	slog.Info("population scheduler started",
		"drain_interval", s.DrainInterval,
		"spawn_interval", s.SpawnInterval,
		"queued", s.gen.QueueLen(),
	)

	drain := time.NewTicker(s.DrainInterval)
	spawn := time.NewTicker(s.SpawnInterval)
	defer drain.Stop()
	defer spawn.Stop()

	for {
		select {
		case <-drain.C:
			s.DrainOnce()
		case <-spawn.C:
			s.SpawnOnce()
		case <-s.stop:
			slog.Info("population scheduler stopped")
			return
		}
	}
}

// Stop halts both loops.
func (s *Scheduler) Stop() {
	close(s.stop)
}

// DrainOnce pops the highest-priority batch, generates up to the per-tick
// bound, and re-queues any remainder at the same priority. Errors are
// logged so one bad queue entry cannot halt the loop.
func (s *Scheduler) DrainOnce() {
	req, ok := s.gen.popMax()
	if !ok {
		return
	}

	count := req.Count
	if count > maxBatchPerTick {
		count = maxBatchPerTick
	}

	generated, err := s.gen.GenerateBatch(req.LocationID, count)
	if err != nil {
		slog.Warn("scheduled batch failed", "location", req.LocationID, "error", err)
		return
	}

	if remaining := req.Count - count; remaining > 0 {
		s.gen.Enqueue(BatchRequest{
			LocationID: req.LocationID,
			Count:      remaining,
			Priority:   req.Priority,
		})
	}

	slog.Debug("batch drained",
		"location", req.LocationID,
		"generated", len(generated),
		"requeued", req.Count-count,
	)
}

// SpawnOnce models organic growth and migration: a small chance of a tiny
// batch at a random planet, at the lowest priority.
func (s *Scheduler) SpawnOnce() {
	s.gen.mu.Lock()
	roll := s.gen.rng.Float64()
	var planetID string
	var count int
	if roll < organicChance {
		planets := s.gen.galaxy.Planets()
		if len(planets) > 0 {
			planetID = planets[s.gen.rng.Intn(len(planets))].ID
			count = 1 + s.gen.rng.Intn(5)
		}
	}
	s.gen.mu.Unlock()

	if planetID == "" {
		return
	}
	s.gen.Enqueue(BatchRequest{LocationID: planetID, Count: count, Priority: 0})
	slog.Debug("organic growth queued", "planet", planetID, "count", count)
}
