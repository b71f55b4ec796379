// Package population synthesizes the generated population: statistically
// plausible profiles per location, produced lazily in prioritized batches.
package population

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/avens/star-society/internal/geo"
	"github.com/avens/star-society/internal/profile"
)

// Sink receives generated profiles for durable storage. Calls are
// best-effort: failures are logged at the call site, never propagated.
type Sink interface {
	SaveProfile(p *profile.Profile) error
}

// BatchRequest is one queued unit of generation work. Requests live only
// for the process lifetime.
type BatchRequest struct {
	LocationID string
	Count      int
	Priority   int
}

// Generator owns the generated-profile map and the batch queue.
type Generator struct {
	mu sync.RWMutex

	galaxy   *geo.Galaxy
	noise    *geo.NoiseField
	rng      *rand.Rand
	variance float64 // trait perturbation bound
	sink     Sink

	profiles map[string]*profile.Profile
	order    []*profile.Profile // insertion order, backs GetAll
	queue    []BatchRequest
	placed   int // serial for position jitter
}

// NewGenerator builds a generator over a galaxy and seeds the batch queue
// with one request per planet at 10% of its population target.
func NewGenerator(galaxy *geo.Galaxy, seed int64, sink Sink) *Generator {
	g := &Generator{
		galaxy:   galaxy,
		noise:    geo.NewNoiseField(seed + 100),
		rng:      rand.New(rand.NewSource(seed + 300)),
		variance: 0.1,
		sink:     sink,
		profiles: make(map[string]*profile.Profile),
	}
	g.seedQueue()
	return g
}

func (g *Generator) seedQueue() {
	for _, sys := range g.galaxy.Systems() {
		for _, p := range sys.Planets {
			count := p.PopulationTarget / 10
			if count < 1 {
				count = 1
			}
			g.queue = append(g.queue, BatchRequest{
				LocationID: p.ID,
				Count:      count,
				Priority:   sys.EconomicLevel + p.DevelopmentLevel,
			})
		}
	}
}

// GenerateBatch synthesizes up to count new profiles at the given location
// id (system, planet, or city), inserting each into the profile map. An
// unresolvable id returns geo.ErrLocationNotFound without mutating state.
func (g *Generator) GenerateBatch(locationID string, count int) ([]*profile.Profile, error) {
	loc, err := g.galaxy.Resolve(locationID)
	if err != nil {
		return nil, fmt.Errorf("generate batch: %w", err)
	}

	g.mu.Lock()
	out := make([]*profile.Profile, 0, count)
	for i := 0; i < count; i++ {
		p := g.synthesize(loc)
		g.profiles[p.ID] = p
		g.order = append(g.order, p)
		out = append(out, p)
	}
	g.mu.Unlock()

	for _, p := range out {
		g.persist(p)
	}
	return out, nil
}

// ForceGenerate is an immediate, out-of-band GenerateBatch for operator
// triggered generation; it bypasses the queue entirely.
func (g *Generator) ForceGenerate(locationID string, count int) ([]*profile.Profile, error) {
	slog.Info("forced generation", "location", locationID, "count", count)
	return g.GenerateBatch(locationID, count)
}

func (g *Generator) persist(p *profile.Profile) {
	if g.sink == nil {
		return
	}
	if err := g.sink.SaveProfile(p); err != nil {
		slog.Warn("profile sink write failed", "profile", p.ID, "error", err)
	}
}

// GetAll returns every generated profile in insertion order.
func (g *Generator) GetAll() []*profile.Profile {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*profile.Profile, len(g.order))
	copy(out, g.order)
	return out
}

// GetByID looks up a profile by id.
func (g *Generator) GetByID(id string) (*profile.Profile, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.profiles[id]
	return p, ok
}

// GetByLocation filters by case-insensitive substring match on each
// supplied id filter; empty filters are ignored, present ones AND-combine.
func (g *Generator) GetByLocation(systemID, planetID, cityID string) []*profile.Profile {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*profile.Profile
	for _, p := range g.order {
		if !matchLoc(p.Location.SystemID, systemID) ||
			!matchLoc(p.Location.PlanetID, planetID) ||
			!matchLoc(p.Location.CityID, cityID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchLoc(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// GetByType returns all profiles of one role kind.
func (g *Generator) GetByType(kind profile.RoleKind) []*profile.Profile {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*profile.Profile
	for _, p := range g.order {
		if p.Role == kind {
			out = append(out, p)
		}
	}
	return out
}

// Stats is the on-demand population aggregate; never cached.
type Stats struct {
	TotalGenerated       int                      `json:"total_generated"`
	TargetPopulation     int                      `json:"target_population"`
	CompletionPercentage float64                  `json:"completion_percentage"`
	TypeDistribution     map[profile.RoleKind]int `json:"type_distribution"`
	LocationDistribution map[string]int           `json:"location_distribution"`
	QueuedBatches        int                      `json:"queued_batches"`
}

// PopulationStats computes the aggregate over the current population.
func (g *Generator) PopulationStats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		TotalGenerated:       len(g.order),
		TargetPopulation:     g.galaxy.TotalTarget(),
		TypeDistribution:     make(map[profile.RoleKind]int),
		LocationDistribution: make(map[string]int),
		QueuedBatches:        len(g.queue),
	}
	for _, p := range g.order {
		s.TypeDistribution[p.Role]++
		s.LocationDistribution[p.Location.SystemID]++
	}
	if s.TargetPopulation > 0 {
		s.CompletionPercentage = float64(s.TotalGenerated) / float64(s.TargetPopulation) * 100
	}
	return s
}

// Enqueue adds a batch request to the queue.
func (g *Generator) Enqueue(req BatchRequest) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queue = append(g.queue, req)
}

// popMax removes and returns the highest-priority queued request.
func (g *Generator) popMax() (BatchRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.queue) == 0 {
		return BatchRequest{}, false
	}
	best := 0
	for i := 1; i < len(g.queue); i++ {
		if g.queue[i].Priority > g.queue[best].Priority {
			best = i
		}
	}
	req := g.queue[best]
	g.queue = append(g.queue[:best], g.queue[best+1:]...)
	return req, true
}

// QueueLen reports the number of pending batch requests.
func (g *Generator) QueueLen() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.queue)
}
