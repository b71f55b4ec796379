package social

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avens/star-society/internal/profile"
)

// Directory is the read surface the graph needs over the generated
// population (implemented by the population generator).
type Directory interface {
	GetAll() []*profile.Profile
	GetByID(id string) (*profile.Profile, bool)
}

// Sink receives interactions and follow changes for durable storage.
// Best-effort: failures are logged, never propagated.
type Sink interface {
	SaveInteraction(rec *Interaction) error
	SaveFollowChange(followerID, targetID string, following bool) error
}

// Notifier delivers an interaction to one follower. A failing notifier
// never aborts the fan-out.
type Notifier func(followerID string, rec *Interaction) error

// Graph owns all follow edges and is the only component that mutates
// follower/following counters on profiles.
type Graph struct {
	mu sync.RWMutex

	dir    Directory
	sink   Sink
	notify Notifier
	feed   FeedSource
	rng    *rand.Rand

	// Player-controlled profiles registered directly with the graph;
	// generated profiles are reached through the directory.
	registered map[string]*profile.Profile

	// followers is the edge store: target id → set of follower ids. Edge
	// existence is the sole source of truth for follower counts.
	followers map[string]map[string]struct{}

	// history is the append-only interaction log per actor.
	history map[string][]*Interaction
}

// Option configures optional graph collaborators.
type Option func(*Graph)

// WithSink sets the outward storage sink.
func WithSink(s Sink) Option { return func(g *Graph) { g.sink = s } }

// WithNotifier sets the fan-out delivery hook.
func WithNotifier(n Notifier) Option { return func(g *Graph) { g.notify = n } }

// WithFeedSource sets the external content store for personalized feeds.
func WithFeedSource(f FeedSource) Option { return func(g *Graph) { g.feed = f } }

// NewGraph creates a graph over a profile directory.
func NewGraph(dir Directory, seed int64, opts ...Option) *Graph {
	g := &Graph{
		dir:        dir,
		rng:        rand.New(rand.NewSource(seed + 700)),
		registered: make(map[string]*profile.Profile),
		followers:  make(map[string]map[string]struct{}),
		history:    make(map[string][]*Interaction),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterProfile inserts or overwrites a profile (player profiles; the
// generator registers its own implicitly via the directory) and ensures an
// empty follower-set entry exists.
func (g *Graph) RegisterProfile(p *profile.Profile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.registered[p.ID] = p
	if g.followers[p.ID] == nil {
		g.followers[p.ID] = make(map[string]struct{})
	}
}

// lookup finds a profile among registered players first, then the
// generated population. Caller holds at least a read lock.
func (g *Graph) lookup(id string) (*profile.Profile, bool) {
	if p, ok := g.registered[id]; ok {
		return p, true
	}
	return g.dir.GetByID(id)
}

// Follow toggles the follower → target edge and reconciles both parties'
// cached counters. The following-count recount scans every edge set, which
// is O(total profiles) per call — fine at tens of thousands of profiles,
// a known limit beyond that.
func (g *Graph) Follow(followerID, targetID string, currentlyFollowing bool) {
	g.mu.Lock()

	set := g.followers[targetID]
	if set == nil {
		set = make(map[string]struct{})
		g.followers[targetID] = set
	}
	if currentlyFollowing {
		delete(set, followerID)
	} else {
		set[followerID] = struct{}{}
	}

	if target, ok := g.lookup(targetID); ok {
		target.Stats.Followers = len(set)
	}
	if follower, ok := g.lookup(followerID); ok {
		count := 0
		for _, followerSet := range g.followers {
			if _, in := followerSet[followerID]; in {
				count++
			}
		}
		follower.Stats.Following = count
	}
	g.mu.Unlock()

	if g.sink != nil {
		if err := g.sink.SaveFollowChange(followerID, targetID, !currentlyFollowing); err != nil {
			slog.Warn("follow sink write failed",
				"follower", followerID, "target", targetID, "error", err)
		}
	}
}

// IsFollowing reports whether the follower → target edge exists.
func (g *Graph) IsFollowing(followerID, targetID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.followers[targetID][followerID]
	return ok
}

// FollowerCount returns the follower-set size for a profile.
func (g *Graph) FollowerCount(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.followers[id])
}

// Followers returns the follower ids of a profile.
func (g *Graph) Followers(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.followers[id]))
	for fid := range g.followers[id] {
		out = append(out, fid)
	}
	return out
}

// Following returns the ids a profile currently follows.
func (g *Graph) Following(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []string
	for target, set := range g.followers {
		if _, in := set[id]; in {
			out = append(out, target)
		}
	}
	return out
}

// History returns an actor's interaction log, oldest first.
func (g *Graph) History(actorID string) []*Interaction {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Interaction, len(g.history[actorID]))
	copy(out, g.history[actorID])
	return out
}

// SubmitInteraction appends the record to the actor's history, fans it out
// to followers when visibility allows, mirrors it to the sink, and — for
// player-origin records only — evaluates NPC responses. Responses re-enter
// through this method tagged as npc-echo, so the chain ends after one level.
func (g *Graph) SubmitInteraction(rec *Interaction) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.Origin == "" {
		rec.Origin = OriginPlayer
	}

	g.mu.Lock()
	g.history[rec.ActorID] = append(g.history[rec.ActorID], rec)
	g.mu.Unlock()

	if g.sink != nil {
		if err := g.sink.SaveInteraction(rec); err != nil {
			slog.Warn("interaction sink write failed", "interaction", rec.ID, "error", err)
		}
	}

	if rec.Visibility == VisibilityPublic || rec.Visibility == VisibilityFollowers {
		g.fanOut(rec)
	}

	if rec.Origin == OriginPlayer {
		for _, resp := range g.respond(rec) {
			g.SubmitInteraction(resp)
		}
	}
}

// fanOut delivers the record to every current follower of the actor,
// best-effort per follower.
func (g *Graph) fanOut(rec *Interaction) {
	if g.notify == nil {
		return
	}
	for _, followerID := range g.Followers(rec.ActorID) {
		if err := g.notify(followerID, rec); err != nil {
			slog.Warn("fan-out delivery failed",
				"interaction", rec.ID, "follower", followerID, "error", err)
		}
	}
}

// PersonalizedFeed delegates to the external content store using the
// caller's current following set.
func (g *Graph) PersonalizedFeed(profileID string, limit int) ([]Content, error) {
	if g.feed == nil {
		return nil, nil
	}
	return g.feed.FeedFor(profileID, g.Following(profileID), limit)
}
