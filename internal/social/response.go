// NPC response generation — candidate shortlisting by relevance, a
// per-candidate response probability, and synthesized reactions.
package social

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avens/star-society/internal/geo"
	"github.com/avens/star-society/internal/profile"
)

const (
	// diversityPoolSize caps how many out-of-system NPCs are considered.
	diversityPoolSize = 20

	// relevanceCutoff discards candidates at or below this score.
	relevanceCutoff = 0.3

	// maxResponders caps the shortlist.
	maxResponders = 8

	// maxResponseProb caps any single response probability.
	maxResponseProb = 0.8

	// maxResponseDelay is the synthetic reaction latency ceiling. The
	// delay is a data field on the record, not a scheduled execution.
	maxResponseDelay = 5 * time.Minute
)

// baseResponseProb keys the response probability floor by role kind.
var baseResponseProb = map[profile.RoleKind]float64{
	profile.RolePersonality:    0.30,
	profile.RoleCitizen:        0.25,
	profile.RoleCityLeader:     0.20,
	profile.RolePlanetLeader:   0.20,
	profile.RoleDivisionLeader: 0.15,
}

const defaultResponseProb = 0.10

// respond evaluates the population's reaction to one player interaction.
// A missing actor profile aborts silently: reactions are best-effort
// flavor, not correctness-critical.
func (g *Graph) respond(rec *Interaction) []*Interaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	actor, ok := g.lookup(rec.ActorID)
	if !ok {
		return nil
	}

	var responses []*Interaction
	for _, npc := range g.selectCandidates(actor) {
		p := ResponseProbability(actor, npc, rec.Kind)
		if g.rng.Float64() >= p {
			continue
		}
		resp := g.synthesizeResponse(actor, npc, rec)
		if resp != nil {
			responses = append(responses, resp)
		}
	}
	return responses
}

// selectCandidates builds the primary pool (same system) plus a sampled
// diversity pool, scores relevance, discards weak candidates, and keeps
// the top entries by the composite ordering score. Caller holds the lock.
func (g *Graph) selectCandidates(actor *profile.Profile) []*profile.Profile {
	type scored struct {
		npc       *profile.Profile
		composite float64
	}

	var others []*profile.Profile
	var pool []*profile.Profile
	for _, p := range g.dir.GetAll() {
		if p.ID == actor.ID || p.Role == profile.RolePlayer {
			continue
		}
		if strings.EqualFold(p.Location.SystemID, actor.Location.SystemID) {
			pool = append(pool, p)
		} else {
			others = append(others, p)
		}
	}

	// Diversity pool: up to 20 NPCs sampled from the other systems.
	g.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if len(others) > diversityPoolSize {
		others = others[:diversityPoolSize]
	}
	pool = append(pool, others...)

	var survivors []scored
	for _, npc := range pool {
		if Relevance(actor, npc) <= relevanceCutoff {
			continue
		}
		survivors = append(survivors, scored{npc: npc, composite: composite(actor, npc)})
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].composite > survivors[j].composite
	})
	if len(survivors) > maxResponders {
		survivors = survivors[:maxResponders]
	}

	out := make([]*profile.Profile, len(survivors))
	for i, s := range survivors {
		out[i] = s.npc
	}
	return out
}

// distanceBetween returns the 3-D distance, or +Inf when either side has
// no coordinates.
func distanceBetween(a, b *profile.Profile) float64 {
	if a.Location.Coordinates == nil || b.Location.Coordinates == nil {
		return math.Inf(1)
	}
	return geo.Distance(*a.Location.Coordinates, *b.Location.Coordinates)
}

// Relevance scores how likely a candidate is to care about the actor at
// all. Candidates scoring at or below the cutoff are dropped.
func Relevance(actor, npc *profile.Profile) float64 {
	score := 0.0

	d := distanceBetween(actor, npc)
	if d < 10 {
		score += 0.4
	} else if d < 100 {
		score += 0.2
	}

	if actor.Faction != nil {
		if npc.Faction != nil && npc.Faction.ID == actor.Faction.ID {
			score += 0.3
		} else {
			score += 0.1
		}
	}

	score += actor.Reputation.Match(npc.Reputation) * 0.2

	if actor.Traits != nil && npc.Traits != nil {
		score += actor.Traits.Match(*npc.Traits) * 0.1
	}

	return score
}

// composite is the ordering score for survivors: location 0.4, reputation
// match 0.3, personality match 0.2, faction relation 0.1.
func composite(actor, npc *profile.Profile) float64 {
	loc := 0.0
	switch d := distanceBetween(actor, npc); {
	case d < 10:
		loc = 1.0
	case d < 100:
		loc = 0.5
	}

	fac := 0.0
	if actor.Faction != nil {
		if npc.Faction != nil && npc.Faction.ID == actor.Faction.ID {
			fac = 1.0
		} else {
			fac = 0.3
		}
	}

	pers := 0.0
	if actor.Traits != nil && npc.Traits != nil {
		pers = actor.Traits.Match(*npc.Traits)
	}

	return 0.4*loc + 0.3*actor.Reputation.Match(npc.Reputation) + 0.2*pers + 0.1*fac
}

// ResponseProbability is monotonically non-decreasing in actor reputation,
// all else equal, and capped at 0.8.
func ResponseProbability(actor, npc *profile.Profile, kind InteractionKind) float64 {
	p, ok := baseResponseProb[npc.Role]
	if !ok {
		p = defaultResponseProb
	}

	p += actor.Reputation.Overall / 100 * 0.2

	switch d := distanceBetween(actor, npc); {
	case d < 1:
		p += 0.3
	case d < 10:
		p += 0.1
	}

	switch kind {
	case KindComment:
		p += 0.1
	case KindShare:
		p += 0.05
	}

	if p > maxResponseProb {
		p = maxResponseProb
	}
	return p
}

// synthesizeResponse builds one NPC reaction: a weighted kind draw, and
// for comments a role-keyed template shaped by the responder's traits.
// Caller holds the lock.
func (g *Graph) synthesizeResponse(actor, npc *profile.Profile, rec *Interaction) *Interaction {
	kind := KindLike
	switch r := g.rng.Float64(); {
	case r < 0.6:
		kind = KindLike
	case r < 0.9:
		kind = KindComment
	default:
		kind = KindShare
	}

	text := ""
	if kind == KindComment {
		rendered, err := g.renderComment(actor, npc)
		if err != nil {
			slog.Warn("comment synthesis failed", "npc", npc.ID, "error", err)
			return nil
		}
		text = rendered
	}

	return &Interaction{
		ID:         uuid.NewString(),
		ActorID:    npc.ID,
		TargetID:   rec.TargetID,
		TargetKind: rec.TargetKind,
		Kind:       kind,
		Text:       text,
		CreatedAt:  time.Now().Add(time.Duration(g.rng.Int63n(int64(maxResponseDelay)))),
		Visibility: VisibilityPublic,
		Origin:     OriginNPCEcho,
	}
}

// renderComment picks a role-keyed template, fills its slots from actor
// and responder context, and applies the trait post-processing.
func (g *Graph) renderComment(actor, npc *profile.Profile) (string, error) {
	pool, ok := profile.CommentPools[npc.Role]
	if !ok {
		pool = profile.CommentPools[profile.RoleCitizen]
	}
	tmpl := pool[g.rng.Intn(len(pool))]

	values := map[string]string{
		"playerName":     actor.Name,
		"playerLocation": locationName(actor),
		"npcLocation":    locationName(npc),
		"topic":          profile.CommentTopics[g.rng.Intn(len(profile.CommentTopics))],
		"systems":        fmt.Sprintf("%d", 10+g.rng.Intn(50)),
		"region":         npc.Location.SystemName + " region",
	}
	text, err := tmpl.Render(profile.MapResolver(values))
	if err != nil {
		return "", err
	}

	if npc.Traits != nil {
		if npc.Traits.Humor > 0.7 {
			text += " " + profile.CommentEmojis[g.rng.Intn(len(profile.CommentEmojis))]
		}
		if npc.Traits.Aggression > 0.7 {
			for strong, mild := range profile.MilderSynonyms {
				text = strings.ReplaceAll(text, strong, mild)
			}
		}
		if npc.Traits.Cooperation > 0.8 {
			text += profile.CollaborationPhrases[g.rng.Intn(len(profile.CollaborationPhrases))]
		}
	}
	return text, nil
}

func locationName(p *profile.Profile) string {
	if p.Location.CityName != "" {
		return p.Location.CityName
	}
	if p.Location.PlanetName != "" {
		return p.Location.PlanetName
	}
	return p.Location.SystemName
}
