// Individual synthesis — role, archetype, traits, name, profession,
// reputation, achievements, stats, and memberships for one profile.
package population

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avens/star-society/internal/geo"
	"github.com/avens/star-society/internal/profile"
)

// baseRoleWeights is the global role distribution before location
// multipliers, in percent.
var baseRoleWeights = map[profile.RoleKind]float64{
	profile.RoleCitizen:        85,
	profile.RolePersonality:    5,
	profile.RoleCityLeader:     3,
	profile.RolePlanetLeader:   1,
	profile.RoleDivisionLeader: 2,
	profile.RoleBusinessLeader: 2,
	profile.RoleScientist:      1.5,
	profile.RoleArtist:         0.5,
}

// followerRanges is the base follower-count range per role, before scaling
// by reputation.
var followerRanges = map[profile.RoleKind][2]int{
	profile.RoleCitizen:        {10, 3000},
	profile.RolePersonality:    {10000, 100000},
	profile.RoleCityLeader:     {5000, 50000},
	profile.RolePlanetLeader:   {20000, 150000},
	profile.RoleDivisionLeader: {5000, 40000},
	profile.RoleBusinessLeader: {5000, 60000},
	profile.RoleScientist:      {2000, 30000},
	profile.RoleArtist:         {8000, 80000},
}

// synthesize creates one profile at the resolved location. Caller holds
// the write lock.
func (g *Generator) synthesize(loc geo.Location) *profile.Profile {
	sys := loc.System
	planet := loc.Planet
	if planet == nil && len(sys.Planets) > 0 {
		planet = sys.Planets[g.rng.Intn(len(sys.Planets))]
	}
	city := loc.City
	if city == nil && planet != nil && len(planet.Cities) > 0 {
		city = planet.Cities[g.rng.Intn(len(planet.Cities))]
	}

	role := g.pickRole(sys, planet, city)
	arch := g.pickArchetype(sys.ID)
	traits := g.rollTraits(arch)
	name := g.makeName(sys.ID)
	prof := g.pickProfession(role, arch, planet, city)
	rep := g.rollReputation(prof, traits, sys)
	achievements := g.rollAchievements(rep, planet, sys, prof)
	stats := g.rollStats(role, rep)

	p := &profile.Profile{
		ID:           uuid.NewString(),
		Name:         name,
		Role:         role,
		Archetype:    arch.Name,
		Profession:   prof,
		Stats:        stats,
		Achievements: achievements,
		Reputation:   rep,
		Traits:       &traits,
		Faction:      g.rollFaction(role, sys),
	}

	p.Location = profile.Location{
		SystemID:   sys.ID,
		SystemName: sys.Name,
	}
	base := geo.Coord{}
	if planet != nil {
		p.Location.PlanetID = planet.ID
		p.Location.PlanetName = planet.Name
		base = planet.Coordinates
	}
	if city != nil {
		p.Location.CityID = city.ID
		p.Location.CityName = city.Name
		base = city.Coordinates
	}
	pos := g.noise.Jitter(base, g.placed)
	g.placed++
	p.Location.Coordinates = &pos

	if civ, ok := profile.Civilizations[sys.ID]; ok {
		c := civ
		p.Civilization = &c
	}

	return p
}

// pickRole samples the role distribution after applying the location
// conditioned multipliers.
func (g *Generator) pickRole(sys *geo.System, planet *geo.Planet, city *geo.City) profile.RoleKind {
	weights := make(map[profile.RoleKind]float64, len(baseRoleWeights))
	for k, v := range baseRoleWeights {
		weights[k] = v
	}

	military := sys.MilitaryLevel >= 8 || (city != nil && city.Type == geo.CityMilitary)
	research := sys.ScientificLevel >= 8 || (city != nil && city.Type == geo.CityResearch)
	trade := sys.EconomicLevel >= 8 || (city != nil && city.Type == geo.CityTrade)

	if military {
		weights[profile.RoleDivisionLeader] *= 3
		weights[profile.RoleCitizen] *= 0.8
	}
	if research {
		weights[profile.RoleScientist] *= 4
		weights[profile.RolePersonality] *= 2
	}
	if trade {
		weights[profile.RoleBusinessLeader] *= 3
	}
	if city != nil && city.Type == geo.CityCapital {
		weights[profile.RoleCityLeader] *= 5
		weights[profile.RolePlanetLeader] *= 3
	}

	// Weighted draw in fixed role order so the same seed gives the same
	// sequence.
	total := 0.0
	for _, k := range profile.GeneratedRoles {
		total += weights[k]
	}
	r := g.rng.Float64() * total
	for _, k := range profile.GeneratedRoles {
		r -= weights[k]
		if r <= 0 {
			return k
		}
	}
	return profile.RoleCitizen
}

// pickArchetype prefers archetypes typical for the system, falling back to
// a uniform pick over all eight.
func (g *Generator) pickArchetype(systemID string) profile.Archetype {
	pool := profile.ArchetypesForSystem(systemID)
	if len(pool) == 0 {
		pool = profile.Archetypes
	}
	return pool[g.rng.Intn(len(pool))]
}

// rollTraits samples each trait within the archetype range, perturbs it by
// the variance bound, and clamps to [0,1].
func (g *Generator) rollTraits(arch profile.Archetype) profile.PersonalityTraits {
	roll := func(r profile.TraitRange) float64 {
		v := r.Min + g.rng.Float64()*(r.Max-r.Min)
		v += (g.rng.Float64()*2 - 1) * g.variance
		return clamp(v, 0, 1)
	}
	return profile.PersonalityTraits{
		Humor:       roll(arch.Humor),
		Aggression:  roll(arch.Aggression),
		Cooperation: roll(arch.Cooperation),
		Ambition:    roll(arch.Ambition),
		Curiosity:   roll(arch.Curiosity),
	}
}

// makeName draws first + last from the system's culture table, with a 30%
// chance of a title prefix and an independent 10% chance of a suffix.
func (g *Generator) makeName(systemID string) string {
	culture := profile.CultureFor(systemID)
	name := culture.First[g.rng.Intn(len(culture.First))] + " " +
		culture.Last[g.rng.Intn(len(culture.Last))]
	if len(culture.Titles) > 0 && g.rng.Float64() < 0.30 {
		name = culture.Titles[g.rng.Intn(len(culture.Titles))] + " " + name
	}
	if len(culture.Suffixes) > 0 && g.rng.Float64() < 0.10 {
		name = name + " " + culture.Suffixes[g.rng.Intn(len(culture.Suffixes))]
	}
	return name
}

// pickProfession draws from the role-specific list for leadership and
// specialist roles, otherwise from the archetype pool unioned with the
// location-conditioned additions.
func (g *Generator) pickProfession(role profile.RoleKind, arch profile.Archetype, planet *geo.Planet, city *geo.City) string {
	if list, ok := profile.RoleProfessions[role]; ok {
		return list[g.rng.Intn(len(list))]
	}

	pool := append([]string(nil), arch.Professions...)
	if city != nil {
		pool = append(pool, profile.CityProfessions[city.Type]...)
	}
	if planet != nil {
		pool = append(pool, profile.PlanetProfessions[planet.Type]...)
	}
	if len(pool) == 0 {
		return "Colonist"
	}
	return pool[g.rng.Intn(len(pool))]
}

// rollReputation computes overall and category scores from the profession
// background weights, a personality bonus, and local prestige.
func (g *Generator) rollReputation(prof string, traits profile.PersonalityTraits, sys *geo.System) profile.Reputation {
	base := 30 + g.rng.Float64()*40
	personality := (traits.Ambition + traits.Cooperation + traits.Curiosity) / 3 * 20
	prestige := float64(sys.EconomicLevel+sys.ScientificLevel+sys.CulturalDiversity) / 3 * 5
	overall := clamp(base+personality+prestige, 0, 100)

	weights := profile.WeightsFor(prof)
	category := func(i int) float64 {
		noise := g.rng.Float64()*20 - 10
		return clamp(overall*weights[i]+noise, 0, 100)
	}
	return profile.Reputation{
		Overall:    overall,
		Military:   category(0),
		Economic:   category(1),
		Diplomatic: category(2),
		Scientific: category(3),
		Cultural:   category(4),
	}
}

// rollAchievements fills achievement slots from the profile's strongest
// categories. A template that fails its requirement check is skipped, not
// retried, so fewer achievements than slots is normal.
func (g *Generator) rollAchievements(rep profile.Reputation, planet *geo.Planet, sys *geo.System, prof string) []profile.Achievement {
	slots := int(rep.Overall/25) + g.rng.Intn(3)
	if slots == 0 {
		return nil
	}

	top := topCategories(rep, 3)
	locationName := sys.Name
	if planet != nil {
		locationName = planet.Name
	}
	locationKey := strings.ToLower(locationName + " " + sys.Name + " " +
		planetID(planet) + " " + sys.ID)
	professionKey := strings.ToLower(prof)

	var out []profile.Achievement
	for i := 0; i < slots; i++ {
		cat := profile.CategoryForIndex(top[g.rng.Intn(len(top))])
		if cat == profile.CategoryScientific && g.rng.Float64() < 0.30 {
			cat = profile.CategoryExploration
		}
		pool := profile.AchievementTemplates[cat]
		tmpl := pool[g.rng.Intn(len(pool))]

		if rep.Overall < tmpl.MinReputation {
			continue
		}
		if tmpl.RequiresLocation != "" &&
			!strings.Contains(locationKey, strings.ToLower(tmpl.RequiresLocation)) {
			continue
		}
		if tmpl.RequiresProfession != "" &&
			!strings.Contains(professionKey, strings.ToLower(tmpl.RequiresProfession)) {
			continue
		}

		a, err := g.fillAchievement(tmpl, locationName, sys.Name)
		if err != nil {
			slog.Warn("achievement template skipped", "error", err)
			continue
		}
		out = append(out, a)
	}
	return out
}

// fillAchievement resolves template slots once and renders both title and
// description with the same values.
func (g *Generator) fillAchievement(tmpl profile.AchievementTemplate, locationName, systemName string) (profile.Achievement, error) {
	values := make(map[string]string)
	for _, slot := range append(append([]string(nil), tmpl.Title.Slots...), tmpl.Description.Slots...) {
		if _, done := values[slot]; done {
			continue
		}
		if candidates, ok := profile.SlotCandidates[slot]; ok {
			values[slot] = candidates[g.rng.Intn(len(candidates))]
			continue
		}
		switch slot {
		case "location":
			values[slot] = locationName
		case "region":
			values[slot] = systemName + " region"
		default:
			return profile.Achievement{}, fmt.Errorf("achievement template: no resolver for slot %q", slot)
		}
	}

	resolve := profile.MapResolver(values)
	title, err := tmpl.Title.Render(resolve)
	if err != nil {
		return profile.Achievement{}, err
	}
	desc, err := tmpl.Description.Render(resolve)
	if err != nil {
		return profile.Achievement{}, err
	}

	return profile.Achievement{
		ID:          uuid.NewString(),
		Title:       title,
		Description: desc,
		Category:    tmpl.Category,
		Rarity:      tmpl.Rarity,
		EarnedAt:    time.Now().Add(-time.Duration(g.rng.Int63n(int64(2 * 365 * 24 * time.Hour)))),
		Public:      g.rng.Float64() < 0.90,
	}, nil
}

// rollStats derives the counter block from role and reputation. Higher
// reputation means more followers and more recent activity.
func (g *Generator) rollStats(role profile.RoleKind, rep profile.Reputation) profile.Stats {
	span, ok := followerRanges[role]
	if !ok {
		span = [2]int{1000, 10000}
	}
	base := span[0] + g.rng.Intn(span[1]-span[0]+1)
	followers := int(float64(base) * rep.Overall / 100)
	following := int(float64(followers) * (0.05 + g.rng.Float64()*0.15))
	activity := 0.5 + g.rng.Float64()*1.5
	content := int(float64(followers)*0.1*activity) + g.rng.Intn(20)

	now := time.Now()
	joined := now.Add(-time.Duration(g.rng.Int63n(int64(2 * 365 * 24 * time.Hour))))

	// Staleness window shrinks as reputation rises, 7 days at the floor.
	window := time.Duration(float64(7*24*time.Hour) * (1 - 0.9*rep.Overall/100))
	if window < time.Hour {
		window = time.Hour
	}
	lastActive := now.Add(-time.Duration(g.rng.Int63n(int64(window))))

	return profile.Stats{
		Followers:    followers,
		Following:    following,
		ContentCount: content,
		JoinedAt:     joined,
		LastActiveAt: lastActive,
	}
}

// rollFaction always assigns leadership/specialist roles a faction; other
// roles get one with 30% probability.
func (g *Generator) rollFaction(role profile.RoleKind, sys *geo.System) *profile.FactionMembership {
	if !role.IsLeadership() && g.rng.Float64() >= 0.30 {
		return nil
	}
	pattern, ok := profile.FactionNamePatterns[role]
	if !ok {
		return nil
	}
	name := fmt.Sprintf(pattern, sys.Name)
	memberRole := "Member"
	if role.IsLeadership() {
		memberRole = "Leader"
	}
	return &profile.FactionMembership{
		ID:   strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Name: name,
		Rank: profile.FactionRanks[g.rng.Intn(len(profile.FactionRanks))],
		Role: memberRole,
	}
}

// topCategories returns the indexes of the n highest category scores.
func topCategories(rep profile.Reputation, n int) []int {
	scores := rep.Categories()
	idx := []int{0, 1, 2, 3, 4}
	sort.Slice(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	return idx[:n]
}

func planetID(p *geo.Planet) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
