// Package profile provides the social-identity data model and the static
// template tables (names, archetypes, backgrounds, achievements, comments)
// used by procedural generation.
package profile

import (
	"time"

	"github.com/avens/star-society/internal/geo"
)

// RoleKind is the closed set of identity categories. "player" is reserved
// for player-controlled profiles and is never generated.
type RoleKind string

const (
	RoleCitizen        RoleKind = "citizen"
	RolePersonality    RoleKind = "personality"
	RoleCityLeader     RoleKind = "city_leader"
	RolePlanetLeader   RoleKind = "planet_leader"
	RoleDivisionLeader RoleKind = "division_leader"
	RoleBusinessLeader RoleKind = "business_leader"
	RoleScientist      RoleKind = "scientist"
	RoleArtist         RoleKind = "artist"
	RolePlayer         RoleKind = "player"
)

// GeneratedRoles lists every role the generator can produce.
var GeneratedRoles = []RoleKind{
	RoleCitizen, RolePersonality, RoleCityLeader, RolePlanetLeader,
	RoleDivisionLeader, RoleBusinessLeader, RoleScientist, RoleArtist,
}

// Location pins a profile to the geography tree. City fields are empty for
// planet-level residents; Coordinates is nil when no position was assigned.
type Location struct {
	SystemID    string     `json:"system_id"`
	SystemName  string     `json:"system_name"`
	PlanetID    string     `json:"planet_id"`
	PlanetName  string     `json:"planet_name"`
	CityID      string     `json:"city_id,omitempty"`
	CityName    string     `json:"city_name,omitempty"`
	Coordinates *geo.Coord `json:"coordinates,omitempty"`
}

// Stats is the aggregate counter block. Follower/Following are owned by the
// social graph; everything else is set at generation time.
type Stats struct {
	Followers    int       `json:"followers"`
	Following    int       `json:"following"`
	ContentCount int       `json:"content_count"`
	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// AchievementCategory is one of the six achievement domains.
type AchievementCategory string

const (
	CategoryMilitary    AchievementCategory = "military"
	CategoryEconomic    AchievementCategory = "economic"
	CategoryDiplomatic  AchievementCategory = "diplomatic"
	CategoryScientific  AchievementCategory = "scientific"
	CategoryCultural    AchievementCategory = "cultural"
	CategoryExploration AchievementCategory = "exploration"
)

// Rarity is an achievement's tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is immutable once created.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
	Rarity      Rarity              `json:"rarity"`
	EarnedAt    time.Time           `json:"earned_at"`
	Public      bool                `json:"public"`
}

// FactionMembership records a profile's organization, if any.
type FactionMembership struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank string `json:"rank"`
	Role string `json:"role"`
}

// CivilizationMembership records the parent civilization, if any.
type CivilizationMembership struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	DevelopmentLevel int    `json:"development_level"`
}

// Reputation holds the overall 0–100 score and the five category scores.
// Overall is derived during generation and never independently settable.
type Reputation struct {
	Overall    float64 `json:"overall"`
	Military   float64 `json:"military"`
	Economic   float64 `json:"economic"`
	Diplomatic float64 `json:"diplomatic"`
	Scientific float64 `json:"scientific"`
	Cultural   float64 `json:"cultural"`
}

// Categories returns the five category scores in fixed order.
func (r Reputation) Categories() [5]float64 {
	return [5]float64{r.Military, r.Economic, r.Diplomatic, r.Scientific, r.Cultural}
}

// Match scores how close two reputations are, 0–1 (1 = identical categories).
func (r Reputation) Match(other Reputation) float64 {
	a, b := r.Categories(), other.Categories()
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return 1 - sum/(5*100)
}

// PersonalityTraits are five independent 0–1 sliders.
type PersonalityTraits struct {
	Humor       float64 `json:"humor"`
	Aggression  float64 `json:"aggression"`
	Cooperation float64 `json:"cooperation"`
	Ambition    float64 `json:"ambition"`
	Curiosity   float64 `json:"curiosity"`
}

// Values returns the five traits in fixed order.
func (t PersonalityTraits) Values() [5]float64 {
	return [5]float64{t.Humor, t.Aggression, t.Cooperation, t.Ambition, t.Curiosity}
}

// Match scores how close two trait sets are, 0–1 (1 = identical).
func (t PersonalityTraits) Match(other PersonalityTraits) float64 {
	a, b := t.Values(), other.Values()
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return 1 - sum/5
}

// Profile is the unit of population: any identity in the simulation,
// generated or player-controlled.
type Profile struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Role         RoleKind                `json:"role"`
	Archetype    string                  `json:"archetype,omitempty"`
	Profession   string                  `json:"profession,omitempty"`
	Location     Location                `json:"location"`
	Stats        Stats                   `json:"stats"`
	Achievements []Achievement           `json:"achievements,omitempty"`
	Faction      *FactionMembership      `json:"faction,omitempty"`
	Civilization *CivilizationMembership `json:"civilization,omitempty"`
	Reputation   Reputation              `json:"reputation"`
	Traits       *PersonalityTraits      `json:"traits,omitempty"`
}

// IsLeadership reports whether the role always carries a faction and a
// role-specific profession list.
func (k RoleKind) IsLeadership() bool {
	switch k {
	case RoleCityLeader, RolePlanetLeader, RoleDivisionLeader,
		RoleBusinessLeader, RoleScientist, RoleArtist:
		return true
	}
	return false
}
