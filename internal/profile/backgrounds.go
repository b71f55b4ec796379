// Profession backgrounds — reputation weighting per profession, plus the
// location- and role-conditioned profession pools.
package profile

import (
	"strings"

	"github.com/avens/star-society/internal/geo"
)

// Background maps a profession family to its reputation category weights.
// Weights are [military, economic, diplomatic, scientific, cultural] and
// sum to roughly 1.
type Background struct {
	Match   string
	Weights [5]float64
}

// Backgrounds is scanned in order; the first case-insensitive substring
// match against the profession name wins.
var Backgrounds = []Background{
	{Match: "commander", Weights: [5]float64{0.55, 0.05, 0.20, 0.10, 0.10}},
	{Match: "admiral", Weights: [5]float64{0.60, 0.05, 0.20, 0.10, 0.05}},
	{Match: "defense", Weights: [5]float64{0.50, 0.10, 0.20, 0.15, 0.05}},
	{Match: "marine", Weights: [5]float64{0.60, 0.10, 0.05, 0.10, 0.15}},
	{Match: "security", Weights: [5]float64{0.50, 0.15, 0.15, 0.10, 0.10}},
	{Match: "warden", Weights: [5]float64{0.45, 0.10, 0.20, 0.10, 0.15}},
	{Match: "broker", Weights: [5]float64{0.05, 0.55, 0.20, 0.10, 0.10}},
	{Match: "trade", Weights: [5]float64{0.05, 0.50, 0.25, 0.10, 0.10}},
	{Match: "merchant", Weights: [5]float64{0.05, 0.55, 0.20, 0.05, 0.15}},
	{Match: "executive", Weights: [5]float64{0.05, 0.50, 0.25, 0.10, 0.10}},
	{Match: "freight", Weights: [5]float64{0.10, 0.55, 0.15, 0.10, 0.10}},
	{Match: "analyst", Weights: [5]float64{0.05, 0.40, 0.15, 0.30, 0.10}},
	{Match: "diplomat", Weights: [5]float64{0.05, 0.15, 0.55, 0.10, 0.15}},
	{Match: "governor", Weights: [5]float64{0.15, 0.20, 0.45, 0.10, 0.10}},
	{Match: "administrator", Weights: [5]float64{0.10, 0.25, 0.45, 0.10, 0.10}},
	{Match: "advisor", Weights: [5]float64{0.05, 0.15, 0.45, 0.20, 0.15}},
	{Match: "research", Weights: [5]float64{0.05, 0.10, 0.10, 0.60, 0.15}},
	{Match: "scientist", Weights: [5]float64{0.05, 0.05, 0.10, 0.65, 0.15}},
	{Match: "engineer", Weights: [5]float64{0.10, 0.20, 0.05, 0.55, 0.10}},
	{Match: "professor", Weights: [5]float64{0.05, 0.05, 0.15, 0.55, 0.20}},
	{Match: "pilot", Weights: [5]float64{0.25, 0.15, 0.05, 0.35, 0.20}},
	{Match: "artist", Weights: [5]float64{0.05, 0.15, 0.10, 0.10, 0.60}},
	{Match: "sculptor", Weights: [5]float64{0.05, 0.15, 0.05, 0.15, 0.60}},
	{Match: "designer", Weights: [5]float64{0.05, 0.20, 0.05, 0.25, 0.45}},
	{Match: "historian", Weights: [5]float64{0.05, 0.05, 0.20, 0.25, 0.45}},
	{Match: "teacher", Weights: [5]float64{0.05, 0.10, 0.25, 0.25, 0.35}},
	{Match: "medic", Weights: [5]float64{0.10, 0.10, 0.20, 0.45, 0.15}},
}

// defaultWeights spreads reputation evenly across categories.
var defaultWeights = [5]float64{0.2, 0.2, 0.2, 0.2, 0.2}

// WeightsFor finds the reputation weights for a profession by fuzzy
// substring match, defaulting to an even split.
func WeightsFor(profession string) [5]float64 {
	lower := strings.ToLower(profession)
	for _, b := range Backgrounds {
		if strings.Contains(lower, b.Match) {
			return b.Weights
		}
	}
	return defaultWeights
}

// RoleProfessions overrides the archetype/location pools entirely for
// leadership and specialist roles.
var RoleProfessions = map[RoleKind][]string{
	RoleCityLeader:     {"City Governor", "Municipal Administrator", "District Mayor", "Civic Director"},
	RolePlanetLeader:   {"Planetary Governor", "Colonial Administrator", "High Councilor"},
	RoleDivisionLeader: {"Military Commander", "Fleet Admiral", "Defense Coordinator", "Strategic Planner"},
	RoleBusinessLeader: {"Trade Executive", "Consortium Chairman", "Shipping Magnate", "Venture Financier"},
	RoleScientist:      {"Chief Scientist", "Research Director", "Principal Investigator", "Xenobiologist"},
	RoleArtist:         {"Celebrated Artist", "Holo Sculptor", "Composer", "Performance Director"},
}

// CityProfessions contributes location-conditioned additions per city type.
var CityProfessions = map[geo.CityType][]string{
	geo.CityCapital:      {"Policy Aide", "Protocol Officer", "Registry Clerk"},
	geo.CityIndustrial:   {"Line Supervisor", "Fabrication Tech", "Logistics Planner"},
	geo.CityResearch:     {"Lab Assistant", "Data Curator", "Instrument Calibrator"},
	geo.CityTrade:        {"Dock Agent", "Cargo Appraiser", "Exchange Clerk"},
	geo.CityMilitary:     {"Armorer", "Drill Instructor", "Signals Operator"},
	geo.CityAgricultural: {"Hydroponics Tender", "Soil Chemist", "Harvest Foreman"},
	geo.CityMining:       {"Drill Operator", "Ore Assayer", "Shaft Surveyor"},
	geo.CityCultural:     {"Gallery Keeper", "Festival Organizer", "Street Performer"},
}

// PlanetProfessions contributes additions per planet type.
var PlanetProfessions = map[geo.PlanetType][]string{
	geo.PlanetTerrestrial: {"Urban Planner", "Transit Operator"},
	geo.PlanetOceanic:     {"Tide Engineer", "Aquaculture Keeper"},
	geo.PlanetDesert:      {"Water Reclaimer", "Dune Guide"},
	geo.PlanetFrozen:      {"Thermal Engineer", "Ice Harvester"},
	geo.PlanetVolcanic:    {"Geothermal Tech", "Vent Surveyor"},
	geo.PlanetGasMoon:     {"Skimmer Pilot", "Gas Refiner"},
	geo.PlanetArtificial:  {"Station Systems Tech", "Hull Inspector"},
}

// FactionNamePatterns derives faction names from the home system name.
var FactionNamePatterns = map[RoleKind]string{
	RoleCityLeader:     "%s Civic Authority",
	RolePlanetLeader:   "%s Planetary Council",
	RoleDivisionLeader: "%s Defense Force",
	RoleBusinessLeader: "%s Trade Consortium",
	RoleScientist:      "%s Research Collective",
	RoleArtist:         "%s Arts Guild",
	RoleCitizen:        "%s Citizens Assembly",
	RolePersonality:    "%s Citizens Assembly",
}

// FactionRanks is sampled uniformly for membership rank.
var FactionRanks = []string{"Initiate", "Member", "Senior Member", "Officer", "Elder"}

// Civilizations is the fixed system → civilization table. Systems outside
// it yield no civilization membership.
var Civilizations = map[string]CivilizationMembership{
	"sol":            {ID: "terran-accord", Name: "Terran Accord", Type: "federation", DevelopmentLevel: 9},
	"alpha-centauri": {ID: "centauri-pact", Name: "Centauri Pact", Type: "military junta", DevelopmentLevel: 7},
	"vega":           {ID: "lyran-assembly", Name: "Lyran Assembly", Type: "technocracy", DevelopmentLevel: 8},
	"sirius":         {ID: "sirian-combine", Name: "Sirian Combine", Type: "trade league", DevelopmentLevel: 8},
	"proxima":        {ID: "reach-compact", Name: "Reach Compact", Type: "frontier coalition", DevelopmentLevel: 4},
}
