// Achievement templates per reputation category. A template whose
// requirement check fails is skipped, never retried — profiles with fewer
// achievements than the nominal slot count are expected.
package profile

// AchievementTemplate describes one earnable achievement.
type AchievementTemplate struct {
	Title       Template
	Description Template
	Category    AchievementCategory
	Rarity      Rarity

	// Requirements; zero values mean unconstrained.
	MinReputation      float64
	RequiresLocation   string // substring matched against planet/system name
	RequiresProfession string // substring matched against profession
}

// SlotCandidates supplies the fixed candidate lists for template slots that
// are not resolved from profile context.
var SlotCandidates = map[string][]string{
	"discovery":  {"a stable wormhole", "a dormant alien relay", "a subsurface ocean", "an exotic particle state"},
	"technology": {"graviton shielding", "fold-drive tuning", "neural lace weaving", "cryo-recovery therapy"},
	"resource":   {"a helium-3 seam", "a platinum asteroid", "a water-ice field", "a rare-earth vein"},
	"artwork":    {"a zero-g ballet", "a light sculpture", "a generative symphony", "a mural cycle"},
	"treaty":     {"a ceasefire", "a trade accord", "a mining charter", "a settlement pact"},
	"campaign":   {"a pirate suppression", "a blockade relief", "a convoy escort", "a border patrol"},
	"expedition": {"the outer shoals", "the dark between stars", "an uncharted moon chain", "the rim nebulae"},
}

// AchievementTemplates groups the pools by category.
var AchievementTemplates = map[AchievementCategory][]AchievementTemplate{
	CategoryMilitary: {
		{
			Title:       T("Veteran of {campaign}"),
			Description: T("Served with distinction during {campaign} near {location}."),
			Category:    CategoryMilitary, Rarity: RarityCommon,
		},
		{
			Title:       T("Defense of {location}"),
			Description: T("Held the line when {location} came under threat."),
			Category:    CategoryMilitary, Rarity: RarityRare,
			MinReputation: 60,
		},
		{
			Title:       T("Fleet Commendation"),
			Description: T("Decorated by the {location} command for strategic excellence."),
			Category:    CategoryMilitary, Rarity: RarityEpic,
			MinReputation: 75, RequiresProfession: "commander",
		},
	},
	CategoryEconomic: {
		{
			Title:       T("First Contract"),
			Description: T("Closed a first major deal on {location}."),
			Category:    CategoryEconomic, Rarity: RarityCommon,
		},
		{
			Title:       T("Prospector of {resource}"),
			Description: T("Staked the claim that opened {resource} to development."),
			Category:    CategoryEconomic, Rarity: RarityUncommon,
			MinReputation: 45,
		},
		{
			Title:       T("Market Maker"),
			Description: T("Reshaped the {location} exchange through sheer volume."),
			Category:    CategoryEconomic, Rarity: RarityLegendary,
			MinReputation: 85, RequiresLocation: "osiris",
		},
	},
	CategoryDiplomatic: {
		{
			Title:       T("Broker of {treaty}"),
			Description: T("Negotiated {treaty} between rival delegations."),
			Category:    CategoryDiplomatic, Rarity: RarityUncommon,
			MinReputation: 40,
		},
		{
			Title:       T("Voice of {location}"),
			Description: T("Chosen to speak for {location} at the interstellar assembly."),
			Category:    CategoryDiplomatic, Rarity: RarityRare,
			MinReputation: 65,
		},
		{
			Title:       T("Peacemaker"),
			Description: T("Ended a generational feud without a shot fired."),
			Category:    CategoryDiplomatic, Rarity: RarityEpic,
			MinReputation: 80,
		},
	},
	CategoryScientific: {
		{
			Title:       T("Discovery of {discovery}"),
			Description: T("Credited with the discovery of {discovery}."),
			Category:    CategoryScientific, Rarity: RarityRare,
			MinReputation: 55,
		},
		{
			Title:       T("Pioneer of {technology}"),
			Description: T("Published the foundational work on {technology}."),
			Category:    CategoryScientific, Rarity: RarityEpic,
			MinReputation: 70, RequiresProfession: "research",
		},
		{
			Title:       T("Field Survey Citation"),
			Description: T("Completed an exhaustive survey of {location}."),
			Category:    CategoryScientific, Rarity: RarityCommon,
		},
	},
	CategoryCultural: {
		{
			Title:       T("Creator of {artwork}"),
			Description: T("Debuted {artwork} to wide acclaim on {location}."),
			Category:    CategoryCultural, Rarity: RarityUncommon,
			MinReputation: 40,
		},
		{
			Title:       T("Festival Laureate"),
			Description: T("Headlined the {location} harvest festival."),
			Category:    CategoryCultural, Rarity: RarityCommon,
		},
		{
			Title:       T("Cultural Treasure"),
			Description: T("Named a living treasure of {location}."),
			Category:    CategoryCultural, Rarity: RarityLegendary,
			MinReputation: 90,
		},
	},
	CategoryExploration: {
		{
			Title:       T("Charted {expedition}"),
			Description: T("First to map {expedition}."),
			Category:    CategoryExploration, Rarity: RarityRare,
			MinReputation: 50,
		},
		{
			Title:       T("Long Haul"),
			Description: T("Completed a solo run from {location} to the frontier."),
			Category:    CategoryExploration, Rarity: RarityUncommon,
		},
		{
			Title:       T("Pathfinder's Star"),
			Description: T("Opened a new jump route through {expedition}."),
			Category:    CategoryExploration, Rarity: RarityEpic,
			MinReputation: 75, RequiresProfession: "pilot",
		},
	},
}

// CategoryFor maps a reputation category index (order of
// Reputation.Categories) to an achievement category. Exploration has no
// reputation axis; it is reachable through the scientific slot draw.
var categoryByIndex = [5]AchievementCategory{
	CategoryMilitary, CategoryEconomic, CategoryDiplomatic,
	CategoryScientific, CategoryCultural,
}

// CategoryForIndex returns the achievement category for a reputation
// category index.
func CategoryForIndex(i int) AchievementCategory {
	return categoryByIndex[i]
}
