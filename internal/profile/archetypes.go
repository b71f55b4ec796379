// Personality archetypes — the 8 behavioral templates that seed trait
// ranges and common professions for generated profiles.
package profile

// TraitRange bounds one personality slider for an archetype.
type TraitRange struct {
	Min, Max float64
}

// Archetype defines trait ranges, home systems, and common professions.
type Archetype struct {
	Name string

	Humor       TraitRange
	Aggression  TraitRange
	Cooperation TraitRange
	Ambition    TraitRange
	Curiosity   TraitRange

	// TypicalSystems lists system ids where this archetype is preferred.
	TypicalSystems []string

	// Professions commonly held by this archetype.
	Professions []string
}

// Archetypes is the fixed table of 8 templates.
var Archetypes = []Archetype{
	{
		Name:        "Innovator",
		Humor:       TraitRange{0.3, 0.7},
		Aggression:  TraitRange{0.1, 0.4},
		Cooperation: TraitRange{0.4, 0.8},
		Ambition:    TraitRange{0.6, 0.95},
		Curiosity:   TraitRange{0.7, 1.0},
		TypicalSystems: []string{"vega", "sol"},
		Professions: []string{"Research Engineer", "Systems Designer", "Startup Founder", "Lab Technician"},
	},
	{
		Name:        "Guardian",
		Humor:       TraitRange{0.1, 0.4},
		Aggression:  TraitRange{0.4, 0.8},
		Cooperation: TraitRange{0.5, 0.9},
		Ambition:    TraitRange{0.3, 0.6},
		Curiosity:   TraitRange{0.2, 0.5},
		TypicalSystems: []string{"alpha-centauri"},
		Professions: []string{"Security Officer", "Fleet Marine", "Customs Inspector", "Station Warden"},
	},
	{
		Name:        "Entrepreneur",
		Humor:       TraitRange{0.3, 0.7},
		Aggression:  TraitRange{0.3, 0.6},
		Cooperation: TraitRange{0.3, 0.7},
		Ambition:    TraitRange{0.7, 1.0},
		Curiosity:   TraitRange{0.4, 0.7},
		TypicalSystems: []string{"sirius", "sol"},
		Professions: []string{"Trade Broker", "Freight Operator", "Shop Owner", "Commodities Analyst"},
	},
	{
		Name:        "Caretaker",
		Humor:       TraitRange{0.3, 0.6},
		Aggression:  TraitRange{0.0, 0.2},
		Cooperation: TraitRange{0.7, 1.0},
		Ambition:    TraitRange{0.2, 0.5},
		Curiosity:   TraitRange{0.3, 0.6},
		TypicalSystems: []string{"sol", "proxima"},
		Professions: []string{"Medic", "Habitat Engineer", "Teacher", "Relief Coordinator"},
	},
	{
		Name:        "Explorer",
		Humor:       TraitRange{0.4, 0.8},
		Aggression:  TraitRange{0.2, 0.5},
		Cooperation: TraitRange{0.2, 0.6},
		Ambition:    TraitRange{0.5, 0.8},
		Curiosity:   TraitRange{0.8, 1.0},
		TypicalSystems: []string{"proxima"},
		Professions: []string{"Survey Pilot", "Cartographer", "Prospector", "Deep Range Scout"},
	},
	{
		Name:        "Philosopher",
		Humor:       TraitRange{0.2, 0.6},
		Aggression:  TraitRange{0.0, 0.3},
		Cooperation: TraitRange{0.4, 0.8},
		Ambition:    TraitRange{0.2, 0.5},
		Curiosity:   TraitRange{0.6, 0.95},
		TypicalSystems: []string{"vega"},
		Professions: []string{"Ethicist", "Historian", "Archivist", "Diplomatic Advisor"},
	},
	{
		Name:        "Artisan",
		Humor:       TraitRange{0.4, 0.8},
		Aggression:  TraitRange{0.1, 0.3},
		Cooperation: TraitRange{0.4, 0.7},
		Ambition:    TraitRange{0.4, 0.7},
		Curiosity:   TraitRange{0.5, 0.8},
		TypicalSystems: []string{"vega", "sirius"},
		Professions: []string{"Holo Sculptor", "Sound Designer", "Fabricator", "Architect"},
	},
	{
		Name:        "Survivor",
		Humor:       TraitRange{0.2, 0.6},
		Aggression:  TraitRange{0.3, 0.7},
		Cooperation: TraitRange{0.3, 0.6},
		Ambition:    TraitRange{0.3, 0.7},
		Curiosity:   TraitRange{0.3, 0.6},
		TypicalSystems: []string{"proxima", "alpha-centauri"},
		Professions: []string{"Salvager", "Ice Harvester", "Hauler", "Mechanic"},
	},
}

// ArchetypesForSystem returns archetypes whose typical systems include the
// given id; empty when none match (caller falls back to the full table).
func ArchetypesForSystem(systemID string) []Archetype {
	var out []Archetype
	for _, a := range Archetypes {
		for _, s := range a.TypicalSystems {
			if s == systemID {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
