// Name pools for procedural generation — one culture table per major
// system, plus a fallback for unrecognized systems.
package profile

// NameCulture holds the name fragments for one culture.
type NameCulture struct {
	First    []string
	Last     []string
	Titles   []string
	Suffixes []string
}

// Cultures maps system id → name table. Lookups fall back to FallbackCulture.
var Cultures = map[string]NameCulture{
	"sol": {
		First: []string{
			"Amara", "Chen", "Diego", "Elena", "Hiroshi", "Imani", "James",
			"Katya", "Liam", "Mei", "Nadia", "Omar", "Priya", "Ravi", "Sofia",
			"Tomas", "Yuki", "Zara", "Adam", "Fatima", "Marcus", "Ingrid",
		},
		Last: []string{
			"Okafor", "Tanaka", "Silva", "Novak", "Haddad", "Kim", "Ferreira",
			"Larsen", "Mbeki", "Ortiz", "Petrov", "Singh", "Walsh", "Zhang",
			"Andersen", "Costa", "Duarte", "Eriksen",
		},
		Titles:   []string{"Dr.", "Director", "Captain", "Professor", "Minister"},
		Suffixes: []string{"Jr.", "III", "of Earth"},
	},
	"alpha-centauri": {
		First: []string{
			"Brakka", "Corvan", "Dessa", "Garron", "Halla", "Joren", "Kessa",
			"Lorcan", "Mirren", "Orrin", "Ragna", "Sarga", "Torvik", "Ulda",
			"Varek", "Wenna", "Yorvan", "Zedda",
		},
		Last: []string{
			"Ironcrest", "Stormvane", "Bastionborn", "Redwatch", "Steelmar",
			"Vanguard", "Warfell", "Grimhold", "Shieldson", "Drakmoor",
		},
		Titles:   []string{"Commander", "Marshal", "Warden", "Sergeant"},
		Suffixes: []string{"the Unbroken", "of Bastion", "Veteran"},
	},
	"vega": {
		First: []string{
			"Aelith", "Brenna", "Caius", "Delia", "Evander", "Faelan", "Galen",
			"Hypatia", "Ilios", "Kalista", "Lyros", "Meridia", "Nereus",
			"Orphea", "Pallas", "Solon", "Thalia", "Zenon",
		},
		Last: []string{
			"Astrelle", "Brightstar", "Calyx", "Duskweaver", "Etherion",
			"Luminos", "Novaquill", "Quasara", "Starwright", "Voidmere",
		},
		Titles:   []string{"Scholar", "Archivist", "Dr.", "Fellow", "Curator"},
		Suffixes: []string{"of the Ring", "PhD", "Emeritus"},
	},
	"sirius": {
		First: []string{
			"Auric", "Belda", "Cassius", "Denara", "Emmon", "Floria", "Gideon",
			"Helio", "Isolde", "Jarek", "Kestra", "Lucan", "Midas", "Nerissa",
			"Opaline", "Perrin", "Sable", "Verity",
		},
		Last: []string{
			"Goldmane", "Coinwell", "Sterling", "Marketson", "Ledgerfield",
			"Brokerage", "Fairtrade", "Vaultner", "Gildencrest", "Argent",
		},
		Titles:   []string{"Magnate", "Broker", "Chairman", "Executor"},
		Suffixes: []string{"& Co.", "the Prosperous", "of Goldport"},
	},
	"proxima": {
		First: []string{
			"Ash", "Briar", "Cole", "Dawn", "Flint", "Gale", "Hale", "Juniper",
			"Kit", "Lark", "Moss", "North", "Quill", "Ridge", "Sage", "Thorn",
			"Vale", "Wren",
		},
		Last: []string{
			"Farwalker", "Homestead", "Outridge", "Pathfinder", "Roughland",
			"Settler", "Trailborn", "Wayfield", "Wilderman", "Frostedge",
		},
		Titles:   []string{"Foreman", "Surveyor", "Pioneer"},
		Suffixes: []string{"of the Reach", "Firstborn"},
	},
}

// FallbackCulture serves systems without a dedicated table.
var FallbackCulture = NameCulture{
	First: []string{
		"Aria", "Bex", "Cyrus", "Dea", "Ember", "Finn", "Gray", "Hale",
		"Ion", "Juno", "Kai", "Lumen", "Nova", "Orion", "Rhea", "Sol",
		"Tarn", "Vesper",
	},
	Last: []string{
		"Voidwalker", "Starling", "Cosmos", "Nebular", "Stellaris",
		"Galaxion", "Orbital", "Photon", "Comet", "Meridian",
	},
	Titles:   []string{"Captain", "Navigator", "Envoy"},
	Suffixes: []string{"of the Drift", "II"},
}

// CultureFor returns the name table for a system id.
func CultureFor(systemID string) NameCulture {
	if c, ok := Cultures[systemID]; ok {
		return c
	}
	return FallbackCulture
}
