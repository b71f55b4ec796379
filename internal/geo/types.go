// Package geo provides the world geography configuration: the static
// systems → planets → cities tree that drives population generation.
package geo

// Coord is a position in 3-D galactic space (light-year units).
type Coord struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// PlanetType tags a planet's broad environment class.
type PlanetType string

const (
	PlanetTerrestrial PlanetType = "terrestrial"
	PlanetOceanic     PlanetType = "oceanic"
	PlanetDesert      PlanetType = "desert"
	PlanetFrozen      PlanetType = "frozen"
	PlanetVolcanic    PlanetType = "volcanic"
	PlanetGasMoon     PlanetType = "gas_moon"
	PlanetArtificial  PlanetType = "artificial"
)

// CityType tags a city's dominant character.
type CityType string

const (
	CityCapital      CityType = "capital"
	CityIndustrial   CityType = "industrial"
	CityResearch     CityType = "research"
	CityTrade        CityType = "trade"
	CityMilitary     CityType = "military"
	CityAgricultural CityType = "agricultural"
	CityMining       CityType = "mining"
	CityCultural     CityType = "cultural"
)

// System is a star system. Character levels are 1–10 and only weight
// generation; they are never mutated at runtime.
type System struct {
	ID                string    `json:"id" yaml:"id"`
	Name              string    `json:"name" yaml:"name"`
	PopulationTarget  int       `json:"population_target" yaml:"population_target"`
	EconomicLevel     int       `json:"economic_level" yaml:"economic_level"`
	MilitaryLevel     int       `json:"military_level" yaml:"military_level"`
	ScientificLevel   int       `json:"scientific_level" yaml:"scientific_level"`
	CulturalDiversity int       `json:"cultural_diversity" yaml:"cultural_diversity"`
	Planets           []*Planet `json:"planets" yaml:"planets"`
}

// Planet belongs to exactly one system.
type Planet struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	PopulationTarget int        `json:"population_target" yaml:"population_target"`
	Type             PlanetType `json:"type" yaml:"type"`
	DevelopmentLevel int        `json:"development_level" yaml:"development_level"`
	Coordinates      Coord      `json:"coordinates" yaml:"coordinates"`
	Cities           []*City    `json:"cities" yaml:"cities"`
}

// City belongs to exactly one planet.
type City struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Population      int      `json:"population" yaml:"population"`
	Type            CityType `json:"type" yaml:"type"`
	Specializations []string `json:"specializations,omitempty" yaml:"specializations,omitempty"`
	Coordinates     Coord    `json:"coordinates" yaml:"coordinates"`
}

// Location is the result of a hierarchical id lookup. City and Planet may
// be nil when the id names a coarser level.
type Location struct {
	System *System
	Planet *Planet
	City   *City
}

// Coordinates returns the finest coordinates known for the location.
func (l Location) Coordinates() Coord {
	if l.City != nil {
		return l.City.Coordinates
	}
	if l.Planet != nil {
		return l.Planet.Coordinates
	}
	return Coord{}
}
