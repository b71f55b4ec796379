package geo

// DefaultGalaxy returns the built-in five-system galaxy. City coordinates
// are laid out from the simplex field so spatial clustering is smooth
// rather than grid-regular.
func DefaultGalaxy() *Galaxy {
	systems := []*System{
		{
			ID: "sol", Name: "Sol", PopulationTarget: 5000,
			EconomicLevel: 9, MilitaryLevel: 7, ScientificLevel: 8, CulturalDiversity: 9,
			Planets: []*Planet{
				{
					ID: "earth", Name: "Earth", PopulationTarget: 3000,
					Type: PlanetTerrestrial, DevelopmentLevel: 10,
					Coordinates: Coord{X: 0, Y: 0, Z: 0},
					Cities: []*City{
						{ID: "new-geneva", Name: "New Geneva", Population: 1200, Type: CityCapital, Specializations: []string{"governance", "diplomacy"}},
						{ID: "pacifica", Name: "Pacifica", Population: 900, Type: CityTrade, Specializations: []string{"shipping", "finance"}},
						{ID: "luna-gate", Name: "Luna Gate", Population: 600, Type: CityResearch, Specializations: []string{"orbital engineering"}},
					},
				},
				{
					ID: "mars", Name: "Mars", PopulationTarget: 1400,
					Type: PlanetDesert, DevelopmentLevel: 7,
					Coordinates: Coord{X: 1.5, Y: 0.2, Z: 0},
					Cities: []*City{
						{ID: "olympus", Name: "Olympus", Population: 700, Type: CityIndustrial, Specializations: []string{"terraforming", "manufacturing"}},
						{ID: "valles", Name: "Valles", Population: 400, Type: CityMining, Specializations: []string{"rare metals"}},
					},
				},
				{
					ID: "europa", Name: "Europa", PopulationTarget: 600,
					Type: PlanetFrozen, DevelopmentLevel: 5,
					Coordinates: Coord{X: 5.2, Y: -0.4, Z: 0.1},
					Cities: []*City{
						{ID: "thera-deep", Name: "Thera Deep", Population: 350, Type: CityResearch, Specializations: []string{"xenobiology"}},
					},
				},
			},
		},
		{
			ID: "alpha-centauri", Name: "Alpha Centauri", PopulationTarget: 3000,
			EconomicLevel: 7, MilitaryLevel: 9, ScientificLevel: 6, CulturalDiversity: 5,
			Planets: []*Planet{
				{
					ID: "proxima-b", Name: "Proxima b", PopulationTarget: 1800,
					Type: PlanetTerrestrial, DevelopmentLevel: 8,
					Coordinates: Coord{X: 4.2, Y: 1.1, Z: -0.3},
					Cities: []*City{
						{ID: "bastion", Name: "Bastion", Population: 800, Type: CityMilitary, Specializations: []string{"fleet command"}},
						{ID: "centauri-prime", Name: "Centauri Prime", Population: 700, Type: CityCapital, Specializations: []string{"governance"}},
					},
				},
				{
					ID: "toliman", Name: "Toliman", PopulationTarget: 1200,
					Type: PlanetVolcanic, DevelopmentLevel: 6,
					Coordinates: Coord{X: 4.4, Y: 1.3, Z: -0.2},
					Cities: []*City{
						{ID: "forgeholm", Name: "Forgeholm", Population: 500, Type: CityIndustrial, Specializations: []string{"shipyards", "armaments"}},
					},
				},
			},
		},
		{
			ID: "vega", Name: "Vega", PopulationTarget: 2400,
			EconomicLevel: 6, MilitaryLevel: 4, ScientificLevel: 10, CulturalDiversity: 7,
			Planets: []*Planet{
				{
					ID: "lyra", Name: "Lyra", PopulationTarget: 1600,
					Type: PlanetOceanic, DevelopmentLevel: 7,
					Coordinates: Coord{X: 25.0, Y: 3.5, Z: 2.1},
					Cities: []*City{
						{ID: "asterion", Name: "Asterion", Population: 900, Type: CityResearch, Specializations: []string{"quantum physics", "ai"}},
						{ID: "harbor-blue", Name: "Harbor Blue", Population: 500, Type: CityCultural, Specializations: []string{"arts"}},
					},
				},
				{
					ID: "vega-station", Name: "Vega Station", PopulationTarget: 800,
					Type: PlanetArtificial, DevelopmentLevel: 9,
					Coordinates: Coord{X: 25.2, Y: 3.3, Z: 2.0},
					Cities: []*City{
						{ID: "ring-one", Name: "Ring One", Population: 600, Type: CityResearch, Specializations: []string{"astrophysics"}},
					},
				},
			},
		},
		{
			ID: "sirius", Name: "Sirius", PopulationTarget: 2600,
			EconomicLevel: 10, MilitaryLevel: 5, ScientificLevel: 6, CulturalDiversity: 8,
			Planets: []*Planet{
				{
					ID: "osiris", Name: "Osiris", PopulationTarget: 1800,
					Type: PlanetTerrestrial, DevelopmentLevel: 9,
					Coordinates: Coord{X: 8.6, Y: -2.0, Z: 1.4},
					Cities: []*City{
						{ID: "goldport", Name: "Goldport", Population: 1000, Type: CityTrade, Specializations: []string{"commodities", "banking"}},
						{ID: "isis-ward", Name: "Isis Ward", Population: 500, Type: CityCapital, Specializations: []string{"governance"}},
					},
				},
				{
					ID: "anubis", Name: "Anubis", PopulationTarget: 800,
					Type: PlanetGasMoon, DevelopmentLevel: 5,
					Coordinates: Coord{X: 8.8, Y: -2.2, Z: 1.5},
					Cities: []*City{
						{ID: "skyharvest", Name: "Skyharvest", Population: 400, Type: CityMining, Specializations: []string{"helium-3"}},
					},
				},
			},
		},
		{
			ID: "proxima", Name: "Proxima Reach", PopulationTarget: 1500,
			EconomicLevel: 4, MilitaryLevel: 3, ScientificLevel: 4, CulturalDiversity: 6,
			Planets: []*Planet{
				{
					ID: "frontier", Name: "Frontier", PopulationTarget: 1000,
					Type: PlanetTerrestrial, DevelopmentLevel: 3,
					Coordinates: Coord{X: 40.1, Y: 6.2, Z: -3.8},
					Cities: []*City{
						{ID: "last-light", Name: "Last Light", Population: 400, Type: CityAgricultural, Specializations: []string{"homesteading"}},
					},
				},
				{
					ID: "wayfall", Name: "Wayfall", PopulationTarget: 500,
					Type: PlanetFrozen, DevelopmentLevel: 2,
					Coordinates: Coord{X: 40.5, Y: 6.0, Z: -3.6},
					Cities: []*City{
						{ID: "drift", Name: "Drift", Population: 200, Type: CityMining, Specializations: []string{"ice harvesting"}},
					},
				},
			},
		},
	}

	layoutCities(systems, 42)
	return NewGalaxy(systems)
}
