package geo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrLocationNotFound is returned when an id matches nothing in the tree.
var ErrLocationNotFound = errors.New("location not found")

// Galaxy is the read-only geography tree plus lookup indexes.
type Galaxy struct {
	systems []*System

	byID map[string]Location // lower-cased id → resolved location
}

// NewGalaxy builds the lookup indexes for a system tree.
func NewGalaxy(systems []*System) *Galaxy {
	g := &Galaxy{
		systems: systems,
		byID:    make(map[string]Location),
	}
	for _, sys := range systems {
		g.byID[strings.ToLower(sys.ID)] = Location{System: sys}
		for _, p := range sys.Planets {
			g.byID[strings.ToLower(p.ID)] = Location{System: sys, Planet: p}
			for _, c := range p.Cities {
				g.byID[strings.ToLower(c.ID)] = Location{System: sys, Planet: p, City: c}
			}
		}
	}
	return g
}

// Load reads a galaxy definition from a YAML file.
func Load(path string) (*Galaxy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read galaxy config: %w", err)
	}
	var doc struct {
		Systems []*System `yaml:"systems"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse galaxy config: %w", err)
	}
	if len(doc.Systems) == 0 {
		return nil, fmt.Errorf("galaxy config %s defines no systems", path)
	}
	return NewGalaxy(doc.Systems), nil
}

// Resolve looks up a system, planet, or city id (case-insensitive). A city
// id also resolves its parent planet and system.
func (g *Galaxy) Resolve(id string) (Location, error) {
	loc, ok := g.byID[strings.ToLower(id)]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}
	return loc, nil
}

// Systems returns the system list in definition order.
func (g *Galaxy) Systems() []*System {
	return g.systems
}

// Planets returns every planet across all systems.
func (g *Galaxy) Planets() []*Planet {
	var out []*Planet
	for _, sys := range g.systems {
		out = append(out, sys.Planets...)
	}
	return out
}

// SystemOf returns the parent system of a planet id, or nil.
func (g *Galaxy) SystemOf(planetID string) *System {
	loc, ok := g.byID[strings.ToLower(planetID)]
	if !ok {
		return nil
	}
	return loc.System
}

// TotalTarget sums the population targets of every planet.
func (g *Galaxy) TotalTarget() int {
	total := 0
	for _, sys := range g.systems {
		for _, p := range sys.Planets {
			total += p.PopulationTarget
		}
	}
	return total
}
