package colony

import (
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

// BuildingKind identifies a structure variant. The set is closed: dispatch is
// by kind, not by subtype.
type BuildingKind string

const (
	SolarPanel      BuildingKind = "solar_panel"
	Greenhouse      BuildingKind = "greenhouse"
	OxygenGenerator BuildingKind = "oxygen_generator"
	MaterialFactory BuildingKind = "material_factory"
)

// BuildingKinds returns the buildable kinds in catalog order
func BuildingKinds() []BuildingKind {
	return []BuildingKind{SolarPanel, Greenhouse, OxygenGenerator, MaterialFactory}
}

// ParseBuildingKind converts a string into a BuildingKind
func ParseBuildingKind(s string) (BuildingKind, error) {
	k := BuildingKind(s)
	if _, ok := buildingSpecs[k]; !ok {
		return "", NewInvalidBuildingKindError(k)
	}
	return k, nil
}

// buildingSpec carries the static data of a building variant: its one-time
// construction cost and the single resource kind it produces.
type buildingSpec struct {
	name   string
	cost   resource.Delta
	output resource.Kind
	base   int
}

var buildingSpecs = map[BuildingKind]buildingSpec{
	SolarPanel: {
		name:   "Solar Panel",
		cost:   resource.Delta{resource.Materials: 20},
		output: resource.Energy,
		base:   15,
	},
	Greenhouse: {
		name:   "Greenhouse",
		cost:   resource.Delta{resource.Materials: 30, resource.Energy: 10},
		output: resource.Food,
		base:   20,
	},
	OxygenGenerator: {
		name:   "Oxygen Generator",
		cost:   resource.Delta{resource.Materials: 25, resource.Energy: 15},
		output: resource.Oxygen,
		base:   10,
	},
	MaterialFactory: {
		name:   "Material Factory",
		cost:   resource.Delta{resource.Materials: 40, resource.Energy: 20},
		output: resource.Materials,
		base:   8,
	},
}

// BuildingCost returns the construction cost for a kind
func BuildingCost(kind BuildingKind) (resource.Delta, error) {
	spec, ok := buildingSpecs[kind]
	if !ok {
		return nil, NewInvalidBuildingKindError(kind)
	}
	return spec.cost.Clone(), nil
}

// Building is a production structure.
//
// Invariant: output = production rate for the building's resource kind x
// level, or zero while non-operational. Buildings are never demolished; the
// level only rises via Upgrade.
type Building struct {
	kind        BuildingKind
	name        string
	cost        resource.Delta
	rates       resource.Delta
	output      resource.Kind
	level       int
	operational bool
}

// NewBuilding constructs a level-1 operational building of the given kind
func NewBuilding(kind BuildingKind) (*Building, error) {
	spec, ok := buildingSpecs[kind]
	if !ok {
		return nil, NewInvalidBuildingKindError(kind)
	}
	return &Building{
		kind:        kind,
		name:        spec.name,
		cost:        spec.cost.Clone(),
		rates:       resource.Delta{spec.output: spec.base},
		output:      spec.output,
		level:       1,
		operational: true,
	}, nil
}

// ReconstructBuilding restores a building from persisted state. Each level
// above 1 corresponds to one past Upgrade, so the materials rate entry is
// rebuilt as base + 5 per upgrade.
func ReconstructBuilding(kind BuildingKind, level int, operational bool) (*Building, error) {
	b, err := NewBuilding(kind)
	if err != nil {
		return nil, err
	}
	if level < 1 {
		level = 1
	}
	b.level = level
	b.rates[resource.Materials] += 5 * (level - 1)
	b.operational = operational
	return b, nil
}

// Produce computes the building's resource delta for one production phase.
// A non-operational building yields nothing.
func (b *Building) Produce() resource.Delta {
	if !b.operational {
		return resource.Delta{}
	}
	return resource.Delta{b.output: b.rates[b.output] * b.level}
}

// Upgrade raises the level and adds +5 to the materials production rate
// entry. The rate bump only shows in output for material factories; the
// asymmetry is inherited behavior and kept as is.
func (b *Building) Upgrade() {
	b.level++
	b.rates[resource.Materials] += 5
}

func (b *Building) Kind() BuildingKind { return b.kind }

func (b *Building) Name() string { return b.name }

func (b *Building) Level() int { return b.level }

func (b *Building) Operational() bool { return b.operational }

func (b *Building) SetOperational(status bool) { b.operational = status }

// Cost returns a copy of the one-time construction cost
func (b *Building) Cost() resource.Delta { return b.cost.Clone() }

// OutputKind returns the resource kind this building produces
func (b *Building) OutputKind() resource.Kind { return b.output }
