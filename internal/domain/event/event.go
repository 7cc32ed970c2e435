// Package event holds the randomized perturbation catalog and its
// ordered-first-match resolution policy.
package event

import (
	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

// Kind identifies an event variant
type Kind string

const (
	SolarStorm   Kind = "solar_storm"
	TradeShip    Kind = "trade_ship"
	MeteorShower Kind = "meteor_shower"
)

// Event is an immutable perturbation source: a fixed resource delta plus a
// trigger weight in [1,100]. Effects are applied additively - negative
// components may legally drive a quantity below zero; the loss condition
// check owns the consequence.
type Event struct {
	kind        Kind
	name        string
	description string
	effect      resource.Delta
	weight      int
}

func (e Event) Kind() Kind { return e.kind }

func (e Event) Name() string { return e.name }

func (e Event) Description() string { return e.description }

func (e Event) Weight() int { return e.weight }

// Effect returns a copy of the event's resource delta
func (e Event) Effect() resource.Delta { return e.effect.Clone() }

// Execute applies the event's effect to the ledger. SolarStorm carries a
// conditional post-step: the first Engineer in roster order repairs some
// damage for +10 Energy, one responder only. The responding colonist is
// returned so the cycle report can name them; nil when no side effect fired.
func (e Event) Execute(ledger *resource.Ledger, roster []*colony.Colonist) *colony.Colonist {
	ledger.Add(e.effect)

	if e.kind == SolarStorm {
		for _, c := range roster {
			if c.Specialization() == colony.Engineer {
				ledger.Add(resource.Delta{resource.Energy: 10})
				return c
			}
		}
	}
	return nil
}

// Catalog is the fixed, ordered set of events constructed once at startup.
//
// Selection is a threshold scan, not a probability partition: the first event
// in declaration order whose weight is >= the roll executes, so lower-indexed
// events pre-empt later ones even when both qualify. The bias is deliberate
// and must not be flattened into independent probabilities.
type Catalog struct {
	events []Event
}

// NewCatalog builds the standard catalog in its fixed declaration order
func NewCatalog() *Catalog {
	return &Catalog{events: []Event{
		{
			kind:        SolarStorm,
			name:        "Solar Storm",
			description: "A solar storm damages energy systems!",
			effect:      resource.Delta{resource.Energy: -30},
			weight:      15,
		},
		{
			kind:        TradeShip,
			name:        "Trade Ship Arrival",
			description: "A trade ship offers resources!",
			effect:      resource.Delta{resource.Materials: 20, resource.Food: 15},
			weight:      25,
		},
		{
			kind:        MeteorShower,
			name:        "Meteor Shower",
			description: "Meteors provide rare materials but damage buildings!",
			effect:      resource.Delta{resource.Materials: 30, resource.Oxygen: -10},
			weight:      10,
		},
	}}
}

// Events returns the catalog in declaration order
func (c *Catalog) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Select picks the event a roll in [1,100] triggers, or nil when none
// qualifies (a peaceful turn)
func (c *Catalog) Select(roll int) *Event {
	for i := range c.events {
		if roll <= c.events[i].weight {
			return &c.events[i]
		}
	}
	return nil
}
