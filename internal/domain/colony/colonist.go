package colony

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

// Specialization determines what a colonist produces when working
type Specialization string

const (
	Engineer   Specialization = "Engineer"
	Scientist  Specialization = "Scientist"
	Farmer     Specialization = "Farmer"
	Generalist Specialization = "Generalist"
)

// workHealthThreshold gates the labor model: below it a colonist cannot work
const workHealthThreshold = 50

// Colonist is a member of the colony roster.
//
// Invariants: experience is monotonic non-decreasing, health stays in
// [0,100], and health 0 is terminal - the caller removes the colonist from
// the roster when TakeDamage reports ColonistDeceasedError.
type Colonist struct {
	id             string
	name           string
	specialization Specialization
	experience     int
	health         int
	assigned       bool
}

// NewColonist creates a fresh colonist at full health. Specializations
// outside the known set behave as Generalist in the labor model.
func NewColonist(name string, specialization Specialization) *Colonist {
	return &Colonist{
		id:             uuid.NewString(),
		name:           name,
		specialization: specialization,
		experience:     0,
		health:         100,
		assigned:       false,
	}
}

// ReconstructColonist restores a colonist from persisted state.
// This bypasses the full-health default and is used by the repository.
func ReconstructColonist(id, name string, specialization Specialization, experience, health int, assigned bool) *Colonist {
	return &Colonist{
		id:             id,
		name:           name,
		specialization: specialization,
		experience:     experience,
		health:         health,
		assigned:       assigned,
	}
}

// Work runs one labor shift. Below the health threshold it fails with
// ColonistIncapacitatedError and changes nothing. Otherwise experience rises
// by one first, and the output is computed from the new value using integer
// division tiers per specialization.
func (c *Colonist) Work() (resource.Delta, error) {
	if c.health < workHealthThreshold {
		return nil, NewColonistIncapacitatedError(c.name, c.health)
	}

	c.experience++

	output := resource.Delta{}
	switch c.specialization {
	case Engineer:
		output[resource.Materials] = 5 + c.experience/10
	case Scientist:
		output[resource.Energy] = 3 + c.experience/15
		output[resource.Oxygen] = 2 + c.experience/20
	case Farmer:
		output[resource.Food] = 8 + c.experience/8
	default:
		output[resource.Materials] = 2
		output[resource.Food] = 2
	}
	return output, nil
}

// Rest restores 10 health (capped at 100) and clears the assigned flag.
// Always succeeds.
func (c *Colonist) Rest() {
	c.health = min(100, c.health+10)
	c.assigned = false
}

// TakeDamage lowers health by amount, floored at zero. Reaching zero fails
// with ColonistDeceasedError; the roster entry must then be removed.
func (c *Colonist) TakeDamage(amount int) error {
	c.health = max(0, c.health-amount)
	if c.health == 0 {
		return NewColonistDeceasedError(c.name)
	}
	return nil
}

// CanWork reports whether the production phase should invoke this colonist:
// unassigned and strictly above the health threshold.
func (c *Colonist) CanWork() bool {
	return !c.assigned && c.health > workHealthThreshold
}

func (c *Colonist) ID() string { return c.id }

func (c *Colonist) Name() string { return c.name }

func (c *Colonist) Specialization() Specialization { return c.specialization }

func (c *Colonist) Experience() int { return c.experience }

func (c *Colonist) Health() int { return c.health }

func (c *Colonist) Assigned() bool { return c.assigned }

func (c *Colonist) SetAssigned(status bool) { c.assigned = status }
