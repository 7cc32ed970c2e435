package sim

import (
	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
)

// BuildingView is a read-only projection of one building
type BuildingView struct {
	Kind        colony.BuildingKind
	Name        string
	Level       int
	Operational bool
	Output      resource.Kind
}

// ColonistView is a read-only projection of one roster entry
type ColonistView struct {
	ID             string
	Name           string
	Specialization colony.Specialization
	Experience     int
	Health         int
	Assigned       bool
}

// Snapshot is a consistent read-only view of a run. There is no mutation
// path through it; all changes go through management commands.
type Snapshot struct {
	RunID     string
	Phase     Phase
	Turn      int
	Running   bool
	Resources map[resource.Kind]int
	Buildings []BuildingView
	Colonists []ColonistView
}
