package resource

import "fmt"

// Kind identifies one of the colony's tracked resource types
type Kind string

const (
	Food      Kind = "food"
	Energy    Kind = "energy"
	Materials Kind = "materials"
	Oxygen    Kind = "oxygen"
)

// Kinds returns the known resource kinds in canonical order
func Kinds() []Kind {
	return []Kind{Food, Energy, Materials, Oxygen}
}

// IsValid returns true if the kind is one of the four known resource types
func (k Kind) IsValid() bool {
	switch k {
	case Food, Energy, Materials, Oxygen:
		return true
	}
	return false
}

// ParseKind converts a string into a Kind, validating it against the known set
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown resource kind: %s", s)
	}
	return k, nil
}
