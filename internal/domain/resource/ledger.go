package resource

// Delta is a signed, key-wise resource amount. Production output, building
// costs, per-turn consumption and event effects are all expressed as deltas.
type Delta map[Kind]int

// Clone returns an independent copy of the delta
func (d Delta) Clone() Delta {
	if d == nil {
		return nil
	}
	out := make(Delta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Accumulate adds every entry of other into the receiver, creating keys as
// needed. Used to sum producer outputs before they touch the ledger.
func (d Delta) Accumulate(other Delta) {
	for k, v := range other {
		d[k] += v
	}
}

// Ledger is the colony's resource quantity store.
//
// Invariant: after any successful public mutation the ledger holds a
// consistent state; a failed Subtract leaves it bit-for-bit unchanged.
// Add is deliberately allowed to drive quantities negative (event effects
// use additive semantics) - the loss condition owns the consequence.
type Ledger struct {
	quantities map[Kind]int
}

// NewLedger creates the starting colony ledger
func NewLedger() *Ledger {
	return &Ledger{
		quantities: map[Kind]int{
			Food:      100,
			Energy:    100,
			Materials: 50,
			Oxygen:    100,
		},
	}
}

// ReconstructLedger restores a ledger from persisted quantities.
// This bypasses the starting defaults and is used by the repository.
func ReconstructLedger(quantities map[Kind]int) *Ledger {
	q := make(map[Kind]int, len(quantities))
	for k, v := range quantities {
		q[k] = v
	}
	return &Ledger{quantities: q}
}

// Add increases the ledger key-wise by delta. It always succeeds: growth is
// uncapped, unknown keys are union-merged in, and negative components may
// legally push a quantity below zero.
func (l *Ledger) Add(delta Delta) {
	for k, v := range delta {
		l.quantities[k] += v
	}
}

// Subtract debits the ledger key-wise, all-or-nothing. If any tentative
// result would be negative the whole operation fails with
// InsufficientResourceError and no key is touched.
func (l *Ledger) Subtract(delta Delta) error {
	for k, v := range delta {
		if l.quantities[k]-v < 0 {
			return NewInsufficientResourceError(k, v, l.quantities[k])
		}
	}
	for k, v := range delta {
		l.quantities[k] -= v
	}
	return nil
}

// CanAfford reports whether a Subtract of cost would succeed, using the
// same tentative check. A kind absent from the ledger counts as zero, so a
// non-positive cost entry for it is affordable just as Subtract accepts it.
func (l *Ledger) CanAfford(cost Delta) bool {
	for k, v := range cost {
		if l.quantities[k]-v < 0 {
			return false
		}
	}
	return true
}

// Quantity returns the held amount for a kind. Querying a kind the ledger
// does not track fails with UnknownResourceKindError.
func (l *Ledger) Quantity(kind Kind) (int, error) {
	q, ok := l.quantities[kind]
	if !ok {
		return 0, NewUnknownResourceKindError(kind)
	}
	return q, nil
}

// Snapshot returns a read-only copy of all quantities
func (l *Ledger) Snapshot() map[Kind]int {
	out := make(map[Kind]int, len(l.quantities))
	for k, v := range l.quantities {
		out[k] = v
	}
	return out
}
