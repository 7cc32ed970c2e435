package sim

import (
	"context"
	"math/rand"
	"time"
)

// Roller produces uniform event rolls in [1,100]. Injected so tests can pin
// the event phase to a known outcome.
type Roller interface {
	Roll() int
}

type randRoller struct {
	rng *rand.Rand
}

// NewRandRoller creates the production roller. A zero seed means
// time-seeded; any other value gives a reproducible run.
func NewRandRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randRoller) Roll() int {
	return r.rng.Intn(100) + 1
}

// Driver supplies management decisions during the Management phase. It may
// be interactive, scripted, or file-replayed. The engine calls NextCommand
// repeatedly until it returns NoOp; rejected is the error from the previous
// command, nil on the first call or after success.
type Driver interface {
	NextCommand(s Snapshot, rejected error) Command
}

// RunSummary describes one persisted run
type RunSummary struct {
	RunID   string
	Turn    int
	Phase   Phase
	Running bool
	SavedAt time.Time
}

// RunRepository persists complete simulation runs
type RunRepository interface {
	Save(ctx context.Context, e *Engine) error
	Load(ctx context.Context, runID string, roller Roller) (*Engine, error)
	List(ctx context.Context) ([]RunSummary, error)
}
