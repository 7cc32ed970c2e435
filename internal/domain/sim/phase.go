package sim

// Phase is a step in the fixed turn cycle
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseProduction Phase = "production"
	PhaseEvent      Phase = "event"
	PhaseManagement Phase = "management"
	PhaseEnd        Phase = "end"
)

// State is the phase state machine for one run.
//
// Transitions: Setup -> Production -> Event -> Management -> Production,
// with the turn counter incrementing exactly on the Management -> Production
// edge. Any state may jump to End via End(); End is terminal and clears the
// running flag.
type State struct {
	phase   Phase
	turn    int
	running bool
}

// NewState creates a run at turn 1 in the Setup phase
func NewState() *State {
	return &State{phase: PhaseSetup, turn: 1, running: true}
}

// ReconstructState restores phase machine state from persistence
func ReconstructState(phase Phase, turn int, running bool) *State {
	return &State{phase: phase, turn: turn, running: running}
}

// Next advances one edge of the cycle
func (s *State) Next() {
	switch s.phase {
	case PhaseSetup:
		s.phase = PhaseProduction
	case PhaseProduction:
		s.phase = PhaseEvent
	case PhaseEvent:
		s.phase = PhaseManagement
	case PhaseManagement:
		s.phase = PhaseProduction
		s.turn++
	case PhaseEnd:
		s.running = false
	}
}

// End moves the machine to its terminal state
func (s *State) End() {
	s.phase = PhaseEnd
	s.running = false
}

func (s *State) Phase() Phase { return s.phase }

func (s *State) Turn() int { return s.turn }

func (s *State) Running() bool { return s.running }
