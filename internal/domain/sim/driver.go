package sim

// ScriptedDriver replays a fixed decision list across management phases.
// An explicit NoOp in the script ends the current phase; once the script is
// exhausted every call yields NoOp, so the run simply coasts to its
// termination condition.
type ScriptedDriver struct {
	commands []Command
	pos      int
}

// NewScriptedDriver creates a driver that plays the given commands in order
func NewScriptedDriver(commands []Command) *ScriptedDriver {
	return &ScriptedDriver{commands: commands}
}

func (d *ScriptedDriver) NextCommand(_ Snapshot, _ error) Command {
	if d.pos >= len(d.commands) {
		return NoOp{}
	}
	cmd := d.commands[d.pos]
	d.pos++
	return cmd
}
