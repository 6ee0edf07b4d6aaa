package dispatch

// State is the lifecycle position of the hosted plugin.
type State int

const (
	Unloaded State = iota
	Started
	Enabled
	Disabled
	Stopped
)

var stateNames = [...]string{
	Unloaded: "unloaded",
	Started:  "started",
	Enabled:  "enabled",
	Disabled: "disabled",
	Stopped:  "stopped",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

func (s State) canStart() bool  { return s == Unloaded || s == Stopped }
func (s State) canEnable() bool { return s == Started || s == Disabled }
