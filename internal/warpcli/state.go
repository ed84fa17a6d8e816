package warpcli

// ConnectionState is the tunnel state as reported by warp-cli.
type ConnectionState int

const (
	StateUnknown ConnectionState = iota
	StateDisconnected
	StateConnected
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "Connected"
	case StateDisconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// Action is what Toggle decided to do.
type Action int

const (
	ActionNone Action = iota
	ActionConnect
	ActionDisconnect
)

func (a Action) String() string {
	switch a {
	case ActionConnect:
		return "connect"
	case ActionDisconnect:
		return "disconnect"
	default:
		return "none"
	}
}

// ToggleResult reports the action Toggle took and the state it led to.
type ToggleResult struct {
	Action Action
	State  ConnectionState
}
