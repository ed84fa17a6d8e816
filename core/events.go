package core

import (
	"warp-manager/internal/warpcli"
)

// EventKind identifies the operation an Event reports on.
type EventKind int

const (
	EventStartup EventKind = iota
	EventInstallOffer
	EventConnect
	EventDisconnect
	EventStatus
	EventToggle
	EventProcessCheck
	EventTrace
	EventExternalIP
	EventBusy
	EventSettings
)

func (k EventKind) String() string {
	switch k {
	case EventStartup:
		return "startup"
	case EventInstallOffer:
		return "install-offer"
	case EventConnect:
		return "connect"
	case EventDisconnect:
		return "disconnect"
	case EventStatus:
		return "status"
	case EventToggle:
		return "toggle"
	case EventProcessCheck:
		return "process-check"
	case EventTrace:
		return "trace"
	case EventExternalIP:
		return "external-ip"
	case EventBusy:
		return "busy"
	case EventSettings:
		return "settings"
	}
	return "unknown"
}

// Severity selects how the UI presents an Event. SeverityNone shows nothing.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeveritySuccess
	SeverityWarning
	SeverityError
	SeverityQuestion
)

// Event is the outcome of one operation, delivered to the UI over a channel.
type Event struct {
	Kind     EventKind
	Severity Severity
	Title    string
	Message  string

	// State is meaningful only when StateChanged is set.
	State        warpcli.ConnectionState
	StateChanged bool

	// ToolMissing is set on startup when warp-cli could not be invoked.
	ToolMissing bool
	// ToolVersion carries the --version output on startup.
	ToolVersion string
	// Busy is the new busy flag for EventBusy.
	Busy bool
	// Detail carries copyable data such as an IP address.
	Detail string

	Err error
}
