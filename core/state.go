package core

import (
	"sync"

	"warp-manager/internal/warpcli"
)

// AppState is the UI-facing application state. It only changes through StateService.Apply.
type AppState struct {
	ToolChecked   bool
	ToolAvailable bool
	ToolVersion   string
	Connection    warpcli.ConnectionState
	Busy          bool
}

// TunnelControlsEnabled reports whether connect/disconnect/status buttons accept clicks.
func (s AppState) TunnelControlsEnabled() bool {
	return s.ToolChecked && s.ToolAvailable && !s.Busy
}

// StateService guards AppState.
type StateService struct {
	mu    sync.RWMutex
	state AppState
}

// NewStateService creates a StateService in its pre-startup state.
func NewStateService() *StateService {
	return &StateService{state: AppState{Connection: warpcli.StateUnknown}}
}

// Snapshot returns a copy of the current state.
func (s *StateService) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Apply folds ev into the state and returns the result.
func (s *StateService) Apply(ev Event) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case EventStartup:
		s.state.ToolChecked = true
		s.state.ToolAvailable = !ev.ToolMissing
		if ev.ToolVersion != "" {
			s.state.ToolVersion = ev.ToolVersion
		}
	case EventBusy:
		s.state.Busy = ev.Busy
	case EventConnect, EventDisconnect, EventToggle, EventStatus:
		// A completed tunnel operation proves the tool is there.
		if ev.Err == nil && s.state.ToolChecked {
			s.state.ToolAvailable = true
		}
	}

	if ev.StateChanged {
		s.state.Connection = ev.State
	}
	return s.state
}
