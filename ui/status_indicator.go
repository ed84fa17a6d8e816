package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"warp-manager/internal/warpcli"
)

var (
	colorConnected    = color.NRGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}
	colorDisconnected = color.NRGBA{R: 0xaa, G: 0x00, B: 0x00, A: 0xff}
	colorUnknown      = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// StatusIndicator is the colored dot and text showing the last known WARP state.
type StatusIndicator struct {
	container *fyne.Container
	circle    *canvas.Circle
	text      *canvas.Text
	state     warpcli.ConnectionState
	checked   bool
}

// NewStatusIndicator creates an indicator in its "checking" state.
func NewStatusIndicator() *StatusIndicator {
	circle := canvas.NewCircle(colorUnknown)
	text := canvas.NewText("WARP Status: Checking...", colorUnknown)
	text.TextSize = 14

	s := &StatusIndicator{
		circle: circle,
		text:   text,
		state:  warpcli.StateUnknown,
	}
	s.container = container.NewHBox(
		container.NewGridWrap(fyne.NewSize(20, 20), circle),
		container.NewCenter(text),
	)
	return s
}

// GetContainer returns the container for embedding in UI
func (s *StatusIndicator) GetContainer() *fyne.Container {
	return s.container
}

// SetState updates color and text. Disconnected and Unknown are told apart
// once the startup check has finished.
func (s *StatusIndicator) SetState(state warpcli.ConnectionState, checked bool) {
	if s.state == state && s.checked == checked {
		return
	}
	s.state = state
	s.checked = checked

	c, label := colorUnknown, "WARP Status: Checking..."
	switch {
	case state == warpcli.StateConnected:
		c, label = colorConnected, "WARP Status: Connected"
	case state == warpcli.StateDisconnected:
		c, label = colorDisconnected, "WARP Status: Disconnected"
	case checked:
		label = "WARP Status: Unknown"
	}

	s.circle.FillColor = c
	s.text.Color = c
	s.text.Text = label
	s.circle.Refresh()
	s.text.Refresh()
}

// State returns the state currently displayed.
func (s *StatusIndicator) State() warpcli.ConnectionState {
	return s.state
}

// Text returns the readout text.
func (s *StatusIndicator) Text() string {
	return s.text.Text
}

// Color returns the readout color.
func (s *StatusIndicator) Color() color.Color {
	return s.circle.FillColor
}
