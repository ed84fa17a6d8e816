package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorBanner displays a red banner above the controls, e.g. when warp-cli is missing.
type ErrorBanner struct {
	container *fyne.Container
	text      *widget.Label
	action    *widget.Button
}

// NewErrorBanner creates a hidden banner. action may be nil; otherwise a button
// with actionLabel is shown on the right.
func NewErrorBanner(message, actionLabel string, action func()) *ErrorBanner {
	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord

	rect := canvas.NewRectangle(color.NRGBA{R: 255, G: 200, B: 200, A: 255})
	rect.SetMinSize(fyne.NewSize(0, 40))

	eb := &ErrorBanner{text: text}
	var right fyne.CanvasObject
	if action != nil {
		eb.action = widget.NewButton(actionLabel, action)
		right = container.NewCenter(eb.action)
	}

	eb.container = container.NewStack(
		rect,
		container.NewPadded(container.NewBorder(nil, nil, nil, right, text)),
	)
	eb.container.Hide()
	return eb
}

// GetContainer returns the container for embedding in UI
func (eb *ErrorBanner) GetContainer() *fyne.Container {
	return eb.container
}

// SetMessage updates the error message
func (eb *ErrorBanner) SetMessage(message string) {
	eb.text.SetText(message)
}

// Message returns the current message.
func (eb *ErrorBanner) Message() string {
	return eb.text.Text
}

// SetVisible shows or hides the banner.
func (eb *ErrorBanner) SetVisible(visible bool) {
	if visible == eb.container.Visible() {
		return
	}
	if visible {
		eb.container.Show()
	} else {
		eb.container.Hide()
	}
}

// IsVisible returns whether the banner is visible
func (eb *ErrorBanner) IsVisible() bool {
	return eb.container.Visible()
}
