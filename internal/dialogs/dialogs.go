// Package dialogs holds the modal helpers used by the main window.
// All functions must be called on the fyne UI goroutine.
package dialogs

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowError shows an error dialog to the user
func ShowError(window fyne.Window, err error) {
	dialog.ShowError(err, window)
}

// ShowErrorText shows an error dialog with a text message.
// fyne titles error dialogs itself, so a title other than "Error" is put in front of the message.
func ShowErrorText(window fyne.Window, title, message string) {
	if title != "" && title != "Error" {
		message = title + ": " + message
	}
	dialog.ShowError(errors.New(message), window)
}

// ShowInfo shows an information dialog to the user
func ShowInfo(window fyne.Window, title, message string) {
	dialog.ShowInformation(title, message, window)
}

// ShowConfirm shows a Yes/No question. onYes runs only when the user confirms.
func ShowConfirm(window fyne.Window, title, message string, onYes func()) {
	d := dialog.NewConfirm(title, message, func(ok bool) {
		if ok && onYes != nil {
			onYes()
		}
	}, window)
	d.SetConfirmText("Yes")
	d.SetDismissText("No")
	d.Show()
}

// ShowCopyable shows message with a button that copies value to the clipboard.
// Escape closes the dialog like the Close button.
func ShowCopyable(window fyne.Window, title, message, copyLabel, value string) dialog.Dialog {
	var d dialog.Dialog

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	copyButton := widget.NewButton(copyLabel, func() {
		fyne.CurrentApp().Clipboard().SetContent(value)
		if d != nil {
			d.Hide()
		}
		ShowAutoHideInfo(window, "Copied", "Copied to clipboard.")
	})
	closeButton := widget.NewButton("Close", func() {
		if d != nil {
			d.Hide()
		}
	})

	buttons := container.NewBorder(nil, nil, closeButton, copyButton, nil)
	d = dialog.NewCustomWithoutButtons(title, container.NewBorder(nil, buttons, nil, nil, label), window)

	originalOnTypedKey := window.Canvas().OnTypedKey()
	restore := func() { window.Canvas().SetOnTypedKey(originalOnTypedKey) }
	window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			d.Hide()
			return
		}
		if originalOnTypedKey != nil {
			originalOnTypedKey(key)
		}
	})
	d.SetOnClosed(restore)

	d.Show()
	return d
}

// ShowAutoHideInfo shows a small dialog that hides itself after 2 seconds.
func ShowAutoHideInfo(window fyne.Window, title, message string) {
	d := dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), window)
	d.Show()
	go func() {
		time.Sleep(2 * time.Second)
		fyne.Do(func() { d.Hide() })
	}()
}
