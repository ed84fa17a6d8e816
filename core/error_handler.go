package core

import (
	"errors"
	"fmt"
	"log"

	"warp-manager/internal/netcheck"
	"warp-manager/internal/warpcli"
)

// tunnelErrorEvent turns a failed warp-cli operation into an error event.
// ok is false for ErrToolNotInstalled: the install offer has already been emitted.
func tunnelErrorEvent(kind EventKind, summary string, err error) (Event, bool) {
	if errors.Is(err, warpcli.ErrToolNotInstalled) {
		log.Printf("%s: warp-cli not installed, install offer shown", kind)
		return Event{}, false
	}

	message := summary
	var ce *warpcli.CommandError
	if errors.As(err, &ce) {
		message = fmt.Sprintf("%s\n\n%s", summary, ce.Error())
	} else if err != nil {
		message = fmt.Sprintf("%s\n\n%v", summary, err)
	}
	log.Printf("%sError: %v", kind, err)

	return Event{
		Kind:     kind,
		Severity: SeverityError,
		Title:    "Error",
		Message:  message,
		Err:      err,
	}, true
}

// networkErrorEvent reports a failed diagnostic.
func networkErrorEvent(kind EventKind, title string, err error) Event {
	log.Printf("%sError: %v", kind, err)
	return Event{
		Kind:     kind,
		Severity: SeverityError,
		Title:    title,
		Message:  netcheck.ErrorMessage(err),
		Err:      err,
	}
}

// settingsErrorEvent reports an unusable settings file.
func settingsErrorEvent(err error) Event {
	log.Printf("SettingsError: %v", err)
	return Event{
		Kind:     EventSettings,
		Severity: SeverityWarning,
		Title:    "Settings Ignored",
		Message:  fmt.Sprintf("settings.jsonc could not be used and built-in defaults are active:\n\n%v", err),
		Err:      err,
	}
}
