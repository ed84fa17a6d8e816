// Package core owns the application state and runs every warp-cli call off the UI goroutine.
// Results reach the UI as Events on a channel.
package core

import (
	"context"
	"log"
	"sync"
	"time"

	"warp-manager/internal/config"
	"warp-manager/internal/constants"
	"warp-manager/internal/netcheck"
	"warp-manager/internal/platform"
	"warp-manager/internal/process"
	"warp-manager/internal/warpcli"
)

const eventBufferSize = 32

// Dependencies lets callers replace the OS-facing parts of the controller.
// Nil fields select the real implementations.
type Dependencies struct {
	Runner     warpcli.Runner
	Lister     process.Lister
	OpenURL    func(url string) error
	ExternalIP func(ctx context.Context, server string, timeout time.Duration) (string, error)
	Trace      func(ctx context.Context, tc netcheck.TraceClient) (netcheck.TraceResult, error)
}

// AppController - the main structure encapsulating application state and logic.
type AppController struct {
	Settings    config.Settings
	SettingsErr error

	Warp      *warpcli.Client
	Processes *process.Checker
	State     *StateService

	openURL    func(url string) error
	externalIP func(ctx context.Context, server string, timeout time.Duration) (string, error)
	trace      func(ctx context.Context, tc netcheck.TraceClient) (netcheck.TraceResult, error)

	events   chan Event
	sendMu   sync.RWMutex // guards events against close and wg against late Add
	tunnelMu sync.Mutex
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	closed   sync.Once
}

// NewAppController creates an AppController from settings. settingsErr is the
// error Load returned, if any; it is reported once at startup.
func NewAppController(settings config.Settings, settingsErr error, deps Dependencies) *AppController {
	ctx, cancel := context.WithCancel(context.Background())
	ac := &AppController{
		Settings:    settings,
		SettingsErr: settingsErr,
		State:       NewStateService(),
		events:      make(chan Event, eventBufferSize),
		ctx:         ctx,
		cancel:      cancel,
		openURL:     deps.OpenURL,
		externalIP:  deps.ExternalIP,
		trace:       deps.Trace,
	}
	if ac.openURL == nil {
		ac.openURL = platform.OpenURL
	}
	if ac.externalIP == nil {
		ac.externalIP = netcheck.ExternalIP
	}
	if ac.trace == nil {
		ac.trace = func(ctx context.Context, tc netcheck.TraceClient) (netcheck.TraceResult, error) {
			return tc.Trace(ctx)
		}
	}

	ac.Warp = warpcli.New(
		warpcli.WithToolPath(settings.ToolPath),
		warpcli.WithRunner(deps.Runner),
		warpcli.WithTimeout(settings.CommandTimeout()),
		warpcli.WithInstallOffer(ac.offerInstall),
	)
	ac.Processes = process.NewChecker(deps.Lister)

	log.Printf("NewAppController: tool=%s timeout=%s", ac.Warp.ToolPath(), settings.CommandTimeout())
	return ac
}

// Events returns the channel the UI drains. It is closed by Shutdown.
func (ac *AppController) Events() <-chan Event {
	return ac.events
}

// Snapshot returns the current application state.
func (ac *AppController) Snapshot() AppState {
	return ac.State.Snapshot()
}

// Shutdown cancels running operations, waits for them and closes the event channel.
func (ac *AppController) Shutdown() {
	ac.closed.Do(func() {
		log.Println("Shutdown: cancelling pending operations")
		ac.cancel()
		// Wait out emits and dispatches that saw the context alive.
		ac.sendMu.Lock()
		ac.sendMu.Unlock()
		ac.wg.Wait()
		ac.sendMu.Lock()
		close(ac.events)
		ac.sendMu.Unlock()
	})
}

// emit applies ev to the state and hands it to the UI.
func (ac *AppController) emit(ev Event) {
	ac.State.Apply(ev)
	ac.sendMu.RLock()
	defer ac.sendMu.RUnlock()
	if ac.ctx.Err() != nil {
		log.Printf("emit: dropping %s event after shutdown", ev.Kind)
		return
	}
	select {
	case ac.events <- ev:
	case <-ac.ctx.Done():
		log.Printf("emit: dropping %s event after shutdown", ev.Kind)
	}
}

// dispatch runs fn on its own goroutine and emits the event it returns, if any.
func (ac *AppController) dispatch(name string, fn func(ctx context.Context) (Event, bool)) bool {
	ac.sendMu.RLock()
	if ac.ctx.Err() != nil {
		ac.sendMu.RUnlock()
		log.Printf("%s: ignored, application is shutting down", name)
		return false
	}
	ac.wg.Add(1)
	ac.sendMu.RUnlock()

	go func() {
		defer ac.wg.Done()
		start := time.Now()
		ev, ok := fn(ac.ctx)
		log.Printf("%s: finished in %s", name, time.Since(start).Round(time.Millisecond))
		if ok {
			ac.emit(ev)
		}
	}()
	return true
}

// dispatchTunnel is dispatch for warp-cli operations. Only one runs at a time; a
// request that arrives while another is running is dropped.
func (ac *AppController) dispatchTunnel(name string, fn func(ctx context.Context) (Event, bool)) bool {
	if !ac.tunnelMu.TryLock() {
		log.Printf("%s: another warp-cli operation is in progress, ignoring", name)
		return false
	}
	ac.emit(Event{Kind: EventBusy, Busy: true})
	started := ac.dispatch(name, func(ctx context.Context) (Event, bool) {
		defer ac.tunnelMu.Unlock()
		if ev, ok := fn(ctx); ok {
			ac.emit(ev)
		}
		ac.emit(Event{Kind: EventBusy, Busy: false})
		return Event{}, false
	})
	if !started {
		ac.tunnelMu.Unlock()
		ac.State.Apply(Event{Kind: EventBusy, Busy: false})
	}
	return started
}

// offerInstall is the warp-cli install hook; it runs on the operation goroutine.
func (ac *AppController) offerInstall() {
	ac.emit(Event{
		Kind:     EventInstallOffer,
		Severity: SeverityQuestion,
		Title:    "WARP Not Found",
		Message:  "Cloudflare WARP is not installed. Do you want to open the download page?",
	})
}

// OpenInstallPage opens the WARP download page.
func (ac *AppController) OpenInstallPage() error {
	return ac.OpenURL(constants.WarpInstallURL)
}

// OpenDNSLeakTest opens the DNS leak test site.
func (ac *AppController) OpenDNSLeakTest() error {
	return ac.OpenURL(constants.DNSLeakTestURL)
}

// OpenURL opens url in the default browser without waiting for it.
func (ac *AppController) OpenURL(url string) error {
	if err := ac.openURL(url); err != nil {
		log.Printf("OpenURL: failed to open %s: %v", url, err)
		return err
	}
	log.Printf("OpenURL: opened %s", url)
	return nil
}
