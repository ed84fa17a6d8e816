// Package warpcli drives the Cloudflare WARP command-line tool.
// The tool owns the tunnel state; every call here re-reads it and nothing is cached.
package warpcli

import (
	"context"
	"strings"
	"time"

	"warp-manager/internal/constants"
	"warp-manager/internal/debuglog"
)

const (
	argVersion    = "--version"
	cmdConnect    = "connect"
	cmdDisconnect = "disconnect"
	cmdStatus     = "status"
)

// Client is the connect/disconnect/status façade over warp-cli.
type Client struct {
	toolPath     string
	marker       string
	runner       Runner
	timeout      time.Duration
	offerInstall func()
}

// Option configures a Client.
type Option func(*Client)

// WithToolPath overrides the warp-cli executable (name on PATH or absolute path).
func WithToolPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.toolPath = path
		}
	}
}

// WithRunner replaces the subprocess runner.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithMarker overrides the status substring that means "connected".
func WithMarker(marker string) Option {
	return func(c *Client) {
		if marker != "" {
			c.marker = marker
		}
	}
}

// WithTimeout bounds each warp-cli invocation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithInstallOffer sets the hook called once each time an operation finds warp-cli missing.
func WithInstallOffer(fn func()) Option {
	return func(c *Client) {
		c.offerInstall = fn
	}
}

// New creates a Client that runs warp-cli from PATH.
func New(opts ...Option) *Client {
	c := &Client{
		toolPath: constants.WarpCLIName,
		marker:   constants.ConnectedMarker,
		runner:   ExecRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.runner = timeoutRunner{next: c.runner, timeout: c.timeout}
	}
	return c
}

// ToolPath returns the executable the client invokes.
func (c *Client) ToolPath() string {
	return c.toolPath
}

// IsInstalled probes warp-cli with --version. Any failure means false.
func (c *Client) IsInstalled(ctx context.Context) bool {
	_, err := c.runner.Run(ctx, c.toolPath, argVersion)
	if err != nil {
		debuglog.DebugLog("warpcli.IsInstalled: %s %s failed: %v", c.toolPath, argVersion, err)
		return false
	}
	return true
}

// Version returns the trimmed --version output.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.toolPath, argVersion)
	if err != nil {
		return "", ErrToolNotInstalled
	}
	return strings.TrimSpace(string(out)), nil
}

// ensureInstalled runs the availability check and triggers the install offer on failure.
func (c *Client) ensureInstalled(ctx context.Context) error {
	if c.IsInstalled(ctx) {
		return nil
	}
	debuglog.WarnLog("warpcli: %s is not available", c.toolPath)
	if c.offerInstall != nil {
		c.offerInstall()
	}
	return ErrToolNotInstalled
}

// Connect runs `warp-cli connect`.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.ensureInstalled(ctx); err != nil {
		return err
	}
	return c.run(ctx, cmdConnect)
}

// Disconnect runs `warp-cli disconnect`.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.ensureInstalled(ctx); err != nil {
		return err
	}
	return c.run(ctx, cmdDisconnect)
}

// Status runs `warp-cli status` and looks for the connected marker in stdout.
// The exit code is ignored. StateUnknown is returned only when the tool could not be run.
func (c *Client) Status(ctx context.Context) (ConnectionState, error) {
	if err := c.ensureInstalled(ctx); err != nil {
		return StateUnknown, err
	}
	return c.status(ctx)
}

// Toggle reads the status and then disconnects if connected, connects otherwise.
// The tool may change state between the read and the act; its state wins.
func (c *Client) Toggle(ctx context.Context) (ToggleResult, error) {
	if err := c.ensureInstalled(ctx); err != nil {
		return ToggleResult{State: StateUnknown}, err
	}

	current, err := c.status(ctx)
	if err != nil {
		return ToggleResult{State: StateUnknown}, err
	}

	if current == StateConnected {
		if err := c.run(ctx, cmdDisconnect); err != nil {
			return ToggleResult{Action: ActionDisconnect, State: current}, err
		}
		return ToggleResult{Action: ActionDisconnect, State: StateDisconnected}, nil
	}

	if err := c.run(ctx, cmdConnect); err != nil {
		return ToggleResult{Action: ActionConnect, State: current}, err
	}
	return ToggleResult{Action: ActionConnect, State: StateConnected}, nil
}

func (c *Client) run(ctx context.Context, command string) error {
	out, err := c.runner.Run(ctx, c.toolPath, command)
	debuglog.LogTextFragment("warpcli", debuglog.LevelVerbose, debuglog.UseGlobal, command+" output", string(out), 300)
	if err != nil {
		ce := newCommandError(command, out, withContextError(ctx, err))
		debuglog.ErrorLog("warpcli: %v", ce)
		return ce
	}
	debuglog.InfoLog("warpcli: %s succeeded", command)
	return nil
}

func (c *Client) status(ctx context.Context) (ConnectionState, error) {
	out, err := c.runner.Run(ctx, c.toolPath, cmdStatus)
	if err != nil && !isExitError(err) {
		ce := newCommandError(cmdStatus, out, withContextError(ctx, err))
		debuglog.ErrorLog("warpcli: %v", ce)
		return StateUnknown, ce
	}
	text := string(out)
	debuglog.LogTextFragment("warpcli", debuglog.LevelVerbose, debuglog.UseGlobal, "status output", text, 300)
	return c.ParseStatus(text), nil
}

// ParseStatus maps status output to a state. Text without the marker counts as
// disconnected; anything that is not an explicit disconnect is logged as unparseable.
func (c *Client) ParseStatus(text string) ConnectionState {
	if strings.Contains(text, c.marker) {
		return StateConnected
	}
	if !strings.Contains(strings.ToLower(text), "disconnected") {
		debuglog.WarnLog("warpcli: status output has no recognizable marker, treating as disconnected: %q", strings.TrimSpace(text))
	}
	return StateDisconnected
}
