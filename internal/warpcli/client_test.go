package warpcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exitError mimics *exec.ExitError for a process that ran and exited non-zero.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitError) ExitCode() int { return e.code }

type reply struct {
	out string
	err error
}

// fakeRunner records invocations and answers per subcommand.
type fakeRunner struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{replies: map[string]reply{
		argVersion: {out: "warp-cli 2024.6.497\n"},
	}}
}

func (f *fakeRunner) on(arg, out string, err error) *fakeRunner {
	f.replies[arg] = reply{out: out, err: err}
	return f
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arg := strings.Join(args, " ")
	f.calls = append(f.calls, arg)
	r, ok := f.replies[arg]
	if !ok {
		return nil, exitError{code: 2}
	}
	return []byte(r.out), r.err
}

func (f *fakeRunner) count(arg string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == arg {
			n++
		}
	}
	return n
}

func missingTool() *fakeRunner {
	f := newFakeRunner()
	f.replies[argVersion] = reply{err: &exec.Error{Name: "warp-cli", Err: exec.ErrNotFound}}
	return f
}

func TestIsInstalled(t *testing.T) {
	ctx := context.Background()

	assert.True(t, New(WithRunner(newFakeRunner())).IsInstalled(ctx))
	assert.False(t, New(WithRunner(missingTool())).IsInstalled(ctx))

	nonZero := newFakeRunner().on(argVersion, "", exitError{code: 1})
	assert.False(t, New(WithRunner(nonZero)).IsInstalled(ctx))
}

func TestVersion(t *testing.T) {
	v, err := New(WithRunner(newFakeRunner())).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "warp-cli 2024.6.497", v)

	_, err = New(WithRunner(missingTool())).Version(context.Background())
	assert.ErrorIs(t, err, ErrToolNotInstalled)
}

func TestStatusMarker(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   ConnectionState
	}{
		{"connected", "Status update: Connected\nNetwork: healthy\n", StateConnected},
		{"connected with duration", "Connected, since 10 minutes", StateConnected},
		{"disconnected", "Status update: Disconnected\nReason: Manual Disconnection\n", StateDisconnected},
		{"connecting", "Status update: Connecting\n", StateDisconnected},
		{"lowercase is not the marker", "status: connected", StateDisconnected},
		{"empty output", "", StateDisconnected},
		{"garbage", "Error: daemon not responding", StateDisconnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newFakeRunner().on(cmdStatus, tt.output, nil)
			got, err := New(WithRunner(runner)).Status(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusIgnoresExitCode(t *testing.T) {
	runner := newFakeRunner().on(cmdStatus, "Status update: Connected", exitError{code: 1})
	got, err := New(WithRunner(runner)).Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateConnected, got)
}

func TestStatusInvocationFailureIsUnknown(t *testing.T) {
	runner := newFakeRunner().on(cmdStatus, "", errors.New("fork/exec: resource temporarily unavailable"))
	got, err := New(WithRunner(runner)).Status(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateUnknown, got)
	assert.ErrorIs(t, err, ErrToolCommandFailed)
}

func TestConnectDisconnect(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		runner := newFakeRunner().on(cmdConnect, "Success\n", nil).on(cmdDisconnect, "Success\n", nil)
		c := New(WithRunner(runner))
		require.NoError(t, c.Connect(ctx))
		require.NoError(t, c.Disconnect(ctx))
		assert.Equal(t, 1, runner.count(cmdConnect))
		assert.Equal(t, 1, runner.count(cmdDisconnect))
	})

	for _, code := range []int{1, 2, 127, 255} {
		code := code
		t.Run(fmt.Sprintf("exit code %d", code), func(t *testing.T) {
			runner := newFakeRunner().
				on(cmdConnect, "Error: registration missing", exitError{code: code}).
				on(cmdDisconnect, "", exitError{code: code})
			c := New(WithRunner(runner))

			err := c.Connect(ctx)
			require.ErrorIs(t, err, ErrToolCommandFailed)
			var ce *CommandError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, code, ce.ExitCode)
			assert.Equal(t, cmdConnect, ce.Command)
			assert.Contains(t, ce.Error(), "registration missing")

			err = c.Disconnect(ctx)
			require.ErrorIs(t, err, ErrToolCommandFailed)
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, code, ce.ExitCode)
		})
	}
}

func TestMissingToolNeverInvokesSubcommands(t *testing.T) {
	ctx := context.Background()
	runner := missingTool()
	offers := 0
	c := New(WithRunner(runner), WithInstallOffer(func() { offers++ }))

	assert.ErrorIs(t, c.Connect(ctx), ErrToolNotInstalled)
	assert.Equal(t, 1, offers)

	assert.ErrorIs(t, c.Disconnect(ctx), ErrToolNotInstalled)
	assert.Equal(t, 2, offers)

	state, err := c.Status(ctx)
	assert.ErrorIs(t, err, ErrToolNotInstalled)
	assert.Equal(t, StateUnknown, state)
	assert.Equal(t, 3, offers)

	_, err = c.Toggle(ctx)
	assert.ErrorIs(t, err, ErrToolNotInstalled)
	assert.Equal(t, 4, offers)

	for _, cmd := range []string{cmdConnect, cmdDisconnect, cmdStatus} {
		assert.Zero(t, runner.count(cmd), "%s must not be invoked", cmd)
	}
}

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("connected disconnects", func(t *testing.T) {
		runner := newFakeRunner().
			on(cmdStatus, "Status update: Connected", nil).
			on(cmdDisconnect, "Success", nil).
			on(cmdConnect, "Success", nil)
		res, err := New(WithRunner(runner)).Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, ActionDisconnect, res.Action)
		assert.Equal(t, StateDisconnected, res.State)
		assert.Equal(t, 1, runner.count(cmdDisconnect))
		assert.Zero(t, runner.count(cmdConnect))
		assert.Equal(t, 1, runner.count(argVersion), "availability is checked once per toggle")
	})

	t.Run("disconnected connects", func(t *testing.T) {
		runner := newFakeRunner().
			on(cmdStatus, "Status update: Disconnected", nil).
			on(cmdDisconnect, "Success", nil).
			on(cmdConnect, "Success", nil)
		res, err := New(WithRunner(runner)).Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, ActionConnect, res.Action)
		assert.Equal(t, StateConnected, res.State)
		assert.Equal(t, 1, runner.count(cmdConnect))
		assert.Zero(t, runner.count(cmdDisconnect))
	})

	t.Run("failed connect keeps state", func(t *testing.T) {
		runner := newFakeRunner().
			on(cmdStatus, "Status update: Disconnected", nil).
			on(cmdConnect, "", exitError{code: 1})
		res, err := New(WithRunner(runner)).Toggle(ctx)
		require.ErrorIs(t, err, ErrToolCommandFailed)
		assert.Equal(t, ActionConnect, res.Action)
		assert.Equal(t, StateDisconnected, res.State)
	})

	t.Run("status failure acts on nothing", func(t *testing.T) {
		runner := newFakeRunner().on(cmdStatus, "", errors.New("spawn failed"))
		res, err := New(WithRunner(runner)).Toggle(ctx)
		require.Error(t, err)
		assert.Equal(t, ActionNone, res.Action)
		assert.Zero(t, runner.count(cmdConnect))
		assert.Zero(t, runner.count(cmdDisconnect))
	})
}

func TestOptions(t *testing.T) {
	c := New(WithToolPath("/opt/warp/bin/warp-cli"), WithMarker("Up"), WithToolPath(""))
	assert.Equal(t, "/opt/warp/bin/warp-cli", c.ToolPath())
	assert.Equal(t, StateConnected, c.ParseStatus("Status: Up"))
	assert.Equal(t, StateDisconnected, c.ParseStatus("Status: Connected"))
}

func TestCommandErrorTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ce := newCommandError(cmdConnect, nil, withContextError(ctx, exitError{code: -1}))
	assert.Equal(t, -1, ce.ExitCode)
	assert.ErrorIs(t, ce, context.Canceled)
	assert.ErrorIs(t, ce, ErrToolCommandFailed)
	assert.Contains(t, ce.Error(), "warp-cli connect failed")
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo Connected; exit 3")
	assert.Equal(t, "Connected\n", string(out))
	require.Error(t, err)
	assert.True(t, isExitError(err))

	_, err = ExecRunner{}.Run(context.Background(), "definitely-not-a-real-warp-cli")
	require.Error(t, err)
	assert.False(t, isExitError(err))
}

// hangingRunner answers --version and blocks every other call until the context ends.
type hangingRunner struct{}

func (hangingRunner) Run(ctx context.Context, _ string, args ...string) ([]byte, error) {
	if len(args) == 1 && args[0] == argVersion {
		return []byte("warp-cli 2024.6.497"), nil
	}
	<-ctx.Done()
	return nil, exitError{code: -1}
}

func TestTimeoutBoundsEachInvocation(t *testing.T) {
	c := New(WithRunner(hangingRunner{}), WithTimeout(50*time.Millisecond))

	state, err := c.Status(context.Background())
	assert.Equal(t, StateUnknown, state)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	err = c.Connect(context.Background())
	assert.ErrorIs(t, err, ErrToolCommandFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
