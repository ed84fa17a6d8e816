package process

import (
	"strings"

	"github.com/mitchellh/go-ps"

	"warp-manager/internal/debuglog"
)

// ProcessInfo is a small struct representing a running process.
// It is intentionally minimal to keep cross-platform compatibility.
type ProcessInfo struct {
	PID  int
	Name string
}

// Lister enumerates the live process table.
type Lister interface {
	Processes() ([]ProcessInfo, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func() ([]ProcessInfo, error)

func (f ListerFunc) Processes() ([]ProcessInfo, error) { return f() }

// SystemLister reads the OS process table through github.com/mitchellh/go-ps.
var SystemLister Lister = ListerFunc(GetProcesses)

// GetProcesses returns a list of running processes in a platform-agnostic format.
// Processes that exited while the table was read come back without a name.
func GetProcesses() ([]ProcessInfo, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if p == nil {
			continue
		}
		out = append(out, ProcessInfo{PID: p.Pid(), Name: p.Executable()})
	}
	return out, nil
}

// Checker answers "is something called like X running?" against a Lister.
type Checker struct {
	Lister Lister
}

// NewChecker returns a Checker over lister, or over the OS process table when lister is nil.
func NewChecker(lister Lister) *Checker {
	if lister == nil {
		lister = SystemLister
	}
	return &Checker{Lister: lister}
}

// IsRunning reports whether any process name contains nameSubstring, ignoring case.
// Entries without a readable name are skipped; a failed listing reports false.
func (c *Checker) IsRunning(nameSubstring string) bool {
	_, found := c.Find(nameSubstring)
	return found
}

// Find returns the first process whose name contains nameSubstring, ignoring case.
func (c *Checker) Find(nameSubstring string) (ProcessInfo, bool) {
	needle := strings.ToLower(nameSubstring)
	if needle == "" {
		return ProcessInfo{}, false
	}

	procs, err := c.Lister.Processes()
	if err != nil {
		debuglog.WarnLog("process.Find: error listing processes: %v", err)
		return ProcessInfo{}, false
	}

	for _, p := range procs {
		if p.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), needle) {
			debuglog.DebugLog("process.Find: %q matched PID=%d name=%q", nameSubstring, p.PID, p.Name)
			return p, true
		}
	}
	debuglog.DebugLog("process.Find: no process matched %q (checked %d processes)", nameSubstring, len(procs))
	return ProcessInfo{}, false
}

// IsRunning checks the OS process table for nameSubstring.
func IsRunning(nameSubstring string) bool {
	return NewChecker(nil).IsRunning(nameSubstring)
}
