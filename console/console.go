// Package console decides where the process's standard streams go when it
// starts as a GUI-subsystem executable.
package console

// Mode records which console, if any, the process ended up with.
type Mode int

const (
	None Mode = iota
	Parent
	Allocated
)

func (m Mode) String() string {
	switch m {
	case Parent:
		return "parent"
	case Allocated:
		return "allocated"
	default:
		return "none"
	}
}

// Attached reports whether the standard streams reach a console.
func (m Mode) Attached() bool { return m != None }

type System interface {
	AttachParent() error
	DebuggerPresent() bool
	Allocate() error
}

// Attach binds to the launching terminal when there is one. Without a
// parent console a fresh one is allocated only while a debugger is attached;
// a normal double-click launch stays console-less. Failures are swallowed.
func Attach(sys System) Mode {
	if err := sys.AttachParent(); err == nil {
		return Parent
	}
	if !sys.DebuggerPresent() {
		return None
	}
	if err := sys.Allocate(); err != nil {
		return None
	}
	return Allocated
}
