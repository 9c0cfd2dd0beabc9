//go:build !windows

package console

type nativeSystem struct{}

// Native returns a System for platforms where the process always inherits
// its parent's standard streams.
func Native() System { return nativeSystem{} }

func (nativeSystem) AttachParent() error   { return nil }
func (nativeSystem) DebuggerPresent() bool { return false }
func (nativeSystem) Allocate() error       { return nil }
