//go:build !windows

package window

import "runner/geometry"

type nativeSurface struct{}

// NewNative returns a surface whose Create always fails with ErrUnsupported.
func NewNative() Surface { return nativeSurface{} }

func (nativeSurface) Create(string, geometry.Point, geometry.Size, Hooks) error {
	return ErrUnsupported
}
func (nativeSurface) SetQuitOnClose(bool)        {}
func (nativeSurface) SetCloseEnabled(bool) error { return ErrNotLive }
func (nativeSurface) Handle() uintptr            { return 0 }
func (nativeSurface) Close()                     {}
