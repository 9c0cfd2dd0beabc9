package window

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runner/geometry"
	"runner/project"
)

type fakeContent struct {
	mountErr error
	handle   uintptr
	project  *project.Project
	sizes    []geometry.Size
	unmounts int

	// state, when set, is sampled on Unmount.
	state     func() State
	unmountIn []State
}

func (c *fakeContent) Mount(handle uintptr, p *project.Project, client geometry.Size) error {
	if c.mountErr != nil {
		return c.mountErr
	}
	c.handle, c.project = handle, p
	c.sizes = append(c.sizes, client)
	return nil
}

func (c *fakeContent) Resize(client geometry.Size) { c.sizes = append(c.sizes, client) }

func (c *fakeContent) Unmount() {
	c.unmounts++
	if c.state != nil {
		c.unmountIn = append(c.unmountIn, c.state())
	}
}

var (
	origin = geometry.Point{X: 200, Y: 24}
	size   = geometry.Size{Width: 960, Height: 852}
)

func TestCreateGoesLive(t *testing.T) {
	surf := NewFakeSurface()
	w := New(surf, project.New("data"), nil)
	assert.Equal(t, Uncreated, w.State())

	require.NoError(t, w.Create("httpd Settings", origin, size))
	assert.Equal(t, Live, w.State())
	assert.Equal(t, "httpd Settings", surf.Title())
	assert.Equal(t, geometry.Placement{Origin: origin, Size: size}, surf.Placement())
	assert.NotZero(t, w.Handle())
}

func TestCreateOnlyOnce(t *testing.T) {
	w := New(NewFakeSurface(), project.New("data"), nil)
	require.NoError(t, w.Create("a", origin, size))
	assert.ErrorIs(t, w.Create("b", origin, size), ErrAlreadyCreated)
}

func TestCreateFailureStaysUncreated(t *testing.T) {
	surf := NewFakeSurface()
	surf.CreateErr = errors.New("class not registered")
	w := New(surf, project.New("data"), nil)

	err := w.Create("a", origin, size)
	require.ErrorIs(t, err, surf.CreateErr)
	assert.Equal(t, Uncreated, w.State())
	assert.Zero(t, w.Handle())
}

func TestMountFailureAbortsCreate(t *testing.T) {
	content := &fakeContent{mountErr: errors.New("engine failed to start")}
	w := New(NewFakeSurface(), project.New("data"), content)

	err := w.Create("a", origin, size)
	require.ErrorIs(t, err, content.mountErr)
	assert.Equal(t, Uncreated, w.State())
	assert.Zero(t, content.unmounts)
}

func TestContentLifecycle(t *testing.T) {
	p := project.New("data")
	content := &fakeContent{}
	surf := NewFakeSurface()
	w := New(surf, p, content)

	require.NoError(t, w.Create("a", origin, size))
	assert.Same(t, p, content.project)
	assert.Equal(t, uintptr(fakeHandle), content.handle)

	surf.Resize(geometry.Size{Width: 640, Height: 480})
	assert.Equal(t, []geometry.Size{size, {Width: 640, Height: 480}}, content.sizes)

	w.RequestClose()
	assert.Equal(t, Destroyed, w.State())
	assert.Equal(t, 1, content.unmounts)
}

func TestQuitOnClose(t *testing.T) {
	quits := 0
	surf := NewFakeSurface()
	surf.OnQuit = func() { quits++ }
	w := New(surf, project.New("data"), nil)
	require.NoError(t, w.Create("a", origin, size))
	w.SetQuitOnClose(true)
	assert.True(t, surf.QuitOnClose())

	w.RequestClose()
	w.RequestClose()
	assert.Equal(t, Destroyed, w.State())
	assert.Equal(t, 1, quits)
	assert.Equal(t, 1, surf.Closes(), "second request must not reach the surface")
}

func TestUserCloseTerminatesFirst(t *testing.T) {
	quits := 0
	surf := NewFakeSurface()
	content := &fakeContent{}
	w := New(surf, project.New("data"), content)
	content.state = w.State
	surf.OnQuit = func() { quits++ }
	require.NoError(t, w.Create("a", origin, size))
	w.SetQuitOnClose(true)

	// The close button reaches the surface without going through RequestClose.
	surf.Close()
	assert.Equal(t, []State{Terminating}, content.unmountIn)
	assert.Equal(t, Destroyed, w.State())
	assert.Equal(t, 1, quits)

	w.RequestClose()
	assert.Equal(t, 1, surf.Closes(), "a destroyed window ignores later requests")
}

func TestRequestCloseBeforeCreate(t *testing.T) {
	surf := NewFakeSurface()
	w := New(surf, project.New("data"), nil)
	w.RequestClose()
	assert.Equal(t, Uncreated, w.State())
	assert.Zero(t, surf.Closes())
}

func TestDisableClose(t *testing.T) {
	surf := NewFakeSurface()
	w := New(surf, project.New("data"), nil)
	assert.ErrorIs(t, w.DisableClose(), ErrNotLive)

	require.NoError(t, w.Create("a", origin, size))
	require.NoError(t, w.DisableClose())
	assert.False(t, surf.CloseEnabled())

	w.RequestClose()
	assert.Equal(t, Terminating, w.State(), "close is ignored while disabled")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "live", Live.String())
	assert.Equal(t, "State(9)", State(9).String())
}
