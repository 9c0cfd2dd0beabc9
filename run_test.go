package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runner/config"
	"runner/geometry"
	"runner/msgloop"
	"runner/project"
	"runner/window"
)

const wmClose = 0x0010

type noConsole struct{}

func (noConsole) AttachParent() error   { return errors.New("no parent console") }
func (noConsole) DebuggerPresent() bool { return false }
func (noConsole) Allocate() error       { return errors.New("not allowed") }

type countingCOM struct {
	inits, uninits int
}

func (c *countingCOM) Initialize() error { c.inits++; return nil }
func (c *countingCOM) Uninitialize()     { c.uninits++ }

type recordingContent struct {
	args []string
}

func (c *recordingContent) Mount(_ uintptr, p *project.Project, _ geometry.Size) error {
	c.args = p.EntrypointArguments()
	return nil
}
func (c *recordingContent) Resize(geometry.Size) {}
func (c *recordingContent) Unmount()             {}

type harness struct {
	cfg     config.Config
	p       platform
	surface *window.FakeSurface
	queue   *msgloop.FakeQueue
	com     *countingCOM
	content *recordingContent
}

func newHarness(t *testing.T, events ...msgloop.Event) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.LogDir = t.TempDir()

	h := &harness{
		cfg:     cfg,
		surface: window.NewFakeSurface(),
		queue:   msgloop.NewFake(events...),
		com:     &countingCOM{},
		content: &recordingContent{},
	}
	h.surface.OnQuit = h.queue.PostQuit
	h.queue.OnDispatch = func(ev msgloop.Event) {
		if ev.Message == wmClose {
			h.surface.Close()
		}
	}
	h.p = platform{
		console:     noConsole{},
		commandLine: func() string { return `"C:\apps\httpd\runner.exe" --port 8080` },
		workArea:    func() (geometry.Rect, error) { return geometry.Rect{Right: 1600, Bottom: 900}, nil },
		com:         h.com,
		surface:     h.surface,
		content:     h.content,
		queue:       h.queue,
	}
	return h
}

func TestRunUserClose(t *testing.T) {
	h := newHarness(t, msgloop.Event{Message: 0x0200}, msgloop.Event{Message: 0x0201}, msgloop.Event{Message: wmClose})

	code := run(h.cfg, h.p)
	assert.Equal(t, exitSuccess, code)
	assert.Len(t, h.queue.Dispatched(), 3)
	assert.Equal(t, 1, h.com.inits)
	assert.Equal(t, 1, h.com.uninits)
	assert.True(t, h.surface.QuitOnClose())
}

func TestRunExternalQuit(t *testing.T) {
	events := make([]msgloop.Event, 50)
	for i := range events {
		events[i] = msgloop.Event{Message: 0x000F}
	}
	h := newHarness(t, events...)
	h.queue.PostQuit()

	code := run(h.cfg, h.p)
	assert.Equal(t, exitSuccess, code)
	assert.Len(t, h.queue.Dispatched(), 50)
	assert.Equal(t, 1, h.com.uninits, "COM released exactly once")
}

func TestRunPlacementAndTitle(t *testing.T) {
	h := newHarness(t)
	h.queue.PostQuit()

	require.Equal(t, exitSuccess, run(h.cfg, h.p))
	assert.Equal(t, "httpd Settings", h.surface.Title())
	assert.Equal(t, geometry.Placement{
		Origin: geometry.Point{X: 200, Y: 24},
		Size:   geometry.Size{Width: 960, Height: 852},
	}, h.surface.Placement())
}

func TestRunForwardsArguments(t *testing.T) {
	h := newHarness(t)
	h.queue.PostQuit()

	require.Equal(t, exitSuccess, run(h.cfg, h.p))
	assert.Equal(t, []string{"--port", "8080"}, h.content.args)
}

func TestRunCreateFailure(t *testing.T) {
	h := newHarness(t, msgloop.Event{Message: 0x0200})
	h.surface.CreateErr = errors.New("CreateWindowEx: class not found")
	h.queue.PostQuit()

	code := run(h.cfg, h.p)
	assert.NotEqual(t, exitSuccess, code)
	assert.Empty(t, h.queue.Dispatched(), "loop must not run after a failed create")
	assert.Equal(t, 1, h.com.uninits, "COM released on the failure path")

	data, err := os.ReadFile(filepath.Join(h.cfg.LogDir, "diagnostics_log.txt"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "class not found"), "log: %q", data)
}

func TestRunWorkAreaFailure(t *testing.T) {
	h := newHarness(t)
	h.p.workArea = func() (geometry.Rect, error) { return geometry.Rect{}, geometry.ErrUnsupported }

	assert.Equal(t, exitFailure, run(h.cfg, h.p))
	assert.Empty(t, h.surface.Title(), "window must not be created")
	assert.Equal(t, 1, h.com.uninits)
}

func TestRunRetrievalFailure(t *testing.T) {
	h := newHarness(t)
	h.queue.Fail(errors.New("GetMessage: invalid handle"))

	assert.Equal(t, exitSuccess, run(h.cfg, h.p), "a retrieval failure still ends the loop normally")
	assert.Equal(t, 1, h.com.uninits)

	data, err := os.ReadFile(filepath.Join(h.cfg.LogDir, "diagnostics_log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "invalid handle")
}

func TestRunWithoutLogDir(t *testing.T) {
	h := newHarness(t)
	h.cfg.LogDir = ""
	h.queue.PostQuit()

	assert.Equal(t, exitSuccess, run(h.cfg, h.p))
}
