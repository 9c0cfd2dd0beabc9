package main

import (
	"fmt"
	"os"

	"runner/cmdline"
	"runner/comscope"
	"runner/config"
	"runner/console"
	"runner/geometry"
	"runner/log"
	"runner/msgloop"
	"runner/project"
	"runner/shutdown"
	"runner/window"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// run is the whole life of the process: console, logging, COM, project,
// placement, window, message loop. Everything acquired is released by defer
// in reverse order, on the failure path as well.
func run(cfg config.Config, p platform) int {
	mode := console.Attach(p.console)

	if cfg.LogDir != "" {
		log.SetDir(cfg.LogDir)
		if err := log.Init(log.Options{Console: mode.Attached()}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
		}
		defer log.Close()
	}
	log.Startup(version, mode.String())

	scope, err := comscope.Acquire(p.com)
	if err != nil {
		log.Warnf("COM initialization failed: %v", err)
	}
	defer scope.Release()

	proj := project.New(cfg.DataDir)
	args := cmdline.Forward(p.commandLine())
	if err := proj.SetEntrypointArguments(args); err != nil {
		log.Errorf("entrypoint arguments: %v", err)
	}
	log.Arguments(len(args))

	wa, err := p.workArea()
	if err != nil {
		log.Errorf("work area: %v", err)
		return exitFailure
	}
	placement := geometry.ComputeWith(wa, cfg.Ratios)
	log.Placement(log.PlacementData{
		Left: wa.Left, Top: wa.Top, Right: wa.Right, Bottom: wa.Bottom,
		X: placement.Origin.X, Y: placement.Origin.Y,
		Width: placement.Size.Width, Height: placement.Size.Height,
	})

	win := window.New(p.surface, proj, p.content)
	if err := win.Create(cfg.Title, placement.Origin, placement.Size); err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	log.WindowCreated(cfg.Title, win.Handle())
	win.SetQuitOnClose(true)

	stop := shutdown.Watch(win.RequestClose)
	defer stop()

	n, err := msgloop.Run(p.queue)
	log.LoopExit(n)
	if err != nil {
		// The loop has ended either way; only window creation fails the run.
		log.Errorf("message loop: %v", err)
	}
	return exitSuccess
}
