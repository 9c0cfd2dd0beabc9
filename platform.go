package main

import (
	"runner/cmdline"
	"runner/comscope"
	"runner/console"
	"runner/geometry"
	"runner/msgloop"
	"runner/window"
)

// platform is everything run needs from the OS and the embedded runtime.
type platform struct {
	console     console.System
	commandLine func() string
	workArea    func() (geometry.Rect, error)
	com         comscope.Runtime
	surface     window.Surface
	content     window.Content
	queue       msgloop.Queue
}

func nativePlatform() platform {
	return platform{
		console:     console.Native(),
		commandLine: cmdline.Raw,
		workArea:    geometry.WorkArea,
		com:         comscope.OLE{},
		surface:     window.NewNative(),
		queue:       msgloop.Native(),
	}
}
