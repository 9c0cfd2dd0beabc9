//go:build !windows

package msgloop

import "errors"

var errNoQueue = errors.New("msgloop: native message queue not supported on this platform")

type nativeQueue struct{}

func Native() Queue { return nativeQueue{} }

func (nativeQueue) Next() (Event, bool) { return Event{}, false }
func (nativeQueue) Translate(*Event)    {}
func (nativeQueue) Dispatch(*Event)     {}
func (nativeQueue) Err() error          { return errNoQueue }

func PostQuit(int) {}
