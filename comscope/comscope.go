// Package comscope holds the process-wide COM initialization that plugins
// and the embedded runtime rely on.
package comscope

import (
	"errors"
	"sync"

	ole "github.com/go-ole/go-ole"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// the calling thread. The call still has to be balanced.
const sFalse = 0x00000001

type Runtime interface {
	Initialize() error
	Uninitialize()
}

// OLE initializes a single-threaded apartment on the calling thread.
type OLE struct{}

func (OLE) Initialize() error {
	return ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
}

func (OLE) Uninitialize() {
	ole.CoUninitialize()
}

// Scope is one acquisition of a Runtime. Release undoes it at most once.
type Scope struct {
	rt       Runtime
	acquired bool
	once     sync.Once
}

// Acquire initializes rt. On failure the returned Scope is still safe to
// Release, which then does nothing.
func Acquire(rt Runtime) (*Scope, error) {
	s := &Scope{rt: rt}
	err := rt.Initialize()
	var oleErr *ole.OleError
	if err != nil && errors.As(err, &oleErr) && oleErr.Code() == sFalse {
		err = nil
	}
	if err != nil {
		return s, err
	}
	s.acquired = true
	return s, nil
}

func (s *Scope) Acquired() bool { return s.acquired }

func (s *Scope) Release() {
	s.once.Do(func() {
		if s.acquired {
			s.rt.Uninitialize()
		}
	})
}
