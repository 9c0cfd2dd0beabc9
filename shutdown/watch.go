package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

// Watch calls fn once on the first termination signal. stop unregisters the
// handler; fn is not called after stop returns.
func Watch(fn func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	Notify(ch)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ch:
			fn()
		case <-done:
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			wg.Wait()
		})
	}
}
