package msgloop

import "sync"

// FakeQueue replays posted events, then reports quit or the error given
// to Fail. Next blocks while the queue is empty.
type FakeQueue struct {
	// OnDispatch runs after each dispatch, outside the queue lock.
	OnDispatch func(Event)

	mu         sync.Mutex
	cond       *sync.Cond
	events     []Event
	quit       bool
	err        error
	translated []Event
	dispatched []Event
}

func NewFake(events ...Event) *FakeQueue {
	f := &FakeQueue{events: events}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Post appends an event; it may be called from any goroutine.
func (f *FakeQueue) Post(ev Event) {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
	f.cond.Signal()
}

// PostQuit ends the stream after the events already queued.
func (f *FakeQueue) PostQuit() {
	f.mu.Lock()
	f.quit = true
	f.mu.Unlock()
	f.cond.Signal()
}

// Fail ends the stream with err after the events already queued.
func (f *FakeQueue) Fail(err error) {
	f.mu.Lock()
	f.err = err
	f.quit = true
	f.mu.Unlock()
	f.cond.Signal()
}

func (f *FakeQueue) Next() (Event, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for len(f.events) == 0 && !f.quit {
		f.cond.Wait()
	}
	if len(f.events) == 0 {
		return Event{}, false
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func (f *FakeQueue) Translate(ev *Event) {
	f.mu.Lock()
	f.translated = append(f.translated, *ev)
	f.mu.Unlock()
}

func (f *FakeQueue) Dispatch(ev *Event) {
	f.mu.Lock()
	f.dispatched = append(f.dispatched, *ev)
	hook := f.OnDispatch
	f.mu.Unlock()
	if hook != nil {
		hook(*ev)
	}
}

func (f *FakeQueue) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *FakeQueue) Dispatched() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.dispatched...)
}

func (f *FakeQueue) Translated() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.translated...)
}
