//go:build linux || windows

package main

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOnLockedThreadKeepsThread(t *testing.T) {
	var start, drifted, sibling uint64
	code := onLockedThread(func() int {
		start = threadID()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 1000 {
					runtime.Gosched()
				}
			}()
		}
		for range 100 {
			runtime.Gosched()
			time.Sleep(100 * time.Microsecond)
			if id := threadID(); id != start {
				drifted = id
			}
		}
		wg.Wait()

		// A goroutine started while this one blocks cannot borrow its thread.
		got := make(chan uint64)
		go func() { got <- threadID() }()
		sibling = <-got
		return exitSuccess
	})

	assert.Equal(t, exitSuccess, code)
	assert.Zero(t, drifted, "body moved off thread %d", start)
	assert.NotEqual(t, start, sibling)
}

func TestOnLockedThreadReturnsCode(t *testing.T) {
	assert.Equal(t, exitFailure, onLockedThread(func() int { return exitFailure }))
}
