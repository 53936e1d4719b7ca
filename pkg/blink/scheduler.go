package blink

import (
	"sync"
	"time"
)

// Scheduler arranges for fn to be called every d until the returned cancel
// function is invoked. Calls to fn must not overlap.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func()) (cancel func())

// Every calls f(d, fn).
func (f SchedulerFunc) Every(d time.Duration, fn func()) func() {
	return f(d, fn)
}

// TickerScheduler runs each schedule on its own goroutine driven by a
// time.Ticker. Ticks missed while fn runs are dropped, not replayed.
type TickerScheduler struct{}

// Every starts the ticker goroutine. The returned cancel is safe to call
// more than once and returns after the goroutine has exited.
func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A tick and a cancel may be ready together.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}
