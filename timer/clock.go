package timer

import (
	"sync"
	"time"
)

// Ticker is a running periodic callback that can be stopped.
type Ticker interface {
	Stop()
}

// Clock creates periodic tick sources. Tests replace it with a manual clock.
type Clock interface {
	Every(d time.Duration, fn func()) Ticker
}

// SystemClock is the default Clock backed by time.Ticker.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Every(d time.Duration, fn func()) Ticker {
	t := &systemTicker{done: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return t
}

type systemTicker struct {
	done chan struct{}
	once sync.Once
}

func (t *systemTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}
