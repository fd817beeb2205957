// Package main contains the application wiring and the AppManager which
// coordinates the countdown controller, audio and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: UI intents go through a single command-loop goroutine
//     (see `commandLoop`) so button handlers never run controller transitions
//     on the fyne goroutine. Ticks arrive on the clock's goroutine and call the
//     controller directly; the controller's own mutex keeps both paths atomic.
//   - `cmdCh` is a buffered channel used to enqueue commands from the UI. The
//     current implementation drops commands when the channel stays full for a
//     short timeout to avoid blocking the UI. Draft updates are enqueued per
//     keystroke, so keep the buffer comfortably larger than a burst of typing.
//   - Controller events are forwarded to the screen by `forwardEvents`, which
//     exits when the controller is closed in `Shutdown`.
package main

import (
	"Countdown/control"
	"Countdown/timer"
	"context"
	"log"
	"time"
)

const (
	commandBuffer  = 256
	eventBuffer    = 64
	enqueueTimeout = 150 * time.Millisecond
)

// View is what the AppManager pushes controller events into.
type View interface {
	Update(timer.Snapshot)
	NotifyFinished()
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	controller *timer.Controller
	events     <-chan timer.Event
	cmdCh      chan control.Command
	cmdCtx     context.Context
	cmdCancel  context.CancelFunc
}

// NewAppManager creates a new application manager around a fresh controller.
func NewAppManager(cfg timer.Config, player timer.CuePlayer, clock timer.Clock) *AppManager {
	a := &AppManager{controller: timer.New(cfg, player, clock)}
	a.events = a.controller.Subscribe(eventBuffer)

	a.cmdCh = make(chan control.Command, commandBuffer)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(enqueueTimeout):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

// Snapshot returns the controller's current state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.controller.Snapshot()
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			err := cmd.Apply(a.controller)
			if err != nil {
				log.Printf("Command %s rejected: %v", cmd.Type, err)
			}
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- err:
				default:
				}
			}
		}
	}
}

// forwardEvents pushes controller events into view until the controller is closed.
func (a *AppManager) forwardEvents(view View) {
	for event := range a.events {
		switch event.Type {
		case timer.EventChanged:
			view.Update(event.Snapshot)
		case timer.EventWarning:
			log.Printf("Warning cue at %s", timer.FormatTime(event.Snapshot.RemainingSeconds))
		case timer.EventFinished:
			log.Printf("Countdown finished")
			view.NotifyFinished()
		}
	}
}

// Shutdown releases the tick source and stops the command loop. It is the
// screen's unmount.
func (a *AppManager) Shutdown() {
	a.controller.Close()
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
