// Package timer contains the domain logic of the countdown screen: the Timer
// aggregate and the Controller state machine that owns it.
//
// Maintenance notes:
//   - The Controller is the only mutator of Timer. Every exported method takes
//     mu for its whole transition, so intents and ticks never interleave.
//   - Exactly one Ticker is alive while running. It is armed by startLocked and
//     released by stopLocked; every arm and every release bumps generation, and
//     a tick carrying an older generation is dropped. Keep that pairing when
//     adding new transitions out of the running state.
//   - Cue playback and subscriber delivery must never block a transition. Cues
//     are played after mu is released and events use non-blocking sends.
package timer

import (
	"errors"
	"log"
	"sync"
	"time"
)

// ErrInvalidDuration is returned by CommitEdit when the drafts add up to zero or less.
var ErrInvalidDuration = errors.New("enter a valid time greater than 0")

// Cue identifies an audio cue requested by the controller.
type Cue int

const (
	CueWarning Cue = iota
	CueFinished
)

func (c Cue) String() string {
	switch c {
	case CueWarning:
		return "warning"
	case CueFinished:
		return "finished"
	}
	return "unknown"
}

// CuePlayer plays audio cues. Play must not block on playback; its errors are
// logged by the controller and otherwise ignored.
type CuePlayer interface {
	Play(Cue) error
}

// Field selects one of the two edit drafts.
type Field int

const (
	FieldMinutes Field = iota
	FieldSeconds
)

// State is the coarse state of the controller, derived from the Timer flags.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateEditing:
		return "editing"
	}
	return "unknown"
}

// Timer is the countdown aggregate.
type Timer struct {
	RemainingSeconds int
	InitialSeconds   int
	IsRunning        bool
	IsEditing        bool
	WarningFired     bool

	// drafts are only meaningful while IsEditing
	DraftMinutes string
	DraftSeconds string
}

// Snapshot is a consistent copy of the timer plus derived fields for rendering.
type Snapshot struct {
	Timer
	State            State
	IsWarningDisplay bool
}

// Controller owns a Timer, drives its tick source and requests audio cues.
type Controller struct {
	mu               sync.Mutex
	timer            Timer
	warningThreshold int
	tickInterval     time.Duration

	player     CuePlayer
	clock      Clock
	ticker     Ticker
	generation uint64

	events []chan Event
	closed bool
}

// New creates a stopped controller with InitialSeconds from cfg. Non-positive
// durations and thresholds fall back to DefaultConfig. A nil clock means
// SystemClock; a nil player disables cues.
func New(cfg Config, player CuePlayer, clock Clock) *Controller {
	defaults := DefaultConfig()
	if cfg.InitialSeconds <= 0 {
		cfg.InitialSeconds = defaults.InitialSeconds
	}
	if cfg.WarningThreshold <= 0 {
		cfg.WarningThreshold = defaults.WarningThreshold
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaults.TickInterval
	}
	if clock == nil {
		clock = SystemClock
	}

	return &Controller{
		timer: Timer{
			RemainingSeconds: cfg.InitialSeconds,
			InitialSeconds:   cfg.InitialSeconds,
		},
		warningThreshold: cfg.WarningThreshold,
		tickInterval:     cfg.TickInterval,
		player:           player,
		clock:            clock,
	}
}

// Subscribe registers a new observer channel.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch
	}
	c.events = append(c.events, ch)
	return ch
}

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Toggle starts a stopped timer or pauses a running one. It does nothing while editing.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.timer.IsEditing {
		return
	}

	if c.timer.IsRunning {
		c.stopLocked()
	} else {
		c.timer.WarningFired = false
		c.startLocked()
	}
	c.emitChangedLocked()
}

// Reset stops the timer and restores the initial duration.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.stopLocked()
	c.timer.RemainingSeconds = c.timer.InitialSeconds
	c.timer.WarningFired = false
	c.emitChangedLocked()
}

// BeginEdit stops the timer and seeds the drafts from the remaining time.
func (c *Controller) BeginEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.stopLocked()
	c.timer.IsEditing = true
	c.timer.DraftMinutes, c.timer.DraftSeconds = SplitDraft(c.timer.RemainingSeconds)
	c.emitChangedLocked()
}

// UpdateDraft stores text verbatim in the selected draft.
func (c *Controller) UpdateDraft(field Field, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	switch field {
	case FieldMinutes:
		c.timer.DraftMinutes = text
	case FieldSeconds:
		c.timer.DraftSeconds = text
	default:
		return
	}
	c.emitChangedLocked()
}

// CommitEdit applies the drafts as the new duration. It returns
// ErrInvalidDuration and stays in edit mode when they add up to zero or less.
func (c *Controller) CommitEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.timer.IsEditing {
		return nil
	}

	total := DraftTotal(c.timer.DraftMinutes, c.timer.DraftSeconds)
	if total <= 0 {
		return ErrInvalidDuration
	}

	c.timer.InitialSeconds = total
	c.timer.RemainingSeconds = total
	c.timer.IsEditing = false
	c.emitChangedLocked()
	return nil
}

// CancelEdit leaves edit mode and discards the drafts.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.timer.IsEditing {
		return
	}

	c.timer.IsEditing = false
	c.emitChangedLocked()
}

// Tick advances a running countdown by one second.
func (c *Controller) Tick() {
	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()
	c.tick(generation)
}

// Close stops the tick source and closes all observers. The controller ignores
// every call afterwards except Snapshot.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopLocked()
	events := c.events
	c.events = nil
	c.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (c *Controller) tick(generation uint64) {
	c.mu.Lock()
	if c.closed || generation != c.generation || !c.timer.IsRunning {
		c.mu.Unlock()
		return
	}
	cues := c.advanceLocked()
	c.mu.Unlock()

	c.playCues(cues)
}

// advanceLocked runs the warning check and then the terminal check against the
// same pre-decrement value. The warning window is judged on the value this tick
// lands on: with a threshold of 10 the cue plays on the 11 -> 10 tick, together
// with the red display, and a run reaching 0 has always warned. Keep this check
// before the terminal check and keep the -1; testing pre <= threshold instead
// shifts the cue to the 10 -> 9 tick and breaks TestWarningFiresAfter290Ticks.
func (c *Controller) advanceLocked() []Cue {
	var cues []Cue
	remaining := c.timer.RemainingSeconds

	if remaining > 0 && remaining-1 <= c.warningThreshold && !c.timer.WarningFired {
		c.timer.WarningFired = true
		cues = append(cues, CueWarning)
	}

	if remaining <= 1 {
		c.timer.RemainingSeconds = 0
		c.stopLocked()
		// a run started at zero ends silently
		if remaining == 1 {
			cues = append(cues, CueFinished)
		}
	} else {
		c.timer.RemainingSeconds = remaining - 1
	}

	snap := c.snapshotLocked()
	c.emitLocked(Event{Type: EventChanged, Snapshot: snap})
	for _, cue := range cues {
		switch cue {
		case CueWarning:
			c.emitLocked(Event{Type: EventWarning, Snapshot: snap})
		case CueFinished:
			c.emitLocked(Event{Type: EventFinished, Snapshot: snap})
		}
	}
	return cues
}

func (c *Controller) startLocked() {
	c.releaseTickerLocked()
	c.timer.IsRunning = true
	generation := c.generation
	c.ticker = c.clock.Every(c.tickInterval, func() {
		c.tick(generation)
	})
}

func (c *Controller) stopLocked() {
	c.timer.IsRunning = false
	c.releaseTickerLocked()
}

func (c *Controller) releaseTickerLocked() {
	c.generation++
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *Controller) playCues(cues []Cue) {
	if c.player == nil {
		return
	}
	for _, cue := range cues {
		if err := c.player.Play(cue); err != nil {
			log.Printf("Failed to play %s cue: %v", cue, err)
		}
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	state := StateStopped
	switch {
	case c.timer.IsEditing:
		state = StateEditing
	case c.timer.IsRunning:
		state = StateRunning
	}
	return Snapshot{
		Timer:            c.timer,
		State:            state,
		IsWarningDisplay: c.timer.RemainingSeconds <= c.warningThreshold && c.timer.RemainingSeconds > 0,
	}
}

func (c *Controller) emitChangedLocked() {
	c.emitLocked(Event{Type: EventChanged, Snapshot: c.snapshotLocked()})
}

func (c *Controller) emitLocked(event Event) {
	for _, ch := range c.events {
		select {
		case ch <- event:
		default:
		}
	}
}
