// Package audio plays the countdown cues through the beep speaker.
package audio

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"
	"time"

	"Countdown/timer"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the rate the speaker is initialized with.
const SampleRate beep.SampleRate = 44100

const resampleQuality = 4

// Output is the sink cues are played into.
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// Player keeps one decoded buffer per cue. Replaying a cue cuts the previous
// instance of that cue off instead of overlapping it.
type Player struct {
	mu         sync.Mutex
	out        Output
	sampleRate beep.SampleRate
	enabled    bool
	buffers    map[timer.Cue]*beep.Buffer
	playing    map[timer.Cue]*beep.Ctrl
}

// New creates a player writing into out at the given sample rate. A nil out
// yields a disabled player whose Play calls are no-ops.
func New(out Output, sampleRate beep.SampleRate) *Player {
	return &Player{
		out:        out,
		sampleRate: sampleRate,
		enabled:    out != nil,
		buffers:    make(map[timer.Cue]*beep.Buffer),
		playing:    make(map[timer.Cue]*beep.Ctrl),
	}
}

// NewSpeaker initializes the system speaker and returns a player bound to it.
// If the speaker cannot be opened, audio is disabled.
func NewSpeaker() *Player {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return New(nil, SampleRate)
	}
	return New(speakerOutput{}, SampleRate)
}

// Load decodes the named file from fsys into the buffer of cue. The format is
// picked from the file extension.
func (p *Player) Load(cue timer.Cue, fsys fs.FS, name string) error {
	data, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open audio %s: %w", name, err)
	}
	defer data.Close()

	streamer, format, err := decode(name, data)
	if err != nil {
		return fmt.Errorf("decode audio %s: %w", name, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read audio %s: %w", name, err)
	}

	p.mu.Lock()
	p.buffers[cue] = buffer
	p.mu.Unlock()
	return nil
}

// LoadCues loads every cue file found under dir. Failures are logged and the
// cue stays silent.
func (p *Player) LoadCues(fsys fs.FS, dir string, files map[timer.Cue]string) {
	for cue, filename := range files {
		filepath := path.Join(dir, filename)
		if err := p.Load(cue, fsys, filepath); err != nil {
			log.Printf("Failed to load %s cue: %v", cue, err)
			continue
		}
		log.Printf("Loaded %s cue from %s", cue, filepath)
	}
}

// Play starts cue from the beginning without waiting for it to finish. A cue
// that was never loaded is skipped.
func (p *Player) Play(cue timer.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return nil
	}
	buffer, ok := p.buffers[cue]
	if !ok {
		log.Printf("Sound buffer not found for %s cue", cue)
		return nil
	}

	var s beep.Streamer = buffer.Streamer(0, buffer.Len())
	if rate := buffer.Format().SampleRate; rate != p.sampleRate {
		s = beep.Resample(resampleQuality, rate, p.sampleRate, s)
	}
	ctrl := &beep.Ctrl{Streamer: s}

	if prev, ok := p.playing[cue]; ok {
		p.out.Lock()
		prev.Streamer = nil
		p.out.Unlock()
	}
	p.playing[cue] = ctrl
	p.out.Play(ctrl)
	return nil
}

// Close stops every cue and releases the output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	p.out.Lock()
	for cue, ctrl := range p.playing {
		ctrl.Streamer = nil
		delete(p.playing, cue)
	}
	p.out.Unlock()
	p.out.Close()
	p.enabled = false
}

func decode(name string, data io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		return wav.Decode(data)
	case ".mp3":
		return mp3.Decode(data)
	case ".ogg":
		return vorbis.Decode(data)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}
}
