package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	pickupFreq     = 880.0
	pickupDuration = 60 * time.Millisecond
	crashFreq      = 110.0
	crashDuration  = 400 * time.Millisecond

	bufferDuration = 100 * time.Millisecond
	// Close waits at most this long for a crash cue to drain
	drainTimeout = crashDuration + 2*bufferDuration
)

// CuePlayer plays short gameplay cues through a shared mixer
// Every method is a no-op until Initialize succeeds
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	// Closed by the crash cue once it has been fully streamed
	crashDone chan struct{}

	// Speaker hooks, replaced in tests
	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
	lock        func()
	unlock      func()
}

// NewCuePlayer creates a player bound to the system speaker
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
	}
}

// Initialize opens the speaker. Failure leaves the player silent
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := p.initSpeaker(sampleRate, sampleRate.N(bufferDuration)); err != nil {
		return err
	}

	p.play(p.mixer)
	p.initialized = true
	return nil
}

// Close lets a playing crash cue finish, bounded by drainTimeout, then silences the rest
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	if p.crashDone != nil {
		select {
		case <-p.crashDone:
		case <-time.After(drainTimeout):
		}
		p.crashDone = nil
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.initialized = false
}

// PlayPickup plays a short high blip
func (p *CuePlayer) PlayPickup() {
	tone, err := generators.SineTone(sampleRate, pickupFreq)
	if err != nil {
		return
	}
	p.add(&effects.Gain{
		Streamer: beep.Take(sampleRate.N(pickupDuration), tone),
		Gain:     -0.7,
	})
}

// PlayCrash plays a low decaying buzz. Close waits for it
func (p *CuePlayer) PlayCrash() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	done := make(chan struct{})
	p.crashDone = done
	p.addLocked(beep.Seq(
		beep.Take(sampleRate.N(crashDuration), NewCrashGenerator(sampleRate, crashFreq)),
		beep.Callback(func() { close(done) }),
	))
}

func (p *CuePlayer) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.addLocked(s)
}

// addLocked requires p.mu
func (p *CuePlayer) addLocked(s beep.Streamer) {
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// CrashGenerator generates a harmonic buzz under an exponential decay
type CrashGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewCrashGenerator creates a crash sound generator
func NewCrashGenerator(sr beep.SampleRate, freq float64) *CrashGenerator {
	return &CrashGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms attack, then decay
		attack := math.Min(t/0.02, 1.0)
		sample *= attack * math.Exp(-t*6) * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
