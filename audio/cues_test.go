package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func newTestPlayer(initErr error) (*CuePlayer, *int) {
	played := 0
	p := NewCuePlayer()
	p.initSpeaker = func(beep.SampleRate, int) error { return initErr }
	p.play = func(...beep.Streamer) { played++ }
	p.lock = func() {}
	p.unlock = func() {}
	return p, &played
}

func TestCuePlayer_SilentUntilInitialized(t *testing.T) {
	p, _ := newTestPlayer(nil)

	p.PlayPickup()
	p.PlayCrash()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers before init", p.mixer.Len())
	}
}

func TestCuePlayer_InitFailureStaysSilent(t *testing.T) {
	p, played := newTestPlayer(errors.New("no audio device"))

	if err := p.Initialize(); err == nil {
		t.Fatal("expected init error")
	}
	p.PlayPickup()
	if p.mixer.Len() != 0 || *played != 0 {
		t.Error("failed init must not play anything")
	}
}

func TestCuePlayer_PlaysCues(t *testing.T) {
	p, played := newTestPlayer(nil)

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := p.Initialize(); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if *played != 1 {
		t.Errorf("mixer started %d times, want 1", *played)
	}

	p.PlayPickup()
	p.PlayCrash()
	if p.mixer.Len() != 2 {
		t.Errorf("mixer holds %d streamers, want 2", p.mixer.Len())
	}

	p.Close()
	if p.mixer.Len() != 0 {
		t.Error("Close should clear pending cues")
	}
	p.PlayPickup()
	if p.mixer.Len() != 0 {
		t.Error("closed player must be silent")
	}
}

func TestCuePlayer_CloseLetsCrashFinish(t *testing.T) {
	p, _ := newTestPlayer(nil)
	var device sync.Mutex
	p.lock = device.Lock
	p.unlock = device.Unlock

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p.PlayCrash()

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while the crash cue was still playing")
	case <-time.After(50 * time.Millisecond):
	}

	// Drive the mixer the way the speaker does
	buf := make([][2]float64, 512)
	streamed := 0
	for i := 0; i < 100 && streamed < sampleRate.N(crashDuration)+len(buf); i++ {
		device.Lock()
		p.mixer.Stream(buf)
		device.Unlock()
		streamed += len(buf)
	}

	select {
	case <-closed:
	case <-time.After(drainTimeout / 2):
		t.Fatal("Close did not return once the crash cue finished")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers after Close", p.mixer.Len())
	}
}

func TestCuePlayer_CloseIsBounded(t *testing.T) {
	p, _ := newTestPlayer(nil)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p.PlayCrash()

	start := time.Now()
	p.Close()
	if elapsed := time.Since(start); elapsed > drainTimeout+time.Second {
		t.Errorf("Close took %v with a stalled speaker", elapsed)
	}
	if p.mixer.Len() != 0 {
		t.Error("Close should clear the stalled cue")
	}
}

func TestCrashGenerator_DecaysWithinRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	gen := NewCrashGenerator(rate, 110)

	samples := make([][2]float64, rate.N(crashDuration))
	n, ok := gen.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = %d, %v", n, ok)
	}

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want silent attack start", samples[0][0])
	}
	peakEarly, peakLate := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d not mono", i)
		}
		if v < 0 {
			v = -v
		}
		if i < n/4 {
			peakEarly = max(peakEarly, v)
		} else if i > 3*n/4 {
			peakLate = max(peakLate, v)
		}
	}
	if peakLate >= peakEarly {
		t.Errorf("crash does not decay: early peak %f, late peak %f", peakEarly, peakLate)
	}
	if gen.Err() != nil {
		t.Errorf("unexpected error: %v", gen.Err())
	}
}
