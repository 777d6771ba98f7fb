//go:build !ci

package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	soundDir   = "assets/sounds"
	sampleRate = beep.SampleRate(44100)
)

var stereo = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundManager plays table cues through the system speaker.
type SoundManager struct {
	mu      sync.RWMutex
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{buffers: make(map[string]*beep.Buffer)}
}

// Init opens the speaker, loads assets/sounds and synthesizes any cue without a file.
func (sm *SoundManager) Init() error {
	// Small buffer keeps cue latency low
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	if err := sm.loadSoundFiles(); err != nil {
		return err
	}
	for _, c := range Cues() {
		if sm.has(string(c)) {
			continue
		}
		buf, err := synthesize(cueTones[c])
		if err != nil {
			return fmt.Errorf("failed to synthesize cue %s: %w", c, err)
		}
		sm.store(string(c), buf)
	}

	sm.mu.Lock()
	sm.enabled = true
	sm.mu.Unlock()
	return nil
}

func (sm *SoundManager) loadSoundFiles() error {
	files, err := os.ReadDir(soundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		buf, err := decodeFile(filepath.Join(soundDir, file.Name()), ext)
		if err != nil {
			// A broken file falls back to the synthesized tone
			continue
		}
		sm.store(strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())), buf)
	}
	return nil
}

func decodeFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(stereo)
	buf.Append(s)
	return buf, nil
}

// synthesize renders a sequence of sine tones into a buffer.
func synthesize(tones []tone) (*beep.Buffer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		n := sampleRate.N(time.Duration(t.ms) * time.Millisecond)
		parts = append(parts, beep.Take(n, sine))
	}
	buf := beep.NewBuffer(stereo)
	buf.Append(beep.Seq(parts...))
	return buf, nil
}

func (sm *SoundManager) has(name string) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	_, ok := sm.buffers[name]
	return ok
}

func (sm *SoundManager) store(name string, buf *beep.Buffer) {
	sm.mu.Lock()
	sm.buffers[name] = buf
	sm.mu.Unlock()
}

// Play plays a loaded sound by name; unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.RLock()
	buffer, ok := sm.buffers[name]
	enabled := sm.enabled
	sm.mu.RUnlock()
	if !enabled || !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

// PlayCue plays the sound registered for a cue.
func (sm *SoundManager) PlayCue(c Cue) {
	sm.Play(string(c))
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	sm.enabled = false
	sm.mu.Unlock()
}
