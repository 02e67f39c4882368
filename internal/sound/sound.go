//go:build !ci

// Package sound plays short table cues: shuffling, card plays, applause.
// Cues are loaded from assets/sounds by base name; a missing file or a
// failed speaker init silently disables that cue so the game keeps working
// on machines without audio.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

type Manager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{buffers: make(map[string]*beep.Buffer)}
}

func (m *Manager) Init() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	m.enabled = true
	return m.loadCues(sampleRate)
}

func (m *Manager) loadCues(sampleRate beep.SampleRate) error {
	cueDir := "assets/sounds"
	files, err := os.ReadDir(cueDir)
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
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		// Skip unreadable or undecodable files; the cue just stays silent.
		_ = m.loadCue(cueDir, name, strings.TrimSuffix(name, filepath.Ext(name)), ext, sampleRate)
	}
	return nil
}

func (m *Manager) loadCue(cueDir, name, baseName, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(cueDir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	m.buffers[baseName] = buffer
	return nil
}

// Play starts a cue by base name. Unknown cues are ignored.
func (m *Manager) Play(name string) {
	if !m.enabled {
		return
	}
	buffer, ok := m.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	m.enabled = false
}
