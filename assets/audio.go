package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/automoto/lastpenguin/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// bytesPerFrame is one 16-bit little-endian stereo sample.
const bytesPerFrame = 4

// SynthesizeTone renders t as 16-bit stereo PCM at sampleRate. The
// frequency sweeps linearly from Frequency to EndFreq and the amplitude
// fades out over the tone.
func SynthesizeTone(t config.Tone, sampleRate int) []byte {
	frames := sampleRate * t.Duration / 1000
	if frames <= 0 {
		return nil
	}

	buf := make([]byte, frames*bytesPerFrame)
	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := t.Frequency + (t.EndFreq-t.Frequency)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 0.3 * (1 - progress)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(v))
	}
	return buf
}

// musicNotes is the looping background phrase, in Hz.
var musicNotes = []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}

// SynthesizeMusic renders the background phrase once.
func SynthesizeMusic(sampleRate int) []byte {
	var out []byte
	for _, note := range musicNotes {
		out = append(out, SynthesizeTone(config.Tone{Frequency: note, EndFreq: note, Duration: 400}, sampleRate)...)
	}
	return out
}

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache     map[config.EventID][]byte
	abilityCache map[config.AbilityID][]byte
	context      *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache:     make(map[config.EventID][]byte),
		abilityCache: make(map[config.AbilityID][]byte),
		context:      ctx,
	}
}

// PreloadAll renders every configured tone so the first play has no lag.
func (l *AudioLoader) PreloadAll() {
	for id := range config.Sound.Tones {
		l.pcmFor(config.Event{ID: id})
	}
	for id := range config.Sound.AbilityTones {
		l.pcmFor(config.Event{ID: config.EventAbilityUsed, Ability: id})
	}
}

// LoadSFX returns a new player for the sound of ev.
func (l *AudioLoader) LoadSFX(ev config.Event) (*audio.Player, error) {
	pcm := l.pcmFor(ev)
	if pcm == nil {
		return nil, fmt.Errorf("no sound for event %s", ev.ID)
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// LoadMusic returns a looping player for the background phrase.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	pcm := SynthesizeMusic(l.context.SampleRate())
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) pcmFor(ev config.Event) []byte {
	rate := l.context.SampleRate()
	if ev.ID == config.EventAbilityUsed {
		if pcm, ok := l.abilityCache[ev.Ability]; ok {
			return pcm
		}
		tone, ok := config.Sound.AbilityTones[ev.Ability]
		if !ok {
			return nil
		}
		pcm := SynthesizeTone(tone, rate)
		l.abilityCache[ev.Ability] = pcm
		return pcm
	}

	if pcm, ok := l.sfxCache[ev.ID]; ok {
		return pcm
	}
	tone, ok := config.Sound.Tones[ev.ID]
	if !ok {
		return nil
	}
	pcm := SynthesizeTone(tone, rate)
	l.sfxCache[ev.ID] = pcm
	return pcm
}
