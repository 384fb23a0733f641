package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// Output format shared with the player: interleaved stereo float32 LE.
const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8
)

// Effect identifies a match sound.
type Effect int

const (
	EffectCrash Effect = iota
	EffectRoundWin
	EffectRoundDraw
	EffectPause
	effectCount
)

func (e Effect) String() string {
	switch e {
	case EffectCrash:
		return "crash"
	case EffectRoundWin:
		return "round-win"
	case EffectRoundDraw:
		return "round-draw"
	case EffectPause:
		return "pause"
	}
	return "unknown"
}

// Streamer builds the beep graph of an effect. It returns nil for unknown
// effects.
func Streamer(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectCrash:
		return crash(rate)
	case EffectRoundWin:
		return roundWin(rate)
	case EffectRoundDraw:
		return roundDraw(rate)
	case EffectPause:
		return pause(rate)
	}
	return nil
}

// crash is a noise burst over a low saw.
func crash(rate beep.SampleRate) beep.Streamer {
	d := 220 * time.Millisecond
	noise := newEnvelope(newOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 180*time.Millisecond, rate)
	body := tone(90, d, WaveSaw, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(body, 0.4)), 0.8)
}

// roundWin is a rising major arpeggio.
func roundWin(rate beep.SampleRate) beep.Streamer {
	n := 90 * time.Millisecond
	return newVolume(beep.Seq(
		sine(523.25, n, rate),
		sine(659.25, n, rate),
		sine(783.99, 2*n, rate),
	), 0.6)
}

// roundDraw is two falling square notes.
func roundDraw(rate beep.SampleRate) beep.Streamer {
	n := 140 * time.Millisecond
	return newVolume(beep.Seq(
		tone(392, n, WaveSquare, rate),
		tone(261.63, n, WaveSquare, rate),
	), 0.35)
}

func pause(rate beep.SampleRate) beep.Streamer {
	return newVolume(sine(660, 60*time.Millisecond, rate), 0.5)
}

// Render drains s into interleaved stereo float32 LE bytes, clamped to
// [-1, 1].
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = putStereoF32(out, buf[i][0], buf[i][1])
		}
		if !ok {
			return out
		}
	}
}

func putStereoF32(buf []byte, left, right float64) []byte {
	lv := math.Float32bits(float32(clamp(left)))
	rv := math.Float32bits(float32(clamp(right)))
	return append(buf,
		byte(lv), byte(lv>>8), byte(lv>>16), byte(lv>>24),
		byte(rv), byte(rv>>8), byte(rv>>16), byte(rv>>24),
	)
}

func clamp(x float64) float64 {
	return max(-1, min(1, x))
}

type cacheKey struct {
	effect Effect
	rate   int
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey][]byte{}
)

// Synthesize returns the rendered samples of e at sampleRate. Results are
// cached and shared; callers must not modify them.
func Synthesize(e Effect, sampleRate int) []byte {
	if e < 0 || e >= effectCount || sampleRate <= 0 {
		return nil
	}
	key := cacheKey{e, sampleRate}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if buf, ok := cache[key]; ok {
		return buf
	}
	buf := Render(Streamer(e, beep.SampleRate(sampleRate)))
	cache[key] = buf
	return buf
}

// Duration is the playing time of a rendered buffer.
func Duration(buf []byte, sampleRate int) time.Duration {
	return beep.SampleRate(sampleRate).D(len(buf) / frameBytes)
}
