package desktop

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"curve/internal/sound"
)

// maxVoices caps simultaneous effects.
const maxVoices = 4

// Audio plays synthesized effects through oto.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	active atomic.Int32
}

func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	// Pre-render so playback never synthesizes on the frame loop.
	for e := sound.EffectCrash; e <= sound.EffectPause; e++ {
		sound.Synthesize(e, sound.SampleRate)
	}
	return &Audio{ctx: ctx, ready: ready, volume: volume}, nil
}

// Play starts an effect without blocking. It is dropped while the device is
// still starting or too many voices are playing.
func (a *Audio) Play(e sound.Effect) {
	if a == nil || a.volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := sound.Synthesize(e, sound.SampleRate)
	if len(samples) == 0 {
		return
	}
	if a.active.Add(1) > maxVoices {
		a.active.Add(-1)
		return
	}
	go func() {
		defer a.active.Add(-1)
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
