package desktop

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"

	"curve/internal/game"
	"curve/internal/render"
	"curve/internal/sound"
)

// Options configures one desktop session.
type Options struct {
	Players  int
	Settings game.Settings
	Audio    bool
	Volume   float64

	// MatchID tags log lines; a fresh UUID is used when empty.
	MatchID string
}

// Run opens the window and plays a match until the players quit, the
// window closes or ctx is cancelled. It must be called from the main
// goroutine.
func Run(ctx context.Context, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if opts.MatchID == "" {
		opts.MatchID = uuid.NewString()
	}
	logger := log.New(log.Writer(), fmt.Sprintf("[match %s] ", opts.MatchID), log.LstdFlags|log.Lmsgprefix)

	s := opts.Settings
	if err := game.ValidatePlayers(opts.Players); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	window, err := initWindow(s.Width, s.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	presenter, err := NewPresenter(s.Width, s.Height)
	if err != nil {
		return err
	}
	defer presenter.Destroy()

	var audio *Audio
	if opts.Audio {
		if audio, err = NewAudio(opts.Volume); err != nil {
			logger.Printf("audio init failed (continuing without sound): %v", err)
		}
	}

	events := game.NewEventBus()
	subscribe(events, logger, audio)
	match, err := game.NewMatch(opts.Players, s, game.WithEvents(events))
	if err != nil {
		return err
	}
	logger.Printf("match started: %d players, %dx%d, velocity %.2f, buffer delay %d",
		opts.Players, s.Width, s.Height, s.Velocity, match.Round().Queue().Delay())

	input := NewInput(opts.Players)
	composer := render.NewComposer(s.Width, s.Height)
	interval := s.FrameInterval()
	next := time.Now()

	for !match.Done() {
		glfw.PollEvents()

		in := input.Sample(window)
		if ctx.Err() != nil {
			in.Quit = true
		}
		if err := match.Tick(in); err != nil {
			return fmt.Errorf("tick: %w", err)
		}

		presenter.Upload(composer.Compose(match.Frame()))
		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			presenter.Draw(fbW, fbH)
		}
		window.SwapBuffers()

		next = next.Add(interval)
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		} else if d < -interval {
			// Fell behind (window drag, suspend): resync instead of racing.
			next = time.Now()
		}
	}
	logger.Printf("match over after %d rounds, scores %v", match.RoundNumber(), match.Scores())
	return nil
}

// subscribe wires logging and sound to match events. audio may be nil.
func subscribe(events *game.EventBus, logger *log.Logger, audio *Audio) {
	events.Subscribe(game.EventSnakeDied, func(e game.Event) {
		logger.Printf("round %d frame %d: player %d hit %s", e.Round, e.Frame, e.Player+1, e.Cause)
		audio.Play(sound.EffectCrash)
	})
	events.Subscribe(game.EventRoundOver, func(e game.Event) {
		if e.Player < 0 {
			logger.Printf("round %d: draw", e.Round)
			audio.Play(sound.EffectRoundDraw)
			return
		}
		logger.Printf("round %d: player %d wins", e.Round, e.Player+1)
		audio.Play(sound.EffectRoundWin)
	})
	events.Subscribe(game.EventRoundStarted, func(e game.Event) {
		logger.Printf("round %d started", e.Round)
	})
	pause := func(e game.Event) {
		logger.Printf("round %d frame %d: %s", e.Round, e.Frame, e.Type)
		audio.Play(sound.EffectPause)
	}
	events.Subscribe(game.EventPaused, pause)
	events.Subscribe(game.EventResumed, pause)
}
