package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"curve/internal/config"
	"curve/internal/desktop"
	"curve/internal/game"
)

// exitUsage is EX_USAGE from sysexits.h.
const exitUsage = 64

// Command-line flags. They override the environment.
var (
	envFile string
	seed    uint64
	mute    bool
	verbose bool
	volume  float64
)

// usageError marks failures caused by how curve was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "curve <players>",
	Short: "Achtung, die Kurve! for 2 or 3 players on one keyboard",
	Long: `Steer your snake and outlive the others. Every trail is deadly,
your own included, and so are the walls. The last snake alive scores.

Keys: player 1 uses 1/Q, player 2 Left/Right, player 3 G/H.
Space pauses, Escape quits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	// glfw must own the main thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read settings from this file instead of ./.env.")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for spawn positions (0 picks one from the clock).")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "Disable sound effects.")
	rootCmd.PersistentFlags().BoolVar(&verbose, "debug", false, "Write a debug log to logs/curve.log.")
	rootCmd.PersistentFlags().Float64Var(&volume, "volume", 0.6, "Effect volume between 0 and 1.")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}

// parsePlayers reads the single positional player count.
func parsePlayers(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument, the number of players")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", game.ErrInvalidPlayerCount, args[0])
	}
	if err := game.ValidatePlayers(n); err != nil {
		return 0, err
	}
	return n, nil
}

// isUsage reports whether err should exit with exitUsage.
func isUsage(err error) bool {
	var ue usageError
	return errors.As(err, &ue) ||
		errors.Is(err, game.ErrInvalidPlayerCount) ||
		errors.Is(err, game.ErrInvalidSettings) ||
		errors.Is(err, game.ErrTurningCircleTooTight)
}

func run(cmd *cobra.Command, args []string) error {
	players, err := parsePlayers(args)
	if err != nil {
		return usageError{err}
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		return usageError{err}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Settings.Seed = seed
	}
	if mute {
		cfg.Audio = false
	}
	if verbose {
		cfg.Debug = true
	}
	if volume < 0 || volume > 1 {
		return usageError{fmt.Errorf("volume %v out of range 0 to 1", volume)}
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return desktop.Run(ctx, desktop.Options{
		Players:  players,
		Settings: cfg.Settings,
		Audio:    cfg.Audio,
		Volume:   volume,
	})
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ncurve crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "curve: %v\n", err)
		if isUsage(err) {
			fmt.Fprintf(os.Stderr, "usage: %s\n", rootCmd.UseLine())
			os.Exit(exitUsage)
		}
		os.Exit(1)
	}
}
