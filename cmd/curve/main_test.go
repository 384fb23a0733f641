package main

import (
	"errors"
	"fmt"
	"testing"

	"curve/internal/game"
)

func TestParsePlayers(t *testing.T) {
	tests := []struct {
		args []string
		want int
		ok   bool
	}{
		{[]string{"2"}, 2, true},
		{[]string{"3"}, 3, true},
		{[]string{"1"}, 0, false},
		{[]string{"4"}, 0, false},
		{[]string{"two"}, 0, false},
		{[]string{}, 0, false},
		{[]string{"2", "3"}, 0, false},
	}
	for _, tt := range tests {
		got, err := parsePlayers(tt.args)
		if tt.ok != (err == nil) {
			t.Errorf("parsePlayers(%v): unexpected error state %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePlayers(%v): expected %d, got %d", tt.args, tt.want, got)
		}
	}
}

func TestIsUsage(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{usageError{errors.New("bad flag")}, true},
		{fmt.Errorf("wrapped: %w", usageError{errors.New("x")}), true},
		{fmt.Errorf("%w: 9", game.ErrInvalidPlayerCount), true},
		{fmt.Errorf("%w: radius", game.ErrTurningCircleTooTight), true},
		{fmt.Errorf("%w: fps", game.ErrInvalidSettings), true},
		{errors.New("create window: no display"), false},
	}
	for _, tt := range tests {
		if got := isUsage(tt.err); got != tt.want {
			t.Errorf("isUsage(%v): expected %v, got %v", tt.err, tt.want, got)
		}
	}
}

func TestRootCommandRejectsBadPlayers(t *testing.T) {
	rootCmd.SetArgs([]string{"7"})
	err := rootCmd.Execute()
	if !isUsage(err) {
		t.Errorf("Expected usage error, got %v", err)
	}

	rootCmd.SetArgs([]string{"--no-such-flag", "2"})
	if err := rootCmd.Execute(); !isUsage(err) {
		t.Errorf("Expected usage error for unknown flag, got %v", err)
	}
}
