package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(logDir, logFileName)
	log.Println("round 1: player 2 wins")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Log output must not go to the terminal")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected to find rotated log file")
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file, got %d bytes", info.Size())
	}
}
