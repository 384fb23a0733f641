package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "curve.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging sends the standard logger to logs/curve.log when debug is
// set and discards it otherwise. An oversized log is rotated aside first.
// The caller closes the returned file, which is nil when logging is off.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "curve: cannot create %s: %v\n", logDir, err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("curve-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "curve: cannot rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curve: cannot open log: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
