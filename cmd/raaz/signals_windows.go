//go:build windows

package main

import (
	"os"
	"os/signal"
)

// handleSignals - destroy sensitive state before dying on a signal
func handleSignals(cleanup func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	go func() {
		for range signals {
			cleanup()
			os.Exit(2)
		}
	}()
}
