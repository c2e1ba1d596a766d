//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// handleSignals - destroy sensitive state before dying on a signal
func handleSignals(cleanup func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	go func() {
		for sig := range signals {
			switch sig {
			case syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM:
				cleanup()
				os.Exit(2)
			}
		}
	}()
}
