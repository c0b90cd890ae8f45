// Command lector is a terminal screen reader: it wraps a child shell in a
// PTY, tracks what changes on screen, and speaks it through a pluggable
// speech driver.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
