// Command brood creates a few people, moves them into a household, and
// lets the first one prove it survived the move.
//
// Usage:
//
//	brood [--config FILE] [--log-level LEVEL] [--census PATH] [--run-id ID] [--metrics] [--trace]
//
// With no flags it prints the default announcements to stdout and nothing
// else. Logs, metric summaries, and trace spans go to stderr.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
