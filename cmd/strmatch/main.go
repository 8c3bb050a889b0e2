package main

import (
	"os"

	"github.com/coregx/strmatch/cmd/strmatch/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are printed by Execute; "no matches" exits 1 silently like grep.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
