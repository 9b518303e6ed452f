// Package main is the entry point for the justify CLI.
//
// Build-time variables (version, commit, date) are injected via ldflags.
package main

import (
	"github.com/bjaus/justify/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
