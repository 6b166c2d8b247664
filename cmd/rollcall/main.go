// Package main provides the entry point for the rollcall CLI tool.
package main

import "github.com/meetingworks/rollcall/cmd/rollcall/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
