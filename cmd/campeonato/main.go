// Package main provides the entry point for the campeonato CLI.
//
// campeonato simulates a football championship: it registers teams, players
// and referees, announces the bonus tier of every player and prints the
// championship report as plain text and HTML.
//
// Usage:
//
//	campeonato
//	campeonato init
//	campeonato version
//
// See --help for all available options.
package main

// main is the entry point for campeonato.
func main() {
	Execute()
}
