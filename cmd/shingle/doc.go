// Package main hosts the shingle CLI entrypoint and command graph.
//
// The Cobra-based command tree compares two texts for fuzzy-shingle overlap,
// shows the normalized view of a text, browses and prunes comparison history,
// serves the JSON API, and scaffolds configuration. It centralizes
// configuration resolution and logging setup so subcommands can focus on
// presentation.
//
// Keep this package lean: add new functionality to the internal packages first,
// then surface it through dedicated commands or flags here.
package main
