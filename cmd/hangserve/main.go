// Copyright 2025 The HangServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the HangServe hangman solver.

HangServe filters a word list down to the words that fit a hangman board: the
word length, the letters already revealed at their positions and the letters
the game rejected. Alongside the candidates it ranks the letters that occur in
most of them, which are the best next guesses.

# Usage

Start the interactive TUI with the default word list:

	hangserve

Use a custom lists directory and enable debug mode:

	hangserve --lists /path/to/lists -d

Solve one board without the TUI:

	hangserve solve h_ng__n -x eo --list english

Run the line based solver for testing:

	hangserve cli

Word lists are plain UTF-8 text files with one word per line, named after the
list (english.txt, german.txt). Without a configured default the
lexicographically first list is used.

# Configuration

Settings live in a TOML file that is created with defaults when missing:

	[solver]
	wildcard = "."
	top_letters = 10
	enforce_multiplicity = false
	fold_case = false

	[lists]
	dir = "lists"
	default = ""
	watch = true

	[ui]
	page_size = 10

	[server]
	max_page_size = 100

HANGSERVE_* environment variables override the file, and flags override both.

# IPC Protocol

`hangserve serve` answers MessagePack requests on stdin with MessagePack
responses on stdout, with microsecond timing in every solve response:

	{"id": "req1", "action": "solve", "pat": "ca.", "ex": "t"}
	{"id": "req1", "w": ["car", "can"], "l": [{"k": "c", "n": 2}], "t": 2, "us": 41}

See the server package for every message type.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/hangserve/internal/cli"
	"github.com/charmbracelet/log"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; the commands live in internal/cli.
func main() {
	sigHandler()
	cmd := cli.NewRootCommand(version, commit, date)
	if err := cmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
