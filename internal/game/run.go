package game

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"fableshell/internal/logger"
)

// Run starts the blocking read-tokenize-dispatch loop. The registry freezes
// first, then the help entries mount if enabled. The loop ends on
// end-of-input or when a handler calls Stop; both are graceful.
func (g *Game) Run() error {
	g.registry.Freeze()
	if g.helpOn {
		g.mountHelp()
	}

	logger.Info("Starting game loop", "session", g.id, "commands", g.registry.Len())

	if g.input != nil {
		return g.runFromReader()
	}
	return g.runInteractive()
}

// runFromReader drives the loop from a plain reader: no prompt, no line
// editing. Tests and batch embedders use this path.
func (g *Game) runFromReader() error {
	scanner := bufio.NewScanner(g.input)
	g.running = true
	for g.running && scanner.Scan() {
		g.handleLine(scanner.Text())
	}
	return scanner.Err()
}

// runInteractive drives the loop from the terminal with readline editing
// and history.
func (g *Game) runInteractive() error {
	rl, err := readline.New(g.prompt())
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	g.running = true
	for g.running {
		rl.SetPrompt(g.prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			g.printer.Println("")
			break
		}
		if err != nil {
			return err
		}
		g.handleLine(line)
	}
	return nil
}

// handleLine processes one raw input line: empty lines are skipped without
// dispatch, everything else is dispatched and followed by a blank separator
// line.
func (g *Game) handleLine(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if err := g.Dispatch(raw); err != nil {
		logger.Error("Dispatch failed", "session", g.id, "line", raw, "error", err)
		g.printer.Error(err.Error())
	}
	g.printer.Println("")
}
