// Package gamelog writes the end-of-game move history to Game.txt,
// adapted from the savegame writer's "compute the path, os.WriteFile the
// contents" shape, but append-only and written once at game end rather
// than updated mid-game — Impasse carries no resumable state across
// runs.
package gamelog

import (
	"fmt"
	"os"
	"strings"

	"github.com/arborian-games/impasse/internal/search"
)

// Entry is one played ply: the move's text form and which side played it.
type Entry[M fmt.Stringer] struct {
	Move  M
	Color search.Color
}

// label matches the reference game's O/X naming: MAX is "O", MIN is "X".
func label(color search.Color) string {
	if color == search.MAX {
		return "O"
	}
	return "X"
}

// Render formats history the way the reference implementation's Game.txt
// does: one "O: <move>" or "X: <move>" block per ply, each followed by a
// blank line.
func Render[M fmt.Stringer](history []Entry[M]) string {
	var b strings.Builder
	for _, e := range history {
		fmt.Fprintf(&b, "%s: %s\n\n", label(e.Color), e.Move)
	}
	return b.String()
}

// WriteFile writes history to path, overwriting any existing file.
func WriteFile[M fmt.Stringer](path string, history []Entry[M]) error {
	if err := os.WriteFile(path, []byte(Render(history)), 0644); err != nil {
		return fmt.Errorf("gamelog: failed to write %s: %w", path, err)
	}
	return nil
}
