// Package board renders an Impasse position to the terminal. It only
// handles presentation: it draws the same layout as impasse.Board's
// String, with optional color and optional coordinates.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arborian-games/impasse/internal/impasse"
)

var (
	maxStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	minStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	darkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// Config controls how Render styles a board.
type Config struct {
	UseColors bool
	// ShowCoords controls whether rank numbers and the file legend are
	// printed alongside the board.
	ShowCoords bool
}

// Render draws b as eight ranks (8 at top, descending to 1) with a file
// legend, using symbols 'O'/'o' for MAX's crowned/single pieces,
// 'X'/'x' for MIN's, '-' for dark squares, and '_' for empty light
// squares. With UseColors, MAX pieces are rendered bright, MIN pieces
// dim, and dark squares muted. With ShowCoords false, rank numbers and
// the file legend are omitted.
func Render(b impasse.Board, cfg Config) string {
	var out strings.Builder
	for i := 0; i < 8; i++ {
		if cfg.ShowCoords {
			fmt.Fprintf(&out, "%d ", 8-i)
		}
		for j := 0; j < 8; j++ {
			out.WriteString(renderCell(b, i, j, cfg))
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	if cfg.ShowCoords {
		out.WriteByte('\n')
		out.WriteString("  A B C D E F G H\n")
	}
	return out.String()
}

func renderCell(b impasse.Board, i, j int, cfg Config) string {
	if (i+j)%2 == 0 {
		if cfg.UseColors {
			return darkStyle.Render("-")
		}
		return "-"
	}

	symbol := cellSymbol(b.Cells[i][j])
	if !cfg.UseColors || b.Cells[i][j] == 0 {
		return symbol
	}
	if b.Cells[i][j] > 0 {
		return maxStyle.Render(symbol)
	}
	return minStyle.Render(symbol)
}

func cellSymbol(v int8) string {
	switch v {
	case -2:
		return "X"
	case -1:
		return "x"
	case 1:
		return "o"
	case 2:
		return "O"
	default:
		return "_"
	}
}
