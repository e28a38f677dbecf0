// Package tictactoe is a second, much smaller search.State instantiation
// used to exercise the engine against scenarios small enough to verify by
// hand: empty board, one-move-from-winning, and forced-block positions.
package tictactoe

import "github.com/arborian-games/impasse/internal/search"

// Move places a mark at (Row, Col). Sign is +1 for the MAX player's mark,
// -1 for MIN's; the zero value (Sign 0) never occurs on a real move and
// only ever appears as the transposition table's "no move recorded" miss
// sentinel.
type Move struct {
	Row, Col int
	Sign     int8
}

// Less orders moves by board position, then by sign, giving moves the
// stable total order search.Move requires.
func (m Move) Less(other Move) bool {
	if m.Row != other.Row {
		return m.Row < other.Row
	}
	if m.Col != other.Col {
		return m.Col < other.Col
	}
	return m.Sign < other.Sign
}

// Game is a 3x3 board. Cells hold 0 (empty), 1 (MAX's mark), or -1 (MIN's
// mark). It is a plain value type: Apply and Undo return copies.
type Game struct {
	Cells [3][3]int8
}

// New returns an empty board.
func New() Game {
	return Game{}
}

func signFor(color search.Color) int8 {
	if color == search.MAX {
		return 1
	}
	return -1
}

// Children enumerates every empty cell as a move for the side to move, in
// row-major order.
func (g Game) Children(color search.Color) []Move {
	sign := signFor(color)
	moves := make([]Move, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if g.Cells[r][c] == 0 {
				moves = append(moves, Move{Row: r, Col: c, Sign: sign})
			}
		}
	}
	return moves
}

// Apply returns the board with m's mark placed.
func (g Game) Apply(m Move) Game {
	next := g
	next.Cells[m.Row][m.Col] = m.Sign
	return next
}

// Undo returns the board with m's mark cleared.
func (g Game) Undo(m Move) Game {
	prev := g
	prev.Cells[m.Row][m.Col] = 0
	return prev
}

var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// winner returns the nonzero mark occupying a complete line, or 0 if none.
func (g Game) winner() int8 {
	for _, line := range lines {
		a := g.Cells[line[0][0]][line[0][1]]
		b := g.Cells[line[1][0]][line[1][1]]
		c := g.Cells[line[2][0]][line[2][1]]
		if a != 0 && a == b && a == c {
			return a
		}
	}
	return 0
}

// Score is 10 for a complete MAX line, -10 for a complete MIN line, 0
// otherwise — defined identically for leaves and interior nodes.
func (g Game) Score() int {
	return 10 * int(g.winner())
}

// IsTerminal reports a completed line or a full board.
func (g Game) IsTerminal() bool {
	if g.winner() != 0 {
		return true
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if g.Cells[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Hash packs the nine cells as base-3 digits (shifted to 0..2) plus the
// side-to-move bit. The board has only 3^9 reachable cell combinations,
// so this is a perfect hash rather than a probabilistic one — there is no
// need for Zobrist-style XOR accumulation at this scale.
func (g Game) Hash(color search.Color) int64 {
	var h int64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			h = h*3 + int64(g.Cells[r][c]+1)
		}
	}
	if color == search.MIN {
		h = -h - 1
	}
	return h
}

// String renders the board as three rows of X/O/_ separated by spaces.
func (g Game) String() string {
	out := make([]byte, 0, 18)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			switch g.Cells[r][c] {
			case 1:
				out = append(out, 'X', ' ')
			case -1:
				out = append(out, 'O', ' ')
			default:
				out = append(out, '_', ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
