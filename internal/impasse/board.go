// Package impasse implements the Impasse board game as a search.State
// instantiation: an 8x8 board of signed pieces (single pieces at ±1,
// crowned pieces at ±2), Normal/Transpose/Impasse moves with optional
// Crown and BearOff riders, and a Zobrist-style position hash.
package impasse

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/arborian-games/impasse/internal/search"
)

// HashField holds one random 64-bit value per (row, col, piece-kind)
// combination, XORed together to hash a board position. There are four
// piece kinds: -2, -1, 1, 2.
type HashField [8][8][4]uint64

// NewHashField generates a HashField deterministically from seed, so a
// run is reproducible across processes given the same seed.
func NewHashField(seed int64) *HashField {
	var hf HashField
	r := rand.New(rand.NewSource(seed))
	for i := range hf {
		for j := range hf[i] {
			for k := range hf[i][j] {
				hf[i][j][k] = r.Uint64()
			}
		}
	}
	return &hf
}

func hashIndex(v int8) int {
	switch v {
	case -2:
		return 0
	case -1:
		return 1
	case 1:
		return 2
	case 2:
		return 3
	default:
		panic(fmt.Sprintf("impasse: invalid cell value %d", v))
	}
}

// Board is an 8x8 grid of signed piece values: 0 empty, ±1 a single
// piece, ±2 a crowned piece. Positive values belong to search.MAX,
// negative to search.MIN. Board is a plain value type; Apply and Undo
// return copies. Hashes points at a table shared by every Board reachable
// from the same game, so copying a Board never copies the hash table
// itself.
type Board struct {
	Cells  [8][8]int8
	Hashes *HashField
}

// New returns the standard Impasse starting position.
func New(hashes *HashField) Board {
	return Board{Cells: defaultCells(), Hashes: hashes}
}

func defaultCells() [8][8]int8 {
	var c [8][8]int8
	c[0][1] = 2
	c[0][3] = -1
	c[0][5] = 2
	c[0][7] = -1

	c[1][0] = -1
	c[1][2] = 2
	c[1][4] = -1
	c[1][6] = 2

	c[6][1] = -2
	c[6][3] = 1
	c[6][5] = -2
	c[6][7] = 1

	c[7][0] = 1
	c[7][2] = -2
	c[7][4] = 1
	c[7][6] = -2
	return c
}

// Apply returns the board reached by playing m.
func (b Board) Apply(m Move) Board {
	next := b
	for _, pos := range m.Positions {
		if pos.NewSign != 3 && pos.OldSign != 3 {
			next.Cells[pos.X][pos.Y] = pos.NewSign
		}
	}
	return next
}

// Undo returns the pre-image of Apply(m).
func (b Board) Undo(m Move) Board {
	prev := b
	for _, pos := range m.Positions {
		if pos.NewSign != 3 && pos.OldSign != 3 {
			prev.Cells[pos.X][pos.Y] = pos.OldSign
		}
	}
	return prev
}

// Score counts every piece still on the board against its owner: each
// MAX piece lowers the score and each MIN piece raises it, by a weight
// that shrinks the further the piece has advanced (7+row for a MAX
// single, 21-row for a MAX crowned piece, 14-row for a MIN single, 14+row
// for a MIN crowned piece, so crowned pieces weigh more), plus 10 for
// each piece (a crowned piece counting two) by which MIN outnumbers MAX.
// A side with no pieces left on the board has won: MaxScore when MAX has
// none, MinScore when MIN has none.
func (b Board) Score() int {
	posPieces := 0
	negPieces := 0
	score := 10000

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			switch b.Cells[i][j] {
			case 0:
			case 1:
				score -= 7 + i
			case 2:
				score -= 21 - i
			case -1:
				score += 14 - i
			case -2:
				score += 14 + i
			default:
				panic(fmt.Sprintf("impasse: invalid cell value %d", b.Cells[i][j]))
			}
			switch b.Cells[i][j] {
			case 0:
			case -1:
				negPieces++
			case -2:
				negPieces += 2
			case 1:
				posPieces++
			case 2:
				posPieces += 2
			}
		}
	}

	if posPieces == 0 {
		return search.MaxScore
	}
	if negPieces == 0 {
		return search.MinScore
	}
	return score + (negPieces-posPieces)*10
}

// IsTerminal reports that one side has no pieces left on the board.
func (b Board) IsTerminal() bool {
	posPlayers, negPlayers := false, false
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if b.Cells[i][j] > 0 {
				posPlayers = true
			}
			if b.Cells[i][j] < 0 {
				negPlayers = true
			}
		}
	}
	return !posPlayers || !negPlayers
}

// Hash XORs in one random value per occupied cell plus a side-to-move
// bit. Equal boards with equal color always hash equally; XOR makes cell
// order irrelevant.
func (b Board) Hash(color search.Color) int64 {
	var h uint64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if b.Cells[i][j] != 0 {
				h ^= b.Hashes[i][j][hashIndex(b.Cells[i][j])]
			}
		}
	}
	if color == search.MIN {
		h ^= 1
	}
	return int64(h)
}

// Children enumerates legal moves for color: normal (and transpose)
// moves if any piece has one available, otherwise impasse moves for
// every piece that has no normal move, per Impasse's forced-move rule.
func (b Board) Children(color search.Color) []Move {
	moves := make([]Move, 0, 16)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			b.moveNormal(&moves, color, i, j)
		}
	}
	if len(moves) > 0 {
		return moves
	}

	sign := int8(1)
	if color == search.MIN {
		sign = -1
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			b.moveImpasse(&moves, color, i, j, sign)
		}
	}
	return moves
}

func pieceChar(v int8) byte {
	switch v {
	case -2:
		return 'X'
	case -1:
		return 'x'
	case 1:
		return 'o'
	case 2:
		return 'O'
	default:
		return '_'
	}
}

// String renders the board as eight ranks with file legend, dark squares
// marked '-' and occupied squares by piece symbol. This is the plain-text
// form; internal/board draws the same layout with optional styling.
func (b Board) String() string {
	var out strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&out, "%d ", 8-i)
		for j := 0; j < 8; j++ {
			if (i+j)%2 != 0 {
				out.WriteByte(pieceChar(b.Cells[i][j]))
			} else {
				out.WriteByte('-')
			}
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	out.WriteString("  A B C D E F G H\n")
	return out.String()
}
