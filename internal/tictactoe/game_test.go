package tictactoe

import (
	"testing"

	"github.com/arborian-games/impasse/internal/search"
)

func TestEmptyBoardIsADrawAtFullDepth(t *testing.T) {
	game := New()
	got := search.AlphaBeta[Game, Move](game, 9, search.MAX, search.MinScore, search.MaxScore)
	if got != 0 {
		t.Errorf("AlphaBeta(empty board, depth=9) = %d, want 0 (perfect play draws)", got)
	}
}

func TestOneMoveFromWinningCompletesTheRow(t *testing.T) {
	game := Game{Cells: [3][3]int8{
		{1, 1, 0},
		{0, -1, 0},
		{0, 0, 0},
	}}

	got := search.AlphaBeta[Game, Move](game, 5, search.MAX, search.MinScore, search.MaxScore)
	if got != 10 {
		t.Errorf("AlphaBeta = %d, want 10", got)
	}

	best := search.FindBestMove[Game, Move](game, 5, search.MAX, func(state Game, depth int, color search.Color, alpha, beta int) int {
		return search.AlphaBeta[Game, Move](state, depth, color, alpha, beta)
	})
	if best.Row != 0 || best.Col != 2 {
		t.Errorf("FindBestMove = %+v, want the row-completing move at (0,2)", best)
	}
}

func TestBlocksAnImminentColumnThreat(t *testing.T) {
	// MIN is one move from winning column 0; MAX to move must block.
	game := Game{Cells: [3][3]int8{
		{-1, 1, 0},
		{-1, 0, 0},
		{0, 0, 0},
	}}

	best := search.FindBestMove[Game, Move](game, 3, search.MAX, func(state Game, depth int, color search.Color, alpha, beta int) int {
		return search.AlphaBeta[Game, Move](state, depth, color, alpha, beta)
	})
	if best.Row != 2 || best.Col != 0 {
		t.Errorf("FindBestMove = %+v, want the blocking move at (2,0)", best)
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	game := New()
	m := Move{Row: 1, Col: 1, Sign: 1}
	applied := game.Apply(m)
	if applied.Cells[1][1] != 1 {
		t.Fatalf("Apply did not place the mark")
	}
	back := applied.Undo(m)
	if back != game {
		t.Errorf("Undo(Apply(m)) = %+v, want the original board %+v", back, game)
	}
}

func TestHashDistinguishesPositionsAndSideToMove(t *testing.T) {
	empty := New()
	onePlaced := empty.Apply(Move{Row: 0, Col: 0, Sign: 1})

	if empty.Hash(search.MAX) == onePlaced.Hash(search.MAX) {
		t.Error("Hash collides between an empty board and a board with one mark")
	}
	if empty.Hash(search.MAX) == empty.Hash(search.MIN) {
		t.Error("Hash collides between the same board with different sides to move")
	}
}

func TestIsTerminalOnFullBoardWithNoWinner(t *testing.T) {
	game := Game{Cells: [3][3]int8{
		{1, -1, 1},
		{1, -1, -1},
		{-1, 1, 1},
	}}
	if !game.IsTerminal() {
		t.Error("a full board with no winning line should be terminal")
	}
	if game.Score() != 0 {
		t.Errorf("Score() = %d, want 0 for a drawn board", game.Score())
	}
}

func TestChildrenOnlyListsEmptyCells(t *testing.T) {
	game := Game{Cells: [3][3]int8{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}}
	children := game.Children(search.MIN)
	if len(children) != 8 {
		t.Fatalf("Children returned %d moves, want 8", len(children))
	}
	for _, m := range children {
		if m.Row == 0 && m.Col == 0 {
			t.Error("Children included the already-occupied cell (0,0)")
		}
		if m.Sign != -1 {
			t.Errorf("Children for MIN produced sign %d, want -1", m.Sign)
		}
	}
}
