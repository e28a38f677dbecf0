package impasse

import "github.com/arborian-games/impasse/internal/search"

func (b Board) canBearOff(x, y int) bool {
	return b.Cells[x][y] == 2 && x == 7 || b.Cells[x][y] == -2 && x == 0
}

func (b Board) canCrownSelf(x, y int) bool {
	if abs8(b.Cells[x][y]) != 1 || !(x == 0 || x == 7) {
		return false
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if b.isPossiblePawn(x, y, i, j) {
				return true
			}
		}
	}
	return false
}

func (b Board) canTranspose(x, y, nex, ney int) bool {
	return absInt(x-nex) == 1 && absInt(y-ney) == 1 && b.Cells[x][y]*2 == b.Cells[nex][ney]
}

func (b Board) canCrownOther(color search.Color) bool {
	for i := 0; i < 8; i++ {
		if color == search.MAX && b.Cells[0][i] == 1 {
			return true
		}
		if color == search.MIN && b.Cells[7][i] == -1 {
			return true
		}
	}
	return false
}

func (b Board) inFinalRow(x, y int) bool {
	return x == 0 && b.Cells[x][y] == 1 || x == 7 && b.Cells[x][y] == -1
}

func (b Board) isFree(x, y int) bool {
	return b.Cells[x][y] == 0
}

// isPossiblePawn reports whether (xo, yo) holds the same piece value as
// (x, y) without being the same cell — a candidate partner to crown with.
func (b Board) isPossiblePawn(x, y, xo, yo int) bool {
	return (x != xo || y != yo) && b.Cells[x][y] == b.Cells[xo][yo]
}

func (b Board) possibleCrownPawns(x, y int) [][2]int {
	var pawns [][2]int
	for xo := 0; xo < 8; xo++ {
		for yo := 0; yo < 8; yo++ {
			if b.isPossiblePawn(x, y, xo, yo) {
				pawns = append(pawns, [2]int{xo, yo})
			}
		}
	}
	return pawns
}

func (b Board) waitingCrowns(color search.Color) []int {
	var crowns []int
	for i := 0; i < 8; i++ {
		if b.isCrown(color, i) {
			crowns = append(crowns, i)
		}
	}
	return crowns
}

func (b Board) isCrown(color search.Color, i int) bool {
	return color == search.MAX && b.Cells[0][i] == 1 || color == search.MIN && b.Cells[7][i] == -1
}

func (b Board) genMoveCrown(base Move, pawnX, pawnY, crownX, crownY int) Move {
	positions := base.Positions
	setPawn := false
	setCrown := false
	freePosition := 0
	indexerSet := false

	for index := range positions {
		pos := &positions[index]
		switch {
		case pos.X == pawnX && pos.Y == pawnY:
			pos.NewSign = 0
			setPawn = true
		case pos.X == crownX && pos.Y == crownY:
			pos.NewSign *= 2
			setCrown = true
		}
		if *pos == emptyPosition && !indexerSet {
			indexerSet = true
			freePosition = index
		}
	}

	if !setPawn {
		positions[freePosition] = Position{X: pawnX, Y: pawnY, OldSign: b.Cells[pawnX][pawnY], NewSign: 0}
		freePosition++
	}
	if !setCrown {
		positions[freePosition] = Position{
			X: crownX, Y: crownY,
			OldSign: b.Cells[crownX][crownY],
			NewSign: b.Cells[crownX][crownY] * 2,
		}
	}

	return Move{Type: base.Type.Combine(Crown), Positions: positions}
}

func (b Board) genMoveImpasse(x, y int) Move {
	var newSign int8
	switch abs8(b.Cells[x][y]) {
	case 2:
		newSign = b.Cells[x][y] / 2
	case 1:
		newSign = 0
	default:
		panic("impasse: invalid piece for impasse move")
	}
	return Move{
		Type: Impasse,
		Positions: [3]Position{
			{X: x, Y: y, OldSign: b.Cells[x][y], NewSign: newSign},
			emptyPosition,
			emptyPosition,
		},
	}
}

func (b Board) genMoveNormal(x, y, newX, newY int) Move {
	return Move{
		Type: Normal,
		Positions: [3]Position{
			{X: x, Y: y, OldSign: b.Cells[x][y], NewSign: 0},
			{X: newX, Y: newY, OldSign: b.Cells[newX][newY], NewSign: b.Cells[x][y]},
			emptyPosition,
		},
	}
}

func (b Board) genMoveTranspose(x, y, nex, ney int) Move {
	return Move{
		Type: Transpose,
		Positions: [3]Position{
			{X: x, Y: y, OldSign: b.Cells[x][y], NewSign: b.Cells[nex][ney]},
			{X: nex, Y: ney, OldSign: b.Cells[nex][ney], NewSign: b.Cells[x][y]},
			emptyPosition,
		},
	}
}

func (b Board) pieceIsValid(x, y int, color search.Color) bool {
	v := b.Cells[x][y]
	if v == 0 {
		return false
	}
	if color == search.MAX && v < 0 {
		return false
	}
	if color == search.MIN && v > 0 {
		return false
	}
	return true
}

func calcNewXY(x, y, counter int, front, left bool) (int, int) {
	nx := x + counter
	if front {
		nx = x - counter
	}
	ny := y + counter
	if left {
		ny = y - counter
	}
	return nx, ny
}

// doCrown is called with the board already advanced to newMove's
// destination: it decides whether landing on (x, y) crowns this piece
// (crown-self: a single reaching its final row, consuming another single
// of the same color from elsewhere on the board) or crowns a single of
// the mover's color already waiting in its final row, consuming the
// piece that just moved (crown-other), and fans the single move out into
// one move per crownable pairing.
func (b Board) doCrown(x, y int, newMove Move, moves *[]Move, color search.Color) {
	if abs8(b.Cells[x][y]) != 1 {
		*moves = append(*moves, newMove)
		return
	}

	inFinalRow := b.inFinalRow(x, y)
	switch {
	case inFinalRow && b.canCrownSelf(x, y):
		for _, pawn := range b.possibleCrownPawns(x, y) {
			*moves = append(*moves, b.genMoveCrown(newMove, pawn[0], pawn[1], x, y))
		}
	case !inFinalRow && b.canCrownOther(color):
		crownX := 0
		if color == search.MIN {
			crownX = 7
		}
		for _, crownY := range b.waitingCrowns(color) {
			*moves = append(*moves, b.genMoveCrown(newMove, x, y, crownX, crownY))
		}
	default:
		*moves = append(*moves, newMove)
	}
}

func (b Board) moveImpasse(moves *[]Move, color search.Color, x, y int, sign int8) {
	if int(b.Cells[x][y])*int(sign) <= 0 {
		return
	}

	newMove := b.genMoveImpasse(x, y)
	newBoard := b.Apply(newMove)
	if newBoard.canBearOff(x, y) {
		newBoard = newBoard.Undo(newMove)
		newMove.toBearOff()
		newBoard = newBoard.Apply(newMove)
	}
	newBoard.doCrown(x, y, newMove, moves, color)
}

// moveNormal scans the two diagonals out of (x, y) on its "front" side
// for normal moves and transposes. "front" is the direction a single
// piece advances in (toward row 0 for MAX, toward row 7 for MIN); a
// crowned piece moves the other way, so front is flipped for it. Each
// diagonal is scanned outward over free squares until the first occupied
// square stops it; that square yields a transpose move when it is the
// adjacent square and holds the mover's own crowned piece.
func (b Board) moveNormal(moves *[]Move, color search.Color, x, y int) {
	if !b.pieceIsValid(x, y, color) {
		return
	}

	front := color == search.MAX
	if abs8(b.Cells[x][y]) == 2 {
		front = !front
	}

	left := true
	stop := false
	blocked := false

	for !stop && (!blocked || left) {
		blocked = false
		counter := 1

		for !blocked && ((front && x >= counter || !front && x+counter < 8) &&
			(left && y >= counter || !left && y+counter < 8)) {
			newX, newY := calcNewXY(x, y, counter, front, left)
			var newMove Move
			blocked = true

			switch {
			case b.canTranspose(x, y, newX, newY):
				newMove = b.genMoveTranspose(x, y, newX, newY)
			case b.isFree(newX, newY):
				newMove = b.genMoveNormal(x, y, newX, newY)
				blocked = false
			default:
				newMove = Move{}
			}

			if newMove.IsValid() {
				newBoard := b.Apply(newMove)
				if newBoard.canBearOff(x, y) || newBoard.canBearOff(newX, newY) {
					newBoard = newBoard.Undo(newMove)
					newMove.toBearOff()
					newBoard = newBoard.Apply(newMove)
				}
				newBoard.doCrown(newX, newY, newMove, moves, color)
			}
			counter++
		}

		if left {
			left = false
			blocked = false
		} else {
			stop = true
		}
	}
}
