package impasse

import "fmt"

// Position is one cell touched by a Move: where, and what sign it held
// before and after. OldSign and NewSign of 3 mark an unused slot in a
// Move's fixed three-position array — 3 is never a legal cell value (the
// board only ever holds -2, -1, 0, 1, 2), so it doubles as that array's
// "empty" sentinel without needing a separate bool.
type Position struct {
	X, Y             int
	OldSign, NewSign int8
}

// emptyPosition is the sentinel filling unused Move.Positions slots.
var emptyPosition = Position{OldSign: 3, NewSign: 3}

func (p Position) String() string {
	return fmt.Sprintf("%c%d - from %d to %d", 'A'+rune(p.Y), 8-p.X, p.OldSign, p.NewSign)
}
