package search

// NegaScout is principal-variation search (§4.2.5): a full window on the
// first child, then a null window on the rest, re-searching full-width
// only when a later child beats the current best strictly (and depth > 2
// makes the re-search worthwhile). Assumes reasonable move ordering —
// pairing it with a transposition table's PV-move hoisting (as in
// NegaWithTable) is the usual way to supply that.
func NegaScout[T State[T, M], M Move[M]](state T, depth int, color Color, alpha, beta int) int {
	if depth == 0 || state.IsTerminal() {
		if color == MAX {
			return state.Score()
		}
		return -state.Score()
	}

	score := MinScore
	n := beta
	moves := state.Children(color)

	for _, m := range moves {
		child := state.Apply(m)
		value := -NegaScout[T, M](child, depth-1, color.Flip(), -n, -alpha)
		if value > score {
			if n == beta || depth <= 2 {
				score = value
			} else {
				score = -NegaScout[T, M](child, depth-1, color.Flip(), -beta, -value)
			}
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return alpha
		}
		n = alpha + 1
	}
	return score
}
