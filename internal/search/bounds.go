package search

import "math"

// MinScore and MaxScore are the fail-soft window endpoints passed to the
// root of a search. MinScore reserves the "+1" offset from math.MinInt so
// that negating a fully-unbounded negamax value is never UB-equivalent
// (overflow): -math.MinInt would overflow back to MinInt, so the spec
// reserves MinInt+1 everywhere instead. Do not substitute option types —
// the arithmetic is part of negamax's contract.
const (
	MinScore = math.MinInt + 1
	MaxScore = math.MaxInt
)
