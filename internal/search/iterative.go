package search

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// DepthSearch is any depth-limited searcher with the (state, depth,
// color, alpha, beta) -> int signature shared by Nega, AlphaBeta, and
// NegaScout.
type DepthSearch[T any] func(state T, depth int, color Color, alpha, beta int) int

// DepthSearchTT is a depth-limited, table-aware searcher, shared by
// NegaWithTable and AlphaBetaWithTable.
type DepthSearchTT[T, M any] func(state T, depth int, color Color, table *Table[M], alpha, beta int) int

// IterativeDeepening repeatedly calls searchFn for depth in [1, maxDepth),
// returning the highest score any iteration produced for MAX, or the
// lowest for MIN (§4.3). Both
// max and min running scores are tracked as a hedge against a search that
// returns an inconsistent value between depths; per spec §9 this is
// treated as defensive bookkeeping, not a requirement that one subsumes
// the other.
func IterativeDeepening[T any](state T, maxDepth int, color Color, searchFn DepthSearch[T]) int {
	maxScore := MinScore
	minScore := MaxScore

	for depth := 1; depth < maxDepth; depth++ {
		score := searchFn(state, depth, color, MinScore, MaxScore)
		if score > maxScore {
			maxScore = score
		}
		if score < minScore {
			minScore = score
		}
	}

	if color == MAX {
		return maxScore
	}
	return minScore
}

// IterativeDeepeningTT is IterativeDeepening with a shared transposition
// table carried across depths.
func IterativeDeepeningTT[T, M any](state T, maxDepth int, color Color, table *Table[M], searchFn DepthSearchTT[T, M]) int {
	maxScore := MinScore
	minScore := MaxScore

	for depth := 1; depth < maxDepth; depth++ {
		score := searchFn(state, depth, color, table, MinScore, MaxScore)
		if score > maxScore {
			maxScore = score
		}
		if score < minScore {
			minScore = score
		}
	}

	if color == MAX {
		return maxScore
	}
	return minScore
}

// runIterationWithDeadline runs one depth-limited iteration on a worker
// goroutine and waits at most remaining for its result. The deadline is
// soft: the worker is not cancelled on timeout; the driver waits for it
// to finish, discards its result, and reports the timeout, so the worker
// is always joined before the caller goes on (§5). errgroup
// gives us the join point and lets a worker panic propagate instead of
// being silently dropped.
func runIterationWithDeadline(remaining time.Duration, iterate func() int) (int, bool) {
	if remaining <= 0 {
		return 0, false
	}

	resultCh := make(chan int, 1)
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		resultCh <- iterate()
		return nil
	})

	select {
	case score := <-resultCh:
		_ = g.Wait()
		return score, true
	case <-time.After(remaining):
		_ = g.Wait()
		return 0, false
	}
}

// IterativeDeepeningT is the time-bounded driver (§4.3): it loops while
// elapsed < maxTime, incrementing depth each pass, and returns the highest
// completed iteration's score for MAX, or the lowest for MIN. With maxTime <= 0 it
// performs at most zero iterations and returns the MinScore/MaxScore
// sentinel for color, matching "at most one iteration" when maxTime is
// vanishingly small (§8 scenario 5).
func IterativeDeepeningT[T any](state T, maxTime time.Duration, color Color, searchFn DepthSearch[T]) int {
	maxScore := MinScore
	minScore := MaxScore
	depth := 1
	start := time.Now()

	for time.Since(start) < maxTime {
		score := searchFn(state, depth, color, MinScore, MaxScore)
		if score > maxScore {
			maxScore = score
		}
		if score < minScore {
			minScore = score
		}
		depth++
	}

	if color == MAX {
		return maxScore
	}
	return minScore
}

// IterativeDeepeningTTimed is the time-bounded, TT-aware driver. Each
// iteration runs on a worker goroutine; the driver blocks on a bounded
// receive with the remaining budget as timeout and stops looping the
// first time that receive doesn't complete in time (§4.3, §5).
func IterativeDeepeningTTimed[T, M any](state T, maxTime time.Duration, color Color, table *Table[M], searchFn DepthSearchTT[T, M]) int {
	maxScore := MinScore
	minScore := MaxScore
	depth := 1
	start := time.Now()

	for {
		remaining := maxTime - time.Since(start)
		if remaining <= 0 {
			break
		}

		score, ok := runIterationWithDeadline(remaining, func() int {
			return searchFn(state, depth, color, table, MinScore, MaxScore)
		})
		if !ok {
			break
		}
		if score > maxScore {
			maxScore = score
		}
		if score < minScore {
			minScore = score
		}
		depth++
	}

	if color == MAX {
		return maxScore
	}
	return minScore
}
