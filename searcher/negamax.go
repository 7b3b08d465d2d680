package searcher

import (
	"math"
	"sort"
	"time"

	"golang.org/x/exp/rand"

	"tabletop/game"
	"tabletop/metrics"
)

// Terminal scores sit far outside any static evaluation and carry the
// remaining depth, so the search prefers faster wins and slower losses.
const WinScore = 10000.0

const (
	DefaultMaxDepth  = 3
	DefaultMaxMillis = 5000
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Config bounds a single search.
type Config struct {
	Difficulty Difficulty // informational tag, carried into metrics
	MaxDepth   int        // plies; DefaultMaxDepth if 0
	MaxMillis  int        // soft wall-clock budget; DefaultMaxMillis if 0
	Randomness float64    // score-unit threshold for near-best move selection
	Rand       *rand.Rand // nil seeds a new source from the current time
	Collector  metrics.Collector
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.MaxMillis <= 0 {
		c.MaxMillis = DefaultMaxMillis
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if c.Collector == nil {
		c.Collector = metrics.NewDummyCollector()
	}
	return c
}

type scoredMove[M any] struct {
	move  M
	score float64
}

// ChooseBestMove picks a move for player in state by negamax search with
// alpha-beta pruning. ok is false iff the player has no legal move - a
// forced pass, not an error.
//
// The wall-clock budget is soft: it is checked at node entry, and a node
// past the deadline settles for its static evaluation instead of recursing,
// so the search can run over budget by one subtree.
//
// With Randomness > 0 the result is drawn uniformly from the moves scoring
// within Randomness of the best, which is how difficulty tiers weaken play
// without ever inventing an illegal move.
func ChooseBestMove[S, M any](eng game.Engine[S, M], state S, player game.Player, cfg Config) (move M, ok bool) {
	var zero M
	cfg = cfg.withDefaults()

	moves := eng.GenerateMoves(state, player)
	if len(moves) == 0 {
		return zero, false
	}
	if len(moves) == 1 {
		// No point searching a forced move.
		return moves[0], true
	}

	cfg.Collector.Start(string(cfg.Difficulty), cfg.MaxDepth)
	deadline := time.Now().Add(time.Duration(cfg.MaxMillis) * time.Millisecond)

	scored := make([]scoredMove[M], 0, len(moves))
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, m := range moves {
		next := eng.ApplyMove(state, m)
		score := -negamax(eng, next, player.Opponent(), cfg.MaxDepth-1, -beta, -alpha, deadline, cfg.Collector)
		scored = append(scored, scoredMove[M]{move: m, score: score})
		// Keep root scores exact within the randomness window so the
		// near-best set is built from real values, not pruning bounds.
		if score-cfg.Randomness > alpha {
			alpha = score - cfg.Randomness
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if cfg.Randomness <= 0 {
		return scored[0].move, true
	}

	threshold := scored[0].score - cfg.Randomness
	cut := 1
	for cut < len(scored) && scored[cut].score >= threshold {
		cut++
	}
	return scored[cfg.Rand.Intn(cut)].move, true
}

// negamax returns the value of state from player's perspective, searching
// depth more plies and negating the sign at each level.
func negamax[S, M any](eng game.Engine[S, M], state S, player game.Player, depth int, alpha, beta float64, deadline time.Time, collector metrics.Collector) float64 {
	collector.AddNode()

	if result := eng.Result(state); result.Finished {
		switch result.Winner {
		case player:
			return WinScore + float64(depth)
		case player.Opponent():
			return -WinScore - float64(depth)
		default:
			return 0
		}
	}

	// Soft deadline: settle for the static evaluation instead of recursing.
	if time.Now().After(deadline) {
		collector.AddDeadlineHit()
		return eng.Evaluate(state, player)
	}

	if depth <= 0 {
		return eng.Evaluate(state, player)
	}

	moves := eng.GenerateMoves(state, player)
	if len(moves) == 0 {
		// Forced pass: score the position as it stands.
		return eng.Evaluate(state, player)
	}

	best := math.Inf(-1)
	for _, m := range moves {
		next := eng.ApplyMove(state, m)
		score := -negamax(eng, next, player.Opponent(), depth-1, -beta, -alpha, deadline, collector)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			collector.AddPrune()
			break
		}
	}
	return best
}
