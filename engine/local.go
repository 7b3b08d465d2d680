package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tabletop/agent"
	"tabletop/game"
	"tabletop/metrics"
)

// MaxTurns caps runaway games that never reach a result.
const MaxTurns = 10000

// Local drives two agents over one game to completion, validating every
// chosen move against the generator before applying it.
type Local[S, M any] struct {
	ID     uuid.UUID
	Engine game.Engine[S, M]
	Agents [2]*agent.Agent[S, M]
	State  S

	// Turn reports whose turn it is in a state.
	Turn func(S) game.Player
	// Roll prepares a state for the next move where the game needs chance
	// input (dice); nil for games without any.
	Roll func(S, *rand.Rand) S
	// Pass advances the turn when the mover has no legal move; nil means a
	// moveless non-terminal position is unexpected and aborts the game.
	Pass func(S) S
	// Equal compares moves for the legality check; nil skips the check.
	Equal func(M, M) bool

	rng *rand.Rand
}

func NewLocal[S, M any](eng game.Engine[S, M], a1, a2 *agent.Agent[S, M], initial S, seed uint64) *Local[S, M] {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Local[S, M]{
		ID:     uuid.New(),
		Engine: eng,
		Agents: [2]*agent.Agent[S, M]{a1, a2},
		State:  initial,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run loops until the game finishes or MaxTurns is hit, returning the final
// result plus game and per-move metrics.
func (l *Local[S, M]) Run() (game.Result, metrics.GameMetric, []metrics.MoveRecord, error) {
	start := time.Now()
	var records []metrics.MoveRecord
	step := 0

	for turn := 0; turn < MaxTurns; turn++ {
		if result := l.Engine.Result(l.State); result.Finished {
			log.Info().Msgf("game %s: %s wins (%s) after %d moves", l.ID, result.Winner, result.Reason, step)
			gm := metrics.GameMetric{
				Winner:     int(result.Winner),
				Reason:     result.Reason,
				StartTime:  start,
				EndTime:    time.Now(),
				Duration:   time.Since(start),
				TotalMoves: step,
			}
			return result, gm, records, nil
		}

		if l.Roll != nil {
			l.State = l.Roll(l.State, l.rng)
		}
		mover := l.Turn(l.State)

		move, ok, metric := l.Agents[mover.Seat()].FindMove(l.State, mover)
		if !ok {
			if l.Pass == nil {
				return game.Result{}, metrics.GameMetric{}, records,
					fmt.Errorf("%s has no legal moves and the game defines no pass", mover)
			}
			log.Debug().Msgf("game %s: %s passes", l.ID, mover)
			l.State = l.Pass(l.State)
			continue
		}

		if l.Equal != nil && !l.legal(move, mover) {
			return game.Result{}, metrics.GameMetric{}, records,
				fmt.Errorf("agent for %s returned an illegal move", mover)
		}

		l.State = l.Engine.ApplyMove(l.State, move)
		step++
		records = append(records, metrics.MoveRecord{
			Game: l.ID.String(),
			MoveMetric: metrics.MoveMetric{
				Step:         step,
				Player:       int(mover),
				SearchMetric: metric,
			},
		})
	}

	return game.Result{}, metrics.GameMetric{}, records, fmt.Errorf("no result after %d turns", MaxTurns)
}

func (l *Local[S, M]) legal(move M, mover game.Player) bool {
	for _, m := range l.Engine.GenerateMoves(l.State, mover) {
		if l.Equal(m, move) {
			return true
		}
	}
	return false
}
