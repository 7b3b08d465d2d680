package backgammon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tabletop/game"
)

/**
Evaluation tests assert qualitative orderings, not exact numbers - the
weights are tuning detail, the factor ordering is the contract.
*/

func TestEvaluateSymmetric(t *testing.T) {
	s := NewState()
	eng := New()

	require.InDelta(t, 0, eng.Evaluate(s, game.Player1), 1e-9,
		"The mirrored starting position is dead even")
	require.Equal(t, eng.Evaluate(s, game.Player1), -eng.Evaluate(s, game.Player2))
}

func TestEvaluateBorneOffDominates(t *testing.T) {
	var behind State
	behind.Board[2] = 2
	behind.BorneOff[game.Player1.Seat()] = 13
	behind.Board[20] = -15

	ahead := behind
	ahead.Board[2] = 1
	ahead.BorneOff[game.Player1.Seat()] = 14

	eng := New()
	require.Greater(t, eng.Evaluate(ahead, game.Player1), eng.Evaluate(behind, game.Player1),
		"More checkers borne off must score higher, all else equal")
}

func TestEvaluateBarHurts(t *testing.T) {
	var onBoard State
	onBoard.Board[22] = 1
	onBoard.Board[5] = 14
	onBoard.Board[18] = -15

	onBar := onBoard
	onBar.Board[22] = 0
	onBar.BarCount[game.Player1.Seat()] = 1

	eng := New()
	require.Greater(t, eng.Evaluate(onBoard, game.Player1), eng.Evaluate(onBar, game.Player1),
		"A checker on the bar is worse than the same checker on the board")
}

func TestEvaluatePipLead(t *testing.T) {
	var far State
	far.Board[20] = 1
	far.Board[5] = 14
	far.Board[11] = -15

	near := far
	near.Board[20] = 0
	near.Board[4] = 1 // same checker, much closer to home

	eng := New()
	require.Greater(t, eng.Evaluate(near, game.Player1), eng.Evaluate(far, game.Player1),
		"Lower pip count must score higher")
}

func TestEvaluateIdempotent(t *testing.T) {
	s := NewState().WithRoll(3, 1)
	eng := New()

	require.Equal(t, eng.Evaluate(s, game.Player1), eng.Evaluate(s, game.Player1))
}
