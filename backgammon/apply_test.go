package backgammon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tabletop/game"
)

func TestApplyMoveHit(t *testing.T) {
	var s State
	s.CurrentPlayer = game.Player1
	s.Board[10] = 1
	s.Board[20] = 14
	s.Board[7] = -1 // the blot
	s.Board[18] = -14
	s.Dice = []int{3}

	next := New().ApplyMove(s, Move{From: 10, To: 7, Die: 3})

	require.Equal(t, 1, next.Board[7], "The mover's checker now owns the point")
	require.Equal(t, 1, next.BarCount[game.Player2.Seat()], "The blot goes to the bar in the same transition")
	require.Equal(t, CheckersPerSide, totalCheckers(next, game.Player1))
	require.Equal(t, CheckersPerSide, totalCheckers(next, game.Player2))
}

func TestApplyMoveImmutable(t *testing.T) {
	s := NewState().WithRoll(6, 5)
	before := s.clone()

	New().ApplyMove(s, Move{From: 23, To: 17, Die: 6})

	require.Equal(t, before.Board, s.Board)
	require.Equal(t, before.Dice, s.Dice)
	require.Equal(t, before.BarCount, s.BarCount)
	require.Equal(t, before.BorneOff, s.BorneOff)
	require.Equal(t, before.CurrentPlayer, s.CurrentPlayer)
}

func TestApplyMoveConsumesOneDie(t *testing.T) {
	t.Run("doubles shrink one at a time", func(t *testing.T) {
		s := NewState().WithRoll(3, 3)
		eng := New()

		s = eng.ApplyMove(s, Move{From: 7, To: 4, Die: 3})
		require.Equal(t, []int{3, 3, 3}, s.Dice)
		require.Equal(t, game.Player1, s.CurrentPlayer, "Turn continues while dice remain")
	})

	t.Run("bar entry consumes its die", func(t *testing.T) {
		var s State
		s.CurrentPlayer = game.Player1
		s.BarCount[game.Player1.Seat()] = 1
		s.Board[12] = 14
		s.Dice = []int{3, 5}

		next := New().ApplyMove(s, Move{From: Bar, To: 21, Die: 3})

		require.Zero(t, next.BarCount[game.Player1.Seat()])
		require.Equal(t, 1, next.Board[21])
		require.Equal(t, []int{5}, next.Dice)
	})

	t.Run("bear-off increments borne off", func(t *testing.T) {
		var s State
		s.CurrentPlayer = game.Player1
		s.Board[3] = 2
		s.BorneOff[game.Player1.Seat()] = 13
		s.Dice = []int{4}

		next := New().ApplyMove(s, Move{From: 3, To: Off, Die: 4})

		require.Equal(t, 14, next.BorneOff[game.Player1.Seat()])
		require.Equal(t, 1, next.Board[3])
		require.Equal(t, CheckersPerSide, totalCheckers(next, game.Player1))
	})
}

func TestResultClassification(t *testing.T) {
	// winnerState builds a position where Player1 has borne off 14 and one
	// last checker at point 0, ready to win with a 1.
	winnerState := func(mutate func(*State)) State {
		var s State
		s.CurrentPlayer = game.Player1
		s.Board[0] = 1
		s.BorneOff[game.Player1.Seat()] = 14
		s.Dice = []int{1}
		mutate(&s)
		return s
	}
	eng := New()

	t.Run("ongoing game has no result", func(t *testing.T) {
		require.False(t, eng.Result(NewState()).Finished)
	})

	t.Run("single when the loser has borne off", func(t *testing.T) {
		s := winnerState(func(s *State) {
			s.BorneOff[game.Player2.Seat()] = 3
			s.Board[20] = -12
		})
		final := eng.ApplyMove(s, Move{From: 0, To: Off, Die: 1})

		result := eng.Result(final)
		require.True(t, result.Finished)
		require.Equal(t, game.Player1, result.Winner)
		require.Equal(t, "Single (1x)", result.Reason)
	})

	t.Run("gammon when the loser has borne off nothing", func(t *testing.T) {
		s := winnerState(func(s *State) {
			s.Board[20] = -15 // all safe in Player2's own home
		})
		final := eng.ApplyMove(s, Move{From: 0, To: Off, Die: 1})

		result := eng.Result(final)
		require.True(t, result.Finished)
		require.Equal(t, "Gammon (2x)", result.Reason)
	})

	t.Run("backgammon when the loser is still on the bar", func(t *testing.T) {
		s := winnerState(func(s *State) {
			s.BarCount[game.Player2.Seat()] = 1
			s.Board[20] = -14
		})
		final := eng.ApplyMove(s, Move{From: 0, To: Off, Die: 1})

		result := eng.Result(final)
		require.True(t, result.Finished)
		require.Equal(t, game.Player1, result.Winner)
		require.Equal(t, "Backgammon (3x)", result.Reason)
	})

	t.Run("backgammon when the loser is trapped in the winner's home", func(t *testing.T) {
		s := winnerState(func(s *State) {
			s.Board[2] = -1 // inside Player1's home
			s.Board[20] = -14
		})
		final := eng.ApplyMove(s, Move{From: 0, To: Off, Die: 1})

		result := eng.Result(final)
		require.Equal(t, "Backgammon (3x)", result.Reason)
	})

	t.Run("result query is idempotent", func(t *testing.T) {
		s := winnerState(func(s *State) { s.Board[20] = -15 })
		final := eng.ApplyMove(s, Move{From: 0, To: Off, Die: 1})

		require.Equal(t, eng.Result(final), eng.Result(final))
	})
}
