package backgammon

import "tabletop/game"

// Engine implements the game contract for backgammon. It is stateless; all
// position data lives in State values.
type Engine struct{}

func New() Engine {
	return Engine{}
}

// GenerateMoves returns every legal single-die move for player. With
// checkers on the bar only entry moves are produced; board moves stay
// suppressed until the bar is empty.
func (Engine) GenerateMoves(s State, player game.Player) []Move {
	if len(s.Dice) == 0 {
		return nil
	}
	dice := distinctDice(s.Dice)

	if s.BarCount[player.Seat()] > 0 {
		var moves []Move
		for _, die := range dice {
			to := entryPoint(player, die)
			if s.open(player, to) {
				moves = append(moves, Move{From: Bar, To: to, Die: die})
			}
		}
		return moves
	}

	canBearOff := s.allHome(player)
	furthest := s.furthestPoint(player)

	var moves []Move
	for from := 0; from < NumPoints; from++ {
		if !s.owns(player, from) {
			continue
		}
		for _, die := range dice {
			to := from + die*direction(player)
			if to >= 0 && to < NumPoints {
				if s.open(player, to) {
					moves = append(moves, Move{From: from, To: to, Die: die})
				}
				continue
			}
			// Off the end of the board: a bear-off candidate.
			if !canBearOff {
				continue
			}
			need := distanceOff(player, from)
			// An exact die always bears off. A larger die only bears off
			// the furthest checker.
			if die == need || (die > need && from == furthest) {
				moves = append(moves, Move{From: from, To: Off, Die: die})
			}
		}
	}
	return moves
}

// ApplyMove consumes one die and returns the successor snapshot. Hits are
// resolved atomically: the blot leaves the board and lands on the bar in
// the same transition. When the last die is consumed the turn passes and
// the new state has no dice until the caller rolls.
func (Engine) ApplyMove(s State, m Move) State {
	ns := s.clone()
	mover := s.moverOf(m)
	seat := mover.Seat()

	if m.From == Bar {
		ns.BarCount[seat]--
	} else {
		ns.Board[m.From] -= sign(mover)
	}

	if m.To == Off {
		ns.BorneOff[seat]++
	} else {
		if ns.Board[m.To]*sign(mover.Opponent()) == 1 {
			// Hit: the lone defender goes to the bar.
			ns.Board[m.To] = 0
			ns.BarCount[mover.Opponent().Seat()]++
		}
		ns.Board[m.To] += sign(mover)
	}

	for i, die := range ns.Dice {
		if die == m.Die {
			ns.Dice = append(ns.Dice[:i], ns.Dice[i+1:]...)
			break
		}
	}

	ns.CurrentPlayer = mover
	if len(ns.Dice) == 0 {
		ns.CurrentPlayer = mover.Opponent()
	}
	return ns
}

// moverOf infers which player a generated move belongs to. Board moves are
// owned by the checker at the source point; bar entries land in the
// opponent's home, which the two players never share.
func (s State) moverOf(m Move) game.Player {
	if m.From == Bar {
		if m.To >= 18 {
			return game.Player1
		}
		return game.Player2
	}
	if s.Board[m.From] > 0 {
		return game.Player1
	}
	return game.Player2
}

// Result reports a win the instant a player bears off the 15th checker,
// classified by the loser's position into single, gammon, or backgammon.
func (Engine) Result(s State) game.Result {
	for _, p := range []game.Player{game.Player1, game.Player2} {
		if s.BorneOff[p.Seat()] == CheckersPerSide {
			return game.Result{Finished: true, Winner: p, Reason: s.winReason(p)}
		}
	}
	return game.Result{}
}

func (s State) winReason(winner game.Player) string {
	loser := winner.Opponent()
	if s.BorneOff[loser.Seat()] > 0 {
		return "Single (1x)"
	}
	if s.BarCount[loser.Seat()] > 0 || s.loserInWinnerHome(winner) {
		return "Backgammon (3x)"
	}
	return "Gammon (2x)"
}

func (s State) loserInWinnerHome(winner game.Player) bool {
	loser := winner.Opponent()
	for idx := 0; idx < NumPoints; idx++ {
		if inHome(winner, idx) && s.owns(loser, idx) {
			return true
		}
	}
	return false
}

// distinctDice collapses doubles so each die value generates once.
func distinctDice(dice []int) []int {
	out := dice[:0:0]
	for _, die := range dice {
		seen := false
		for _, d := range out {
			if d == die {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, die)
		}
	}
	return out
}
