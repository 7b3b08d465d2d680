package backgammon

import "tabletop/game"

const (
	NumPoints       = 24
	CheckersPerSide = 15

	// Bar marks a Move.From entering from the bar; Off marks a Move.To
	// bearing a checker off the board.
	Bar = -1
	Off = -2
)

// State is a complete snapshot between single-die moves. Board cells hold
// signed checker counts: positive for Player1, negative for Player2.
// Player1 travels from point 23 toward 0 (home 0-5); Player2 travels from 0
// toward 23 (home 18-23).
type State struct {
	Board         [NumPoints]int
	BarCount      [2]int // checkers waiting to re-enter, by seat
	BorneOff      [2]int // checkers removed from play, by seat
	Dice          []int  // unconsumed die values for the current turn
	CurrentPlayer game.Player
}

// Move consumes exactly one die. A turn is 1-4 moves applied one at a time,
// regenerating legal moves after each since the dice shrink.
type Move struct {
	From int // Bar or 0..23
	To   int // Off or 0..23
	Die  int
}

// NewState returns the standard starting layout with no dice rolled.
func NewState() State {
	var s State
	s.Board[23] = 2
	s.Board[12] = 5
	s.Board[7] = 3
	s.Board[5] = 5
	s.Board[0] = -2
	s.Board[11] = -5
	s.Board[16] = -3
	s.Board[18] = -5
	s.CurrentPlayer = game.Player1
	return s
}

// WithRoll returns a copy of s with the turn's dice set. Doubles yield four
// moves of the same value.
func (s State) WithRoll(d1, d2 int) State {
	ns := s.clone()
	if d1 == d2 {
		ns.Dice = []int{d1, d1, d1, d1}
	} else {
		ns.Dice = []int{d1, d2}
	}
	return ns
}

// Pass forfeits the rest of the turn when no remaining die can be played
// (a blocked bar entry, most commonly).
func (s State) Pass() State {
	ns := s.clone()
	ns.Dice = nil
	ns.CurrentPlayer = s.CurrentPlayer.Opponent()
	return ns
}

func (s State) clone() State {
	ns := s
	ns.Dice = make([]int, len(s.Dice))
	copy(ns.Dice, s.Dice)
	return ns
}

// sign returns +1 for Player1's checkers, -1 for Player2's.
func sign(p game.Player) int {
	if p == game.Player1 {
		return 1
	}
	return -1
}

// direction is the index delta of a one-pip move.
func direction(p game.Player) int {
	if p == game.Player1 {
		return -1
	}
	return 1
}

// entryPoint maps a die value to the board index a bar checker re-enters
// on. The mapping is direction-specific: Player1 enters in 18-23, Player2
// in 0-5.
func entryPoint(p game.Player, die int) int {
	if p == game.Player1 {
		return NumPoints - die
	}
	return die - 1
}

// inHome reports whether index idx lies in p's home board.
func inHome(p game.Player, idx int) bool {
	if p == game.Player1 {
		return idx >= 0 && idx <= 5
	}
	return idx >= 18 && idx <= 23
}

// owns reports whether p has at least one checker at idx.
func (s State) owns(p game.Player, idx int) bool {
	return s.Board[idx]*sign(p) > 0
}

// count returns p's checker count at idx (0 if the point is empty or held
// by the opponent).
func (s State) count(p game.Player, idx int) int {
	n := s.Board[idx] * sign(p)
	if n < 0 {
		return 0
	}
	return n
}

// open reports whether p may land on idx. Only a point held by two or more
// opposing checkers blocks; a lone blot is fair game.
func (s State) open(p game.Player, idx int) bool {
	return s.Board[idx]*sign(p.Opponent()) < 2
}

// distanceOff is the exact die needed to bear off from idx.
func distanceOff(p game.Player, idx int) int {
	if p == game.Player1 {
		return idx + 1
	}
	return NumPoints - idx
}

// allHome reports bear-off eligibility: no bar checkers and every board
// checker inside p's home. Recomputed from the full board every time, never
// cached.
func (s State) allHome(p game.Player) bool {
	if s.BarCount[p.Seat()] > 0 {
		return false
	}
	for idx := 0; idx < NumPoints; idx++ {
		if s.owns(p, idx) && !inHome(p, idx) {
			return false
		}
	}
	return true
}

// furthestPoint returns the index of p's checker furthest from home, or -1
// if p has no board checkers.
func (s State) furthestPoint(p game.Player) int {
	if p == game.Player1 {
		for idx := NumPoints - 1; idx >= 0; idx-- {
			if s.owns(p, idx) {
				return idx
			}
		}
		return -1
	}
	for idx := 0; idx < NumPoints; idx++ {
		if s.owns(p, idx) {
			return idx
		}
	}
	return -1
}

// PipCount is p's total race distance: the pips needed to bring every
// checker home and off. Bar checkers count the full 25.
func PipCount(s State, p game.Player) int {
	pips := 25 * s.BarCount[p.Seat()]
	for idx := 0; idx < NumPoints; idx++ {
		pips += s.count(p, idx) * distanceOff(p, idx)
	}
	return pips
}
