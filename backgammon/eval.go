package backgammon

import "tabletop/game"

// Evaluation weights. Tuning detail, but the ordering matters: borne-off
// checkers outweigh bar checkers, which outweigh pips, which outweigh the
// positional bonuses and penalties.
const (
	borneOffWeight    = 40.0
	barPenalty        = 25.0
	pipWeight         = 1.0
	madePointBonus    = 3.0
	homePointBonus    = 2.0
	blockPointBonus   = 2.0
	blotPenalty       = 4.0
	deepBlotPenalty   = 4.0
	exposedBlotExtra  = 2.0
	exposureThreshold = 4
	raceLeadBonus     = 10.0
	raceLeadMargin    = 20
	bearOffReadyBonus = 15.0
)

// Evaluate scores s from player's perspective as the difference of the two
// players' component sums: race progress, bar and borne-off counts, made
// points, and blot exposure.
func (Engine) Evaluate(s State, player game.Player) float64 {
	opponent := player.Opponent()

	score := borneOffWeight * float64(s.BorneOff[player.Seat()]-s.BorneOff[opponent.Seat()])
	score -= barPenalty * float64(s.BarCount[player.Seat()]-s.BarCount[opponent.Seat()])

	myPips := PipCount(s, player)
	theirPips := PipCount(s, opponent)
	score += pipWeight * float64(theirPips-myPips)

	score += s.structureScore(player) - s.structureScore(opponent)

	switch {
	case theirPips-myPips > raceLeadMargin:
		score += raceLeadBonus
	case myPips-theirPips > raceLeadMargin:
		score -= raceLeadBonus
	}

	if s.allHome(player) {
		score += bearOffReadyBonus
	}
	if s.allHome(opponent) {
		score -= bearOffReadyBonus
	}

	return score
}

// structureScore tallies made points and blots for one player. Made points
// count extra in the home board and on the opponent's entry points; blots
// count extra deep in the opponent's home or with many checkers still
// positioned to hit them.
func (s State) structureScore(p game.Player) float64 {
	opponent := p.Opponent()
	var score float64

	for idx := 0; idx < NumPoints; idx++ {
		n := s.count(p, idx)
		switch {
		case n >= 2:
			score += madePointBonus
			if inHome(p, idx) {
				score += homePointBonus
			}
			if inHome(opponent, idx) {
				score += blockPointBonus
			}
		case n == 1:
			penalty := blotPenalty
			if inHome(opponent, idx) {
				penalty += deepBlotPenalty
			}
			if s.hitters(p, idx) >= exposureThreshold {
				penalty += exposedBlotExtra
			}
			score -= penalty
		}
	}
	return score
}

// hitters counts opponent checkers that have not yet passed p's checker at
// idx and so could still land on it.
func (s State) hitters(p game.Player, idx int) int {
	opponent := p.Opponent()
	n := s.BarCount[opponent.Seat()]
	for i := 0; i < NumPoints; i++ {
		// Behind idx in the opponent's direction of travel.
		if direction(opponent) > 0 && i >= idx {
			break
		}
		if direction(opponent) < 0 && i <= idx {
			continue
		}
		n += s.count(opponent, i)
	}
	return n
}
