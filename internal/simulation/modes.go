package simulation

import (
	"snakearena/internal/collision"
	"snakearena/internal/world"
)

// absorbPowerup consumes a powerup: default and poison modes credit score
// and growth, venom mode credits venom time instead.
func (st *Step) absorbPowerup(s *world.Snake, p *world.Powerup) {
	p.Died = true
	if st.settings.GameModeValue() == world.ModeVenom {
		s.Venomous = true
		s.VenomCounter += st.settings.VenomCounterTicks()
		return
	}
	s.Score += world.PowerupScore
	s.Growth += st.settings.SnakeGrowthFrames
}

// resolveInterSnake applies the active game mode's kill/absorb rule to an
// inter-snake collision where s's head struck other's body. mutual
// indicates other's head has also struck s's body on this same tick
// (a true head-to-head); sFirst indicates s precedes other in insertion
// order, used only to break an exact-score head-to-head tie.
func (st *Step) resolveInterSnake(s, other *world.Snake, mutual, sFirst bool) {
	switch st.settings.GameModeValue() {
	case world.ModePoison:
		if mutual {
			victim, survivor := st.headToHeadOutcome(s, other, sFirst)
			st.absorbScore(survivor, victim)
			return
		}
		st.absorbScore(other, s)
	case world.ModeVenom:
		switch {
		case mutual && s.Venomous && other.Venomous:
			victim, survivor := st.headToHeadOutcome(s, other, sFirst)
			st.venomAbsorb(survivor, victim)
		case s.Venomous:
			st.venomAbsorb(s, other)
		default:
			st.killSnake(s)
		}
	default: // world.ModeDefault
		if mutual {
			victim, _ := st.headToHeadOutcome(s, other, sFirst)
			st.killSnake(victim)
			return
		}
		st.killSnake(s)
	}
}

// headToHeadOutcome resolves which of s/other loses a mutual head-to-head
// collision, per collision.ResolveHeadToHead's tiebreak.
func (st *Step) headToHeadOutcome(s, other *world.Snake, sFirst bool) (victim, survivor *world.Snake) {
	loserID := collision.ResolveHeadToHead(s.ID, other.ID, s.Score, other.Score, sFirst)
	if loserID == s.ID {
		return s, other
	}
	return other, s
}

// absorbScore implements poison mode's absorption: survivor gains victim's
// score and a proportional growth credit, then victim dies.
func (st *Step) absorbScore(survivor, victim *world.Snake) {
	credit := victim.Score
	survivor.Score += credit
	survivor.Growth += credit / world.PowerupScore * st.settings.SnakeGrowthFrames
	st.killSnake(victim)
}

// venomAbsorb implements venom mode's absorption: survivor gains at least
// one powerup-score's worth of credit and stays venomous with its timer
// untouched; victim dies.
func (st *Step) venomAbsorb(survivor, victim *world.Snake) {
	credit := victim.Score
	if credit == 0 {
		credit = world.PowerupScore
	}
	survivor.Score += credit
	st.killSnake(victim)
}

// killSnake resets a snake to its dead state and arms the respawn timer.
// Used for self-collision, wall collision, and every mode's "loser dies"
// branch.
func (st *Step) killSnake(s *world.Snake) {
	s.Alive = false
	s.Died = true
	s.Respawn = st.settings.RespawnRate
	s.Growth = 0
	s.Score = 0
	s.Venomous = false
	s.VenomCounter = 0
}
