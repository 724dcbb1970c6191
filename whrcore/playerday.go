package whrcore

import (
	"math"

	"github.com/katalvlaran/whr/numerics"
)

// RatingSnapshot freezes every PlayerDay's rating at a point in time,
// keyed by player index then by day. A nil RatingSnapshot means "read
// live" (the default, Gauss-Seidel sweep); a non-nil one lets the
// parallel Jacobi driver variant compute every player's Newton step
// against ratings as they stood before the sweep began, rather than as
// other goroutines concurrently mutate them.
type RatingSnapshot map[int]map[int]float64

// Snapshot copies every current PlayerDay.R into a RatingSnapshot.
func (b *Base) Snapshot() RatingSnapshot {
	snap := make(RatingSnapshot, len(b.Players))
	for idx, p := range b.Players {
		days := make(map[int]float64, len(p.Days))
		for _, pd := range p.Days {
			days[pd.Day] = pd.R
		}
		snap[idx] = days
	}
	return snap
}

// ratingAt resolves the natural rating of playerIdx on day, either live
// from Base or from a frozen snapshot.
func (b *Base) ratingAt(snap RatingSnapshot, playerIdx, day int) float64 {
	if snap != nil {
		return snap[playerIdx][day]
	}
	pd := b.Players[playerIdx].dayAt(day)
	return pd.R
}

// GameTerms precomputes, for each game referenced by pd, the opponent's
// effective gamma (handicap folded in if the opponent is white) and
// whether pd's owner won. It is rebuilt fresh on every call rather than
// stored on PlayerDay, since it must reflect the opponents' current
// ratings and those change every sweep.
//
// snap, if non-nil, freezes opponent ratings to a Snapshot taken before
// the current sweep (see RatingSnapshot); pass nil for the default
// Gauss-Seidel behavior of reading opponents' ratings live.
func (pd *PlayerDay) GameTerms(base *Base, snap RatingSnapshot) []GameTerm {
	terms := make([]GameTerm, 0, len(pd.Games))
	for _, ref := range pd.Games {
		g := base.Games[ref.Index]

		isBlack := pd.PlayerIdx == g.BlackIdx
		var oppIdx int
		var selfHandicap, oppHandicap float64
		if isBlack {
			oppIdx = g.WhiteIdx
			oppHandicap = g.Handicap
		} else {
			oppIdx = g.BlackIdx
			selfHandicap = g.Handicap
		}

		oppR := base.ratingAt(snap, oppIdx, g.Day)
		won := (isBlack && g.Winner == WinnerBlack) || (!isBlack && g.Winner == WinnerWhite)

		terms = append(terms, GameTerm{
			SelfHandicap:  numerics.EloToNatural(selfHandicap),
			OpponentGamma: math.Exp(oppR + numerics.EloToNatural(oppHandicap)),
			Won:           won,
		})
	}
	return terms
}

// Elo returns this PlayerDay's rating converted to Elo units.
func (pd *PlayerDay) Elo() float64 {
	return numerics.NaturalToElo(pd.R)
}

// UncertaintyElo converts a natural-scale variance v2 (as produced by the
// solver's Laplace approximation) into an Elo-scale standard deviation.
func UncertaintyElo(v2 float64) float64 {
	return math.Sqrt(v2) * numerics.EloPerNatural
}
