package whr

import (
	"math"
	"sort"

	"github.com/katalvlaran/whr/numerics"
	"github.com/katalvlaran/whr/solver"
	"github.com/katalvlaran/whr/whrcore"
)

// RatingEntry is one row of a day-indexed rating triple, as returned by
// RatingsForPlayer and GetOrderedRatings.
type RatingEntry struct {
	Day            int
	Elo            float64
	UncertaintyElo float64 // zero when the caller asked for compact output
}

// Rating pairs a RatingEntry with the player it belongs to, for
// GetOrderedRatings's flattened, cross-player output.
type Rating struct {
	Name string
	RatingEntry
}

// RatingsForPlayer returns [day, Elo, uncertainty-Elo] triples for name,
// in day order. It fails with whrcore.ErrUnknownPlayer if name has never
// appeared in a recorded game.
func (r *Registry) RatingsForPlayer(name string) ([]RatingEntry, error) {
	p, err := r.base.Player(name)
	if err != nil {
		return nil, err
	}
	return playerEntries(r.base, p, false), nil
}

// GetOrderedRatings returns every player's rating(s) sorted by Elo
// descending, breaking ties by canonical name ascending: most-recent
// Elo alone is not a total order when two players are exactly tied, so
// a deterministic secondary key keeps repeated calls stable.
//
// current=true restricts the output to each player's single latest
// PlayerDay; current=false returns one entry per PlayerDay of every
// player (a full historical breakdown), still sorted by that entry's
// Elo. compact=true omits UncertaintyElo (left at zero) to skip its
// computation entirely.
func (r *Registry) GetOrderedRatings(current, compact bool) []Rating {
	var out []Rating
	for _, p := range r.base.Players {
		if current {
			pd := p.Latest()
			if pd == nil {
				continue
			}
			out = append(out, Rating{Name: p.Name, RatingEntry: entryFor(r.base, p, pd, compact)})
			continue
		}
		for _, e := range playerEntries(r.base, p, compact) {
			out = append(out, Rating{Name: p.Name, RatingEntry: e})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Elo != out[j].Elo {
			return out[i].Elo > out[j].Elo
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ProbabilityFutureMatch predicts the outcome of a hypothetical game
// between black and white using each player's most recent rating (0, the
// default new-player rating, for a name never seen before), applying
// Bradley-Terry with handicap folded into white's side exactly as a
// recorded game would be. It never fails: an unknown player is simply
// treated as a brand-new player at rating 0, so a prediction can always
// be made even before either side has a recorded game.
func (r *Registry) ProbabilityFutureMatch(black, white string, handicap float64) (pBlack, pWhite float64) {
	blackR := latestRatingOrZero(r.base, black)
	whiteR := latestRatingOrZero(r.base, white) + numerics.EloToNatural(handicap)

	blackGamma := math.Exp(blackR)
	whiteGamma := math.Exp(whiteR)
	pBlack = blackGamma / (blackGamma + whiteGamma)
	return pBlack, 1 - pBlack
}

func latestRatingOrZero(base *whrcore.Base, name string) float64 {
	p, err := base.Player(name)
	if err != nil {
		return 0
	}
	pd := p.Latest()
	if pd == nil {
		return 0
	}
	return pd.R
}

// playerEntries builds one RatingEntry per PlayerDay of p, in day order.
func playerEntries(base *whrcore.Base, p *whrcore.Player, compact bool) []RatingEntry {
	var uncertainties []float64
	if !compact {
		uncertainties = solver.UncertaintyElo(base, p)
	}
	entries := make([]RatingEntry, len(p.Days))
	for i, pd := range p.Days {
		e := RatingEntry{Day: pd.Day, Elo: pd.Elo()}
		if !compact {
			e.UncertaintyElo = uncertainties[i]
		}
		entries[i] = e
	}
	return entries
}

func entryFor(base *whrcore.Base, p *whrcore.Player, pd *whrcore.PlayerDay, compact bool) RatingEntry {
	e := RatingEntry{Day: pd.Day, Elo: pd.Elo()}
	if !compact {
		elos := solver.UncertaintyElo(base, p)
		for i, d := range p.Days {
			if d == pd {
				e.UncertaintyElo = elos[i]
				break
			}
		}
	}
	return e
}
