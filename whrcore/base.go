package whrcore

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/whr/numerics"
)

// DefaultW2 is the default rating-variance-per-day in Elo^2 units.
const DefaultW2 = 300.0

// NewBase constructs an empty Base with the given configuration. w2 must
// be positive; pass DefaultW2 for the recommended default.
func NewBase(w2 float64, uncased bool) (*Base, error) {
	if w2 <= 0 {
		return nil, ErrInvalidW2
	}
	return &Base{
		W2:      w2,
		Uncased: uncased,
		index:   make(map[string]int),
	}, nil
}

// foldCaser normalizes a name for case-insensitive lookup. Built once and
// reused: cases.Caser carries no per-call state that would make sharing
// unsafe, and Base itself is single-threaded by contract.
var foldCaser = cases.Fold()

// canonicalName applies the Base's uncased policy to a trimmed name.
func (b *Base) canonicalName(name string) string {
	name = strings.TrimSpace(name)
	if b.Uncased {
		return foldCaser.String(name)
	}
	return name
}

// getOrCreatePlayer looks up a player by canonical name, creating one
// anchored at the Base's configured w2 if absent.
func (b *Base) getOrCreatePlayer(name string) (*Player, int, error) {
	canon := b.canonicalName(name)
	if canon == "" {
		return nil, 0, ErrEmptyName
	}
	if idx, ok := b.index[canon]; ok {
		return b.Players[idx], idx, nil
	}
	p := &Player{
		Name:          canon,
		Omega2Natural: numerics.WienerVariance(b.W2),
	}
	idx := len(b.Players)
	b.Players = append(b.Players, p)
	b.index[canon] = idx
	return p, idx, nil
}

// Player looks up a player by name under the Base's case-folding policy.
// It returns ErrUnknownPlayer if the player has never appeared in a game.
func (b *Base) Player(name string) (*Player, error) {
	canon := b.canonicalName(name)
	idx, ok := b.index[canon]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return b.Players[idx], nil
}

// dayAt returns the PlayerDay for the given day via binary search over
// the sorted Days slice, or nil if no such day exists.
func (p *Player) dayAt(day int) *PlayerDay {
	i := sort.Search(len(p.Days), func(i int) bool { return p.Days[i].Day >= day })
	if i < len(p.Days) && p.Days[i].Day == day {
		return p.Days[i]
	}
	return nil
}

// getOrCreateDay returns the PlayerDay for day, inserting a new node in
// sorted position and relinking prev/next if none exists yet.
func (p *Player) getOrCreateDay(day, playerIdx int) *PlayerDay {
	i := sort.Search(len(p.Days), func(i int) bool { return p.Days[i].Day >= day })
	if i < len(p.Days) && p.Days[i].Day == day {
		return p.Days[i]
	}

	pd := &PlayerDay{Day: day, PlayerIdx: playerIdx, player: p}
	p.Days = append(p.Days, nil)
	copy(p.Days[i+1:], p.Days[i:])
	p.Days[i] = pd
	p.relink()
	return pd
}

// relink rebuilds every PlayerDay's prev/next pointers from the current
// (sorted) Days order. Called after any insertion and after persistence
// load, since prev/next are unexported and therefore never serialized.
func (p *Player) relink() {
	var prev *PlayerDay
	for _, pd := range p.Days {
		pd.player = p
		pd.prev = prev
		if prev != nil {
			prev.next = pd
		}
		prev = pd
	}
	if prev != nil {
		prev.next = nil
	}
}

// CreateGame records one pairwise result. It looks up or creates both
// players (applying case-folding if configured), looks up or creates the
// PlayerDay for each side on day (preserving the sorted-unique
// invariant), and appends an immutable Game referenced by both nodes.
//
// Returns ErrInvalidWinner if winner is not "B" or "W", ErrInvalidDay if
// day <= 0, and ErrEmptyName if either name is empty after trimming.
func (b *Base) CreateGame(black, white string, winner Winner, day int, handicap float64) error {
	if !winner.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidWinner, winner)
	}
	if day <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}

	blackPlayer, blackIdx, err := b.getOrCreatePlayer(black)
	if err != nil {
		return err
	}
	whitePlayer, whiteIdx, err := b.getOrCreatePlayer(white)
	if err != nil {
		return err
	}

	g := Game{
		BlackIdx: blackIdx,
		WhiteIdx: whiteIdx,
		Winner:   winner,
		Day:      day,
		Handicap: handicap,
	}
	gameIdx := len(b.Games)
	b.Games = append(b.Games, g)

	ref := GameRef{Index: gameIdx}
	blackDay := blackPlayer.getOrCreateDay(day, blackIdx)
	blackDay.Games = append(blackDay.Games, ref)
	whiteDay := whitePlayer.getOrCreateDay(day, whiteIdx)
	whiteDay.Games = append(whiteDay.Games, ref)

	return nil
}

// RebuildLinks restores every unexported runtime field (player back-refs,
// prev/next navigation, the name index) after a Base is constructed from
// persisted data, where those fields were never serialized. Callers that
// decode a Base with encoding/gob must call this once before using it.
func (b *Base) RebuildLinks() {
	b.index = make(map[string]int, len(b.Players))
	for idx, p := range b.Players {
		b.index[p.Name] = idx
		p.relink()
		for _, pd := range p.Days {
			pd.PlayerIdx = idx
		}
	}
}
