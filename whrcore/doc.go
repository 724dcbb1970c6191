// Package whrcore defines the owned data graph behind whole-history
// rating: Player, PlayerDay, Game and the Base that roots them.
//
// Base owns every Player by canonical name and every Game in one flat,
// append-only slice; PlayerDay nodes reference games by stable integer
// index rather than by pointer, so the graph that would otherwise form
// a PlayerDay <-> Game <-> PlayerDay cycle is instead a tree (Base owns
// Players, Player owns PlayerDays) plus flat index references. That
// keeps the whole structure cleanly round-trippable through encoding/gob
// without the identity-loss problems cyclic pointer graphs cause there.
//
// Invariants maintained by every exported mutator:
//
//	1. Every Game referenced by a PlayerDay exists in Base.Games.
//	2. For each Game, both the black and white PlayerDay contain a
//	   reference back to it.
//	3. A Player's Days slice is sorted by Day, strictly increasing.
//	4. Every PlayerDay.R is a finite float64; newly created nodes start
//	   at r=0.
//
// This package does no inference: it has no notion of Newton steps,
// gradients or Hessians. Package solver consumes whrcore's exported
// types to do that work.
package whrcore
