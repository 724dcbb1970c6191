package whr

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/katalvlaran/whr/solver"
	"github.com/katalvlaran/whr/whrcore"
)

// Save serializes the Registry's entire Base (every Player, PlayerDay and
// Game) with encoding/gob. Only exported fields survive the round trip;
// PlayerDay's prev/next/player back-references and Base's name index are
// unexported by design and are not part of the encoded stream (see
// whrcore.Base.RebuildLinks).
func (r *Registry) Save() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r.base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return buf.Bytes(), nil
}

// Load decodes data produced by Save into a new Registry, configured with
// opts exactly as New would be, then rebuilds the unexported navigation
// links gob never serialized. The decoded Base's own W2/Uncased fields
// are preserved regardless of opts; opts only affects the rebuilt solver
// Driver (for example, WithParallelWorkers).
func Load(data []byte, opts ...Option) (*Registry, error) {
	var base whrcore.Base
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	base.RebuildLinks()

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var driverOpts []solver.Option
	if o.parallel > 1 {
		driverOpts = append(driverOpts, solver.WithParallel(o.parallel))
	}

	return &Registry{
		base:   &base,
		driver: solver.NewDriver(&base, driverOpts...),
	}, nil
}
