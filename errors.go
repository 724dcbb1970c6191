package whr

import "errors"

// Sentinel errors specific to the facade package. Errors originating in
// the data model or solver (ErrInvalidWinner, ErrUnknownPlayer,
// *solver.NumericalFaultError, ...) propagate unwrapped or wrapped with
// %w, so errors.Is/errors.As against the originating package's sentinels
// keeps working across this facade.
var (
	// ErrMalformedLine indicates a LoadGames input line did not match
	// the expected grammar (BLACK S WHITE S WINNER S DAY [...]).
	ErrMalformedLine = errors.New("whr: malformed game line")

	// ErrPersistence indicates a Load call's byte stream did not decode
	// as a Registry, or decoded to an inconsistent state.
	ErrPersistence = errors.New("whr: persistence round-trip failed")
)
