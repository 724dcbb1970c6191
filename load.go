package whr

import (
	"fmt"
	"strconv"
	"strings"
)

// LoadGames parses each line of lines against the game-record grammar:
//
//	BLACK S WHITE S WINNER S DAY [S HANDICAP [S EXTRAS]]
//
// where S is separator (pass ' ' for the common case), BLACK/WHITE are
// trimmed of surrounding whitespace, WINNER is "B" or "W", DAY is a
// positive integer, HANDICAP is an optional integer Elo value (default
// 0), and any further fields (EXTRAS) are ignored. Each parsed line is
// dispatched to CreateGame; a malformed line fails synchronously with
// ErrMalformedLine wrapping the parse failure, and no game is created
// for it, but prior lines in the same call remain recorded.
func (r *Registry) LoadGames(lines []string, separator byte) error {
	sep := string(separator)
	for lineNo, line := range lines {
		fields := strings.Split(line, sep)
		// Split on a single-byte separator can leave empty fields if the
		// input used runs of whitespace; drop them before field counting.
		fields = compactEmpty(fields)

		if len(fields) < 4 {
			return fmt.Errorf("%w: line %d: expected at least 4 fields, got %d", ErrMalformedLine, lineNo+1, len(fields))
		}

		black, white, winner := fields[0], fields[1], fields[2]
		day, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil {
			return fmt.Errorf("%w: line %d: bad day %q: %v", ErrMalformedLine, lineNo+1, fields[3], err)
		}

		handicap := 0.0
		if len(fields) >= 5 {
			h, err := strconv.Atoi(strings.TrimSpace(fields[4]))
			if err != nil {
				return fmt.Errorf("%w: line %d: bad handicap %q: %v", ErrMalformedLine, lineNo+1, fields[4], err)
			}
			handicap = float64(h)
		}
		// fields[5:], if present, are EXTRAS: opaque, ignored by design.

		if err := r.CreateGame(black, white, winner, day, handicap); err != nil {
			return fmt.Errorf("line %d: %w", lineNo+1, err)
		}
	}
	return nil
}

// compactEmpty drops empty strings from fields, so separator runs
// ("A  B") behave like a single separator.
func compactEmpty(fields []string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
