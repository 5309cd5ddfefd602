package aoc2022day04

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive section assignment.
type Range struct {
	Min int
	Max int
}

func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: missing dash in %q", ErrMalformedPair, s)
	}
	from, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrMalformedPair, s, err)
	}
	to, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrMalformedPair, s, err)
	}
	if from > to {
		return Range{}, fmt.Errorf("%w: reversed range %q", ErrMalformedPair, s)
	}
	return Range{Min: from, Max: to}, nil
}

func (r Range) Contains(other Range) bool {
	return r.Min <= other.Min && other.Max <= r.Max
}

func (r Range) Overlaps(other Range) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
