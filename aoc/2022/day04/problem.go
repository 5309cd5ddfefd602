package aoc2022day04

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

var ErrMalformedPair = errors.New("malformed section pair")

func Run(src input.Source, _ *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	pairs, err := parsePairs(input.Lines(raw))
	if err != nil {
		return err
	}
	logger.Debug().Int("pairs", len(pairs)).Msg("assignments parsed")

	fmt.Fprintf(out, "AoC 2022, Day04, Part1 solution is: %d\n", part1(pairs))
	fmt.Fprintf(out, "AoC 2022, Day04, Part2 solution is: %d\n", part2(pairs))
	return nil
}

func part1(pairs [][2]Range) int {
	total := 0
	for _, p := range pairs {
		if p[0].Contains(p[1]) || p[1].Contains(p[0]) {
			total += 1
		}
	}
	return total
}

func part2(pairs [][2]Range) int {
	total := 0
	for _, p := range pairs {
		if p[0].Overlaps(p[1]) {
			total += 1
		}
	}
	return total
}

func parsePairs(lines []string) ([][2]Range, error) {
	pairs := [][2]Range{}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: %w: no comma in %q", i+1, ErrMalformedPair, line)
		}
		l, err := ParseRange(left)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		r, err := ParseRange(right)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, [2]Range{l, r})
	}
	return pairs, nil
}
