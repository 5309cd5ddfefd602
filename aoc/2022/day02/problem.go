package aoc2022day02

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrUnknownOutcome = errors.New("unknown outcome")
	ErrMalformedRound = errors.New("malformed round")
)

func Run(src input.Source, _ *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	lines := input.Lines(raw)
	logger.Debug().Int("rounds", len(lines)).Msg("strategy guide loaded")

	p1, err := part1(lines)
	if err != nil {
		return err
	}
	p2, err := part2(lines)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "AoC 2022, Day02 part1 solution is: %d\n", p1)
	fmt.Fprintf(out, "AoC 2022, Day02 part2 solution is: %d\n", p2)
	return nil
}

// part1 reads the second column as the shape to play.
func part1(lines []string) (int, error) {
	total := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		opponent, second, err := splitRound(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		opponentShape, err := ParseShape(opponent)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		playerShape, err := ParseShape(second)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		total += playerShape.Score() + Play(playerShape, opponentShape).Score()
	}
	return total, nil
}

// part2 reads the second column as the outcome the round must end with.
func part2(lines []string) (int, error) {
	total := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		opponent, second, err := splitRound(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		opponentShape, err := ParseShape(opponent)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		outcome, err := ParseOutcome(second)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		total += ShapeFor(opponentShape, outcome).Score() + outcome.Score()
	}
	return total, nil
}

func splitRound(line string) (byte, byte, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedRound, line)
	}
	return fields[0][0], fields[1][0], nil
}
