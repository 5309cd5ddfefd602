package aoc2022day01

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

var ErrNoElves = errors.New("no elves in input")

func Run(src input.Source, cfg *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	calories, err := getCalories(input.Lines(raw))
	if err != nil {
		return err
	}
	logger.Debug().Int("elves", len(calories)).Msg("calories parsed")

	p1, err := part1(calories)
	if err != nil {
		return err
	}
	p2, err := part2(calories, cfg.Day01.TopElves)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "AoC 2022, Day01 part1 solution is: %d\n", p1)
	fmt.Fprintf(out, "AoC 2022, Day01 part2 solution is: %d\n", p2)
	return nil
}

func part1(calories []int) (int, error) {
	if len(calories) == 0 {
		return 0, ErrNoElves
	}
	return slices.Max(calories), nil
}

// part2 sums the calories carried by the top elves. When there are
// fewer elves than requested, all of them are counted.
func part2(calories []int, top int) (int, error) {
	if len(calories) == 0 {
		return 0, ErrNoElves
	}

	sorted := slices.Clone(calories)
	slices.SortFunc(sorted, func(a int, b int) int {
		return b - a
	})

	total := 0
	for _, c := range sorted[:min(top, len(sorted))] {
		total += c
	}
	return total, nil
}

// getCalories groups blank-line separated numbers, one total per elf.
func getCalories(lines []string) ([]int, error) {
	acc := []int{}
	total := 0
	inGroup := false

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if inGroup {
				acc = append(acc, total)
			}
			total = 0
			inGroup = false
			continue
		}

		c, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid calorie count %q: %w", i+1, line, err)
		}
		total += c
		inGroup = true
	}
	if inGroup {
		acc = append(acc, total)
	}

	return acc, nil
}
