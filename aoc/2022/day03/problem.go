package aoc2022day03

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

const groupSize = 3

var (
	ErrInvalidItem     = errors.New("invalid item")
	ErrOddRucksack     = errors.New("rucksack has an odd number of items")
	ErrNoCommonItem    = errors.New("no common item")
	ErrIncompleteGroup = errors.New("incomplete elf group")
)

func Run(src input.Source, _ *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	lines := nonEmpty(input.Lines(raw))
	logger.Debug().Int("rucksacks", len(lines)).Msg("rucksacks loaded")

	p1, err := part1(lines)
	if err != nil {
		return err
	}
	p2, err := part2(lines)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "AoC 2022, Day03 part1 solution is: %d\n", p1)
	fmt.Fprintf(out, "AoC 2022, Day03 part2 solution is: %d\n", p2)
	return nil
}

func part1(lines []string) (int, error) {
	total := 0
	for i, line := range lines {
		if len(line)%2 != 0 {
			return 0, fmt.Errorf("line %d: %w: %q", i+1, ErrOddRucksack, line)
		}
		half := len(line) / 2
		item, err := commonItem(line[:half], line[half:])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		p, err := priority(item)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

func part2(lines []string) (int, error) {
	if len(lines)%groupSize != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks", ErrIncompleteGroup, len(lines))
	}

	total := 0
	for i := 0; i < len(lines); i += groupSize {
		badge, err := commonItem(lines[i : i+groupSize]...)
		if err != nil {
			return 0, fmt.Errorf("group starting at line %d: %w", i+1, err)
		}
		p, err := priority(badge)
		if err != nil {
			return 0, fmt.Errorf("group starting at line %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

// priority maps a..z to 1..26 and A..Z to 27..52.
func priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidItem, item)
}

// commonItem returns the item type present in every pack.
func commonItem(packs ...string) (byte, error) {
	if len(packs) == 0 {
		return 0, ErrNoCommonItem
	}

	common := toSet(packs[0])
	for _, pack := range packs[1:] {
		other := toSet(pack)
		for item := range common {
			if !other[item] {
				delete(common, item)
			}
		}
	}

	for item := range common {
		return item, nil
	}
	return 0, fmt.Errorf("%w in %q", ErrNoCommonItem, packs)
}

func toSet(s string) map[byte]bool {
	set := make(map[byte]bool, len(s))
	for i := 0; i < len(s); i++ {
		set[s[i]] = true
	}
	return set
}

func nonEmpty(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}
