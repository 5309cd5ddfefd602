package aoc2022day05

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

var (
	ErrMissingLabels = errors.New("stack labels line not found")
	ErrMalformedMove = errors.New("malformed move order")
	ErrInvalidMove   = errors.New("invalid move")
)

type Move struct {
	Quantity int
	From     int
	To       int
}

// Stacks holds crates bottom to top, one slice per stack.
type Stacks [][]byte

func (s Stacks) Clone() Stacks {
	clone := make(Stacks, len(s))
	for i, stack := range s {
		clone[i] = slices.Clone(stack)
	}
	return clone
}

// Tops returns the crate on top of each stack, skipping empty ones.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, stack := range s {
		if len(stack) > 0 {
			b.WriteByte(stack[len(stack)-1])
		}
	}
	return b.String()
}

// Apply runs a move order. With multiple set, the crates keep their
// order (CrateMover 9001), otherwise they are moved one at a time.
func (s Stacks) Apply(m Move, multiple bool) error {
	if m.From < 1 || m.From > len(s) || m.To < 1 || m.To > len(s) {
		return fmt.Errorf("%w: unknown stack in %+v", ErrInvalidMove, m)
	}
	src := s[m.From-1]
	if m.Quantity < 0 || m.Quantity > len(src) {
		return fmt.Errorf("%w: cannot take %d crates from stack %d holding %d", ErrInvalidMove, m.Quantity, m.From, len(src))
	}

	taken := slices.Clone(src[len(src)-m.Quantity:])
	s[m.From-1] = src[:len(src)-m.Quantity]
	if !multiple {
		slices.Reverse(taken)
	}
	s[m.To-1] = append(s[m.To-1], taken...)
	return nil
}

func Run(src input.Source, cfg *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	stacks, moves, err := parse(input.Lines(raw))
	if err != nil {
		return err
	}
	logger.Debug().Int("stacks", len(stacks)).Int("moves", len(moves)).Msg("procedure parsed")

	p1, err := rearrange(stacks, moves, false)
	if err != nil {
		return err
	}
	multiple := cfg.Day05.Crane == config.CraneMover9001
	logger.Info().Str("crane", cfg.Day05.Crane).Msg("part 2 crane")
	p2, err := rearrange(stacks, moves, multiple)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "AoC 2022, Day05, Part1 solution is: %s\n", p1)
	fmt.Fprintf(out, "AoC 2022, Day05, Part2 solution is: %s\n", p2)
	return nil
}

func rearrange(initial Stacks, moves []Move, multiple bool) (string, error) {
	stacks := initial.Clone()
	for i, m := range moves {
		if err := stacks.Apply(m, multiple); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return stacks.Tops(), nil
}

func parse(lines []string) (Stacks, []Move, error) {
	labels := slices.IndexFunc(lines, func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), "1")
	})
	if labels < 0 {
		return nil, nil, ErrMissingLabels
	}

	count := len(strings.Fields(lines[labels]))
	stacks := make(Stacks, count)

	// Drawing is read bottom up so crates are appended in stack order
	for i := labels - 1; i >= 0; i-- {
		line := lines[i]
		for k := 0; k < count; k++ {
			col := 4*k + 1
			if col >= len(line) {
				break
			}
			if crate := line[col]; crate >= 'A' && crate <= 'Z' {
				stacks[k] = append(stacks[k], crate)
			}
		}
	}

	moves := []Move{}
	for i, line := range lines[labels+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var m Move
		n, err := fmt.Sscanf(line, "move %d from %d to %d", &m.Quantity, &m.From, &m.To)
		if err != nil || n != 3 {
			return nil, nil, fmt.Errorf("line %d: %w: %q", labels+i+2, ErrMalformedMove, line)
		}
		moves = append(moves, m)
	}

	return stacks, moves, nil
}
