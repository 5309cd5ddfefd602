package aoc2022day05

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/flarcher/AdventOfCode/internal/input/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

const example = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestParse(t *testing.T) {
	stacks, moves, err := parse(input.Lines(example))
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}

	expected := []string{"ZN", "MCD", "P"}
	if len(stacks) != len(expected) {
		t.Fatalf("parse() found %d stacks; want %d", len(stacks), len(expected))
	}
	for i := range expected {
		if string(stacks[i]) != expected[i] {
			t.Errorf("stack %d = %q; want %q", i+1, stacks[i], expected[i])
		}
	}

	if len(moves) != 4 {
		t.Fatalf("parse() found %d moves; want 4", len(moves))
	}
	if moves[1] != (Move{Quantity: 3, From: 1, To: 3}) {
		t.Errorf("moves[1] = %+v; want {3 1 3}", moves[1])
	}
}

func TestParse_TrimmedDrawing(t *testing.T) {
	// Editors often strip trailing spaces of the drawing
	lines := []string{"    [D]", "[N] [C]", "[Z] [M] [P]", " 1   2   3", "", "move 1 from 2 to 1"}

	stacks, _, err := parse(lines)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if stacks.Tops() != "NDP" {
		t.Errorf("Tops() = %q; want NDP", stacks.Tops())
	}
}

func TestRearrange(t *testing.T) {
	stacks, moves, _ := parse(input.Lines(example))

	tests := []struct {
		name     string
		multiple bool
		expected string
	}{
		{name: "one by one", multiple: false, expected: "CMZ"},
		{name: "multiple at once", multiple: true, expected: "MCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rearrange(stacks, moves, tt.multiple)
			if err != nil {
				t.Fatalf("rearrange() failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("rearrange() = %q; want %q", got, tt.expected)
			}
		})
	}

	// The initial drawing is left untouched
	if string(stacks[1]) != "MCD" {
		t.Errorf("rearrange mutated stacks: %q", stacks[1])
	}
}

func TestApply_Invalid(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{name: "unknown source", move: Move{Quantity: 1, From: 4, To: 1}},
		{name: "unknown target", move: Move{Quantity: 1, From: 1, To: 0}},
		{name: "too many crates", move: Move{Quantity: 3, From: 1, To: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stacks := Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}
			if err := stacks.Apply(tt.move, false); !errors.Is(err, ErrInvalidMove) {
				t.Errorf("Apply(%+v) error = %v; want %v", tt.move, err, ErrInvalidMove)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	if _, _, err := parse([]string{"[A]", "", "move 1 from 1 to 1"}); !errors.Is(err, ErrMissingLabels) {
		t.Errorf("parse(no labels) error = %v; want %v", err, ErrMissingLabels)
	}
	if _, _, err := parse([]string{"[A]", " 1 ", "", "move one from 1 to 1"}); !errors.Is(err, ErrMalformedMove) {
		t.Errorf("parse(bad move) error = %v; want %v", err, ErrMalformedMove)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		crane string
		want  string
	}{
		{
			name:  "default crane",
			crane: config.CraneMover9001,
			want:  "AoC 2022, Day05, Part1 solution is: CMZ\nAoC 2022, Day05, Part2 solution is: MCD\n",
		},
		{
			name:  "old crane",
			crane: config.CraneMover9000,
			want:  "AoC 2022, Day05, Part1 solution is: CMZ\nAoC 2022, Day05, Part2 solution is: CMZ\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			src := mocks.NewMockSource(ctrl)
			src.EXPECT().Read().Return(example, nil)

			cfg := config.Default()
			cfg.Day05.Crane = tt.crane

			var out bytes.Buffer
			if err := Run(src, cfg, &out, newTestLogger()); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Run() output = %q; want %q", out.String(), tt.want)
			}
		})
	}
}
