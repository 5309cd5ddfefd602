package aoc2022day01

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

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestGetCalories(t *testing.T) {
	got, err := getCalories(input.Lines(example))
	if err != nil {
		t.Fatalf("getCalories() failed: %v", err)
	}

	expected := []int{6000, 4000, 11000, 24000, 10000}
	if len(got) != len(expected) {
		t.Fatalf("getCalories() = %v; want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("getCalories()[%d] = %d; want %d", i, got[i], expected[i])
		}
	}
}

func TestGetCalories_InvalidNumber(t *testing.T) {
	_, err := getCalories([]string{"100", "abc"})
	if err == nil {
		t.Fatal("expected error for invalid number, got none")
	}
}

func TestParts(t *testing.T) {
	calories, _ := getCalories(input.Lines(example))

	tests := []struct {
		name     string
		top      int
		expected int
	}{
		{name: "top 1", top: 1, expected: 24000},
		{name: "top 3", top: 3, expected: 45000},
		{name: "more than available", top: 10, expected: 55000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := part2(calories, tt.top)
			if err != nil {
				t.Fatalf("part2() failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("part2(%d) = %d; want %d", tt.top, got, tt.expected)
			}
		})
	}

	got, err := part1(calories)
	if err != nil || got != 24000 {
		t.Errorf("part1() = %d, %v; want 24000", got, err)
	}

	// part2 must not reorder the caller's slice
	if calories[0] != 6000 {
		t.Errorf("part2 mutated input: %v", calories)
	}
}

func TestParts_NoElves(t *testing.T) {
	if _, err := part1(nil); !errors.Is(err, ErrNoElves) {
		t.Errorf("part1(nil) error = %v; want %v", err, ErrNoElves)
	}
	if _, err := part2(nil, 3); !errors.Is(err, ErrNoElves) {
		t.Errorf("part2(nil) error = %v; want %v", err, ErrNoElves)
	}
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Read().Return(example, nil)

	var out bytes.Buffer
	if err := Run(src, config.Default(), &out, newTestLogger()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := "AoC 2022, Day01 part1 solution is: 24000\nAoC 2022, Day01 part2 solution is: 45000\n"
	if out.String() != want {
		t.Errorf("Run() output = %q; want %q", out.String(), want)
	}
}
