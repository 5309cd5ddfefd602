package aoc2022day02

import "fmt"

type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Score is the points awarded for playing the shape.
func (s Shape) Score() int {
	return int(s) + 1
}

// ParseShape maps both the opponent column (A, B, C) and the player
// column (X, Y, Z) to a shape.
func ParseShape(c byte) (Shape, error) {
	switch c {
	case 'A', 'X':
		return Rock, nil
	case 'B', 'Y':
		return Paper, nil
	case 'C', 'Z':
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, c)
}

type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) Score() int {
	return int(o) * 3
}

func ParseOutcome(c byte) (Outcome, error) {
	switch c {
	case 'X':
		return Loss, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, c)
}

// Play returns the outcome of a round from the player's point of view.
// Each shape beats the one just before it in Rock, Paper, Scissors order.
func Play(player, opponent Shape) Outcome {
	switch (player - opponent + 3) % 3 {
	case 0:
		return Draw
	case 1:
		return Win
	default:
		return Loss
	}
}

// ShapeFor returns the shape to play against opponent to get outcome.
func ShapeFor(opponent Shape, outcome Outcome) Shape {
	switch outcome {
	case Win:
		return (opponent + 1) % 3
	case Loss:
		return (opponent + 2) % 3
	default:
		return opponent
	}
}
