package aoc2022day06

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

// NotFound is returned by FindMarker when no window qualifies.
// Real markers are always >= the window size, so 0 is unambiguous.
const NotFound = 0

var (
	ErrInvalidWindowSize = errors.New("window size must be greater than 1")
	ErrOutOfBounds       = errors.New("sequence is shorter than the window")
)

func Run(src input.Source, cfg *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	datastream := strings.TrimSpace(raw)
	logger.Debug().Int("length", len(datastream)).Msg("datastream loaded")

	for _, size := range cfg.Day06.WindowSizes {
		logger.Info().Int("size", size).Msgf("Condition: %d different characters", size)

		index, err := FindMarker(datastream, size)
		if err != nil {
			return fmt.Errorf("window of %d characters: %w", size, err)
		}
		if index == NotFound {
			logger.Warn().Int("size", size).Msg("no marker found")
		}
		fmt.Fprintf(out, "Index is %d\n", index)
	}

	return nil
}

// FindMarker returns the number of characters consumed up to the end of
// the first window of size characters that are all different, or
// NotFound.
func FindMarker(sequence string, size int) (int, error) {
	if size <= 1 {
		return NotFound, fmt.Errorf("%w: got %d", ErrInvalidWindowSize, size)
	}
	if len(sequence) < size {
		return NotFound, fmt.Errorf("%w: %d < %d", ErrOutOfBounds, len(sequence), size)
	}

	for end := size; end <= len(sequence); end++ {
		if allDistinct(sequence[end-size : end]) {
			return end, nil
		}
	}

	return NotFound, nil
}

func allDistinct(window string) bool {
	for i := 0; i < len(window)-1; i++ {
		for j := i + 1; j < len(window); j++ {
			if window[i] == window[j] {
				return false
			}
		}
	}
	return true
}
