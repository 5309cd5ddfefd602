package aoc2022day07

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/rs/zerolog"
)

var ErrNothingToDelete = errors.New("no directory frees enough space")

func Run(src input.Source, cfg *config.Config, out io.Writer, logger *zerolog.Logger) error {
	raw, err := src.Read()
	if err != nil {
		return err
	}

	root, err := BuildFileSystem(input.Lines(raw))
	if err != nil {
		return err
	}
	logger.Debug().Int("used", root.TotalSize()).Msg("file system rebuilt")

	p2, err := part2(root, cfg.Day07)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "AoC2022, Day07, Part1 is: %d\n", part1(root, cfg.Day07.SmallDirLimit))
	fmt.Fprintf(out, "AoC2022, Day07, Part2 is: %d\n", p2)
	return nil
}

// part1 sums the sizes of all directories of at most limit. Nested
// directories are counted once for themselves and once per ancestor.
func part1(root *Node, limit int) int {
	total := 0
	root.Walk(func(dir *Node) {
		if size := dir.TotalSize(); size <= limit {
			total += size
		}
	})
	return total
}

func part2(root *Node, disk config.DiskConfig) (int, error) {
	currentlyFree := disk.TotalSpace - root.TotalSize()
	needToFree := disk.RequiredSpace - currentlyFree
	if needToFree <= 0 {
		return 0, nil
	}

	smallest := math.MaxInt
	root.Walk(func(dir *Node) {
		if size := dir.TotalSize(); size >= needToFree && size < smallest {
			smallest = size
		}
	})
	if smallest == math.MaxInt {
		return 0, fmt.Errorf("%w: need %d", ErrNothingToDelete, needToFree)
	}
	return smallest, nil
}
