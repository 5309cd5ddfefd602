package main

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	aoc2022day01 "github.com/flarcher/AdventOfCode/aoc/2022/day01"
	aoc2022day02 "github.com/flarcher/AdventOfCode/aoc/2022/day02"
	aoc2022day03 "github.com/flarcher/AdventOfCode/aoc/2022/day03"
	aoc2022day04 "github.com/flarcher/AdventOfCode/aoc/2022/day04"
	aoc2022day05 "github.com/flarcher/AdventOfCode/aoc/2022/day05"
	aoc2022day06 "github.com/flarcher/AdventOfCode/aoc/2022/day06"
	aoc2022day07 "github.com/flarcher/AdventOfCode/aoc/2022/day07"
	"github.com/flarcher/AdventOfCode/internal/config"
	"github.com/flarcher/AdventOfCode/internal/input"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type runFunc func(src input.Source, cfg *config.Config, out io.Writer, logger *zerolog.Logger) error

var days = map[int]runFunc{
	1: aoc2022day01.Run,
	2: aoc2022day02.Run,
	3: aoc2022day03.Run,
	4: aoc2022day04.Run,
	5: aoc2022day05.Run,
	6: aoc2022day06.Run,
	7: aoc2022day07.Run,
}

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	day := flag.Int("day", 6, "Puzzle day to run (1-7)")
	inputFile := flag.String("inputFile", "input.txt", "Relative path to the input file, '-' for stdin")
	size := flag.Int("size", 0, "Day 6 only: number of different characters to look for (default: configured sizes)")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}
	setLogLevel(os.Getenv("LOG_LEVEL"))

	// Positional arguments: <file> [size]
	if args := flag.Args(); len(args) > 0 {
		*inputFile = args[0]
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatal().Err(err).Str("size", args[1]).Msg("Impossible to parse window size")
			}
			*size = n
		}
	}

	run, ok := days[*day]
	if !ok {
		log.Fatal().Int("day", *day).Msg("Unknown puzzle day. Supported: 1-7")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *size != 0 {
		cfg.Day06.WindowSizes = []int{*size}
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid window size")
		}
	}

	log.Info().Int("day", *day).Str("file", *inputFile).Msg("Solving puzzle")

	if err := run(input.NewFileSource(*inputFile), cfg, os.Stdout, &log.Logger); err != nil {
		log.Fatal().Err(err).Int("day", *day).Msg("Failed to solve puzzle")
	}

	log.Info().Dur("duration", time.Since(startTime)).Msg("Puzzle solved")
}

func setLogLevel(level string) {
	if level == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn().Str("level", level).Msg("Unknown LOG_LEVEL, using info")
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
