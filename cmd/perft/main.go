package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chess-search/board"
)

func main() {
	fen := flag.String("fen", board.Startpos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *depth <= 0 {
		log.Fatal().Int("depth", *depth).Msg("-depth must be > 0")
	}

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad-position")
	}

	if *divide {
		div := board.PerftDivide(b, *depth)
		moves := make([]string, 0, len(div))
		counts := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			moves = append(moves, m.String())
			counts[m.String()] = n
			sum += n
		}
		sort.Strings(moves)
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, counts[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Depth Nodes Time NPS
	fmt.Printf("%d \t%s \t%v \t%s\n", *depth, humanize.Comma(int64(totalNodes)), elapsed.Round(time.Millisecond), humanize.Comma(int64(nps)))
}
