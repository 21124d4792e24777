package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"chess-search/board"
	"chess-search/engine"
)

// Positions searched when no -fen is given.
var benchPositions = []string{
	board.Startpos,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
}

type benchResult struct {
	fen     string
	move    string
	score   int32
	nodes   uint64
	elapsed time.Duration
	cuts    engine.CutStatistics
}

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 6, "search depth in plies")
	fenFlag := flag.String("fen", "", "single FEN to search (empty = built-in set)")
	jobsFlag := flag.Int("jobs", runtime.NumCPU(), "positions searched concurrently")
	hashFlag := flag.Int("hash", 16, "transposition table size in MB per searcher")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	debugFlag := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *depthFlag <= 0 || *depthFlag >= engine.MaxPly {
		log.Fatal().Int("depth", *depthFlag).Int("max", engine.MaxPly-1).Msg("depth out of range")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fens := benchPositions
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}

	startAll := time.Now()
	results, err := runBench(context.Background(), fens, *depthFlag, *hashFlag, *jobsFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bench failed")
	}
	totalElapsed := time.Since(startAll)

	for _, r := range results {
		fmt.Printf("%-72s %-6s %-9s nodes=%-12s time=%v\n", r.fen, r.move,
			engine.FormatScore(r.score), humanize.Comma(int64(r.nodes)), r.elapsed.Round(time.Millisecond))
		log.Debug().Str("cuts", r.cuts.String()).Msg(r.fen)
	}
	totalNodes := lo.SumBy(results, func(r benchResult) uint64 { return r.nodes })
	fmt.Printf("total nodes: %s  wall time: %v  nps: %s\n", humanize.Comma(int64(totalNodes)),
		totalElapsed.Round(time.Millisecond), humanize.Comma(int64(float64(totalNodes)/totalElapsed.Seconds())))
}

// runBench searches every position to a fixed depth, each with its own Searcher.
func runBench(ctx context.Context, fens []string, depth, hashMB, jobs int) ([]benchResult, error) {
	results := make([]benchResult, len(fens))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := board.FromFEN(fen)
			if err != nil {
				return err
			}
			cfg := engine.DefaultConfig()
			cfg.HashMegabytes = hashMB
			cfg.Logger = log.Logger
			searcher, err := engine.NewSearcher(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			score, move := searcher.SearchDepth(b, depth)
			results[i] = benchResult{
				fen:     fen,
				move:    move.String(),
				score:   score,
				nodes:   searcher.Nodes(),
				elapsed: time.Since(start),
				cuts:    searcher.Stats(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
