package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"chess-search/board"
	"chess-search/engine"
)

func main() {
	// --- Flags ---
	fenFlag := flag.String("fen", board.Startpos, "position to move from")
	movesFlag := flag.String("moves", "", "space separated UCI moves played from -fen")
	remainingFlag := flag.Duration("time", time.Minute, "time left on the mover's clock")
	moveTimeFlag := flag.Duration("movetime", 0, "fixed time for this move (overrides -time)")
	depthFlag := flag.Int("depth", engine.DefaultConfig().MaxDepth, "maximum search depth in plies")
	hashFlag := flag.Int("hash", engine.DefaultConfig().HashMegabytes, "transposition table size in MB")
	debugFlag := flag.Bool("debug", false, "log aspiration fails and search statistics")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	b, err := board.FromFEN(*fenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad-position")
	}
	played := strings.Fields(*movesFlag)
	for _, uci := range played {
		if err := b.Play(uci); err != nil {
			log.Fatal().Err(err).Msg("bad-move")
		}
	}
	if len(played) > 0 {
		log.Info().Strs("moves", played).Str("fen", b.FEN()).Msg("position-set")
	}

	cfg := engine.DefaultConfig()
	cfg.MaxDepth = *depthFlag
	cfg.HashMegabytes = *hashFlag
	cfg.MoveTime = *moveTimeFlag
	cfg.Logger = log.Logger

	searcher, err := engine.NewSearcher(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := searcher.Search(ctx, b, board.NewWallClock(*remainingFlag))
	if err != nil {
		log.Fatal().Err(err).Str("fen", b.FEN()).Msg("no-move")
	}

	legal := lo.Map(b.LegalMoves(false), func(m engine.Move, _ int) string {
		return m.String()
	})
	log.Debug().Strs("legal", legal).Msg("root-moves")
	fmt.Println("bestmove", res.Move.String())
}
