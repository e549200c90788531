package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	iterations := flag.Int("iterations", searcher.DefaultIterations, "search iterations per computer move")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "UCB1 exploration constant")
	goroutines := flag.Int("goroutines", 1, "independent search trees per move (root parallelism)")
	first := flag.Bool("first", true, "whether the human moves first")
	selfplay := flag.Int("selfplay", 0, "run a self-play experiment with this many games per matchup instead of an interactive game")
	outDir := flag.String("out", "experiments", "output directory for self-play records")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *selfplay > 0 {
		err := experiments.RunSelfPlay(experiments.DefaultConfigs, *selfplay, *outDir, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("self-play experiment failed")
		}
		return
	}

	human := game.One
	if !*first {
		human = game.Two
	}

	agent := searcher.NewMCTS(
		searcher.WithIterations(*iterations),
		searcher.WithExploration(*exploration),
		searcher.WithGoroutines(*goroutines),
		searcher.WithSeed(*seed),
	)

	e := engine.New(agent, human, os.Stdin, os.Stdout)
	if _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	fmt.Println("End of program")
}
