package experiments

import (
	"fmt"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// DefaultConfigs pairs a sequential baseline against agents with larger
// budgets and root parallelism.
var DefaultConfigs = []metrics.AgentConfig{
	{ID: 1, Iterations: 1000, Goroutines: 1, Exploration: searcher.DefaultExploration},
	{ID: 2, Iterations: 2000, Goroutines: 1, Exploration: searcher.DefaultExploration},
	{ID: 3, Iterations: 1000, Goroutines: 4, Exploration: searcher.DefaultExploration},
	{ID: 4, Iterations: 1000, Goroutines: 8, Exploration: searcher.DefaultExploration},
}

// RunSelfPlay plays numGames games of each config against the baseline
// (the first config), alternating the starting side, and stores the
// records as CSV under outDir.
func RunSelfPlay(configs []metrics.AgentConfig, numGames int, outDir string, seed uint64) error {
	if len(configs) < 2 {
		return fmt.Errorf("need a baseline and at least one opponent config, got %d", len(configs))
	}

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}

	baseline := configs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting self-play experiment...")

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			count++
			// Alternate the starting side between games
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameMetric, moves := playGame(first, second, seed+uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, move := range moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: move})
			}

			log.Info().Msgf("game %d of %d ended, winner=%d moves=%d",
				i+1, numGames, gameMetric.Winner, gameMetric.TotalMoves)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Msgf("finished self-play experiment, records in %s", writer.BaseDir())
	return nil
}

func newAgent(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	return searcher.NewMCTS(
		searcher.WithIterations(config.Iterations),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithExploration(config.Exploration),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
}

// playGame runs one game between two agents. first plays as player one.
func playGame(first, second metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	agents := map[game.Player]*searcher.MCTS{
		game.One: newAgent(first, seed),
		game.Two: newAgent(second, seed+1),
	}

	var board game.Board
	current := game.One
	start := time.Now()
	step := 0
	winner := 0
	moves := []metrics.MoveMetric{}

	for {
		agent := agents[current]
		mv, err := agent.ComputeMove(board, current.Other())
		if err != nil {
			// Both sides check terminality before moving, so any error
			// here is a searcher bug worth crashing on.
			panic(fmt.Sprintf("self-play move failed: %v", err))
		}
		board = board.Place(mv, current)
		step++
		moves = append(moves, metrics.MoveMetric{
			Step:         step,
			Player:       int(current),
			SearchMetric: agent.Metrics(),
		})

		if board.Won(current) {
			winner = int(current)
			break
		}
		if board.Full() {
			break
		}
		current = current.Other()
	}

	return metrics.GameMetric{
		StartingPlayer: int(game.One),
		Winner:         winner,
		StartTime:      start,
		Duration:       time.Since(start),
		TotalMoves:     step,
	}, moves
}
