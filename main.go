package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"quorum/engine"
	"quorum/game"
	"quorum/searcher"
)

type config struct {
	BoardSize     int     `yaml:"board_size"`
	Depth         int     `yaml:"depth"`
	MaxPlies      int     `yaml:"max_plies"`
	CentroidPower float64 `yaml:"centroid_power"`
	Weights       struct {
		Centroid   game.Valuation `yaml:"centroid"`
		Material   game.Valuation `yaml:"material"`
		Components game.Valuation `yaml:"components"`
	} `yaml:"weights"`
}

func defaultConfig() config {
	cfg := config{
		BoardSize:     9,
		Depth:         2,
		MaxPlies:      500,
		CentroidPower: 2.0,
	}
	cfg.Weights.Centroid = 1
	cfg.Weights.Material = 1
	cfg.Weights.Components = 5
	return cfg
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.BoardSize < 8 || cfg.BoardSize > game.MaxBoardSize {
		return cfg, fmt.Errorf("board_size %d out of range: must be between 8 and %d", cfg.BoardSize, game.MaxBoardSize)
	}
	if cfg.Depth < 1 {
		return cfg, fmt.Errorf("depth %d out of range: must be at least 1", cfg.Depth)
	}
	return cfg, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := flag.String("config", "quorum.yaml", "path to the match configuration")
	verbose := flag.Bool("verbose", false, "log every move")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	heuristic := game.LinearCombinationHeuristic{Terms: []game.Term{
		{Weight: cfg.Weights.Centroid, Heuristic: game.CentroidDistanceHeuristic{Power: cfg.CentroidPower}},
		{Weight: cfg.Weights.Material, Heuristic: game.PieceCountHeuristic{}},
		{Weight: cfg.Weights.Components, Heuristic: game.ConnectedComponentsHeuristic{}},
	}}

	board := game.StartPosition(cfg.BoardSize)
	white := engine.SearchPlayer{Searcher: searcher.NewMinimax(cfg.Depth, searcher.WithHeuristic(heuristic))}
	black := engine.SearchPlayer{Searcher: searcher.NewMinimax(cfg.Depth, searcher.WithHeuristic(heuristic))}

	e := engine.LocalEngine(white, black, board, cfg.MaxPlies)
	winner, decided := e.Run()

	fmt.Print(e.Board.Render())
	if decided {
		fmt.Printf("%v wins\n", winner)
	} else {
		fmt.Println("no winner within the ply cap")
	}
}
