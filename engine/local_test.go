package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quorum/game"
	"quorum/searcher"
)

func TestLocalEngineRequiresPlayers(t *testing.T) {
	board := game.StartPosition(9)
	require.Panics(t, func() {
		LocalEngine(nil, GreedyPlayer{Heuristic: game.PieceCountHeuristic{}}, board, 10)
	})
}

func TestLocalEngineRespectsPlyCap(t *testing.T) {
	board := game.StartPosition(9)
	white := GreedyPlayer{Heuristic: game.PieceCountHeuristic{}}
	black := GreedyPlayer{Heuristic: game.PieceCountHeuristic{}}

	e := LocalEngine(white, black, board, 4)
	_, decided := e.Run()

	require.False(t, decided, "four plies from the start cannot connect a color")
	require.Equal(t, game.White, e.Board.WhoseMove, "an even number of plies was played")
	require.NotEqual(t, board.Hash, e.Board.Hash, "moves were applied")
}

func TestLocalEngineStopsOnWinner(t *testing.T) {
	// White connects by moving the stray piece next to the pair:
	// leaping (4,0) over (3,0) lands on (2,0).
	white := game.NewCoordSet(game.Coord{X: 1, Y: 0}, game.Coord{X: 3, Y: 0}, game.Coord{X: 4, Y: 0})
	black := game.NewCoordSet(game.Coord{X: 6, Y: 6}, game.Coord{X: 6, Y: 8})
	board := game.FromPosition(9, game.White, white, black)

	player := SearchPlayer{Searcher: searcher.NewMinimax(1, searcher.WithHeuristic(
		game.ConnectedComponentsHeuristic{}))}
	e := LocalEngine(player, player, board, 50)

	winner, decided := e.Run()
	require.True(t, decided)
	require.Equal(t, game.White, winner)
}

func TestGreedyPlayerPicksImmediateBest(t *testing.T) {
	// Same capture position as the search test: a greedy material
	// player must take the three-piece haul.
	black := game.NewCoordSet(
		game.Coord{X: 1, Y: 1}, game.Coord{X: 1, Y: 2}, game.Coord{X: 1, Y: 3}, game.Coord{X: 2, Y: 1},
		game.Coord{X: 3, Y: 1}, game.Coord{X: 3, Y: 4}, game.Coord{X: 3, Y: 5}, game.Coord{X: 4, Y: 2},
		game.Coord{X: 4, Y: 3})
	white := game.NewCoordSet(game.Coord{X: 2, Y: 2}, game.Coord{X: 2, Y: 3}, game.Coord{X: 3, Y: 2}, game.Coord{X: 4, Y: 1})
	board := game.FromPosition(9, game.Black, white, black)

	player := GreedyPlayer{Heuristic: game.PieceCountHeuristic{}}
	mv, ok := player.FindMove(&board)
	require.True(t, ok)

	next := board.Apply(mv)
	require.Equal(t, 1, next.White.Len())
}
