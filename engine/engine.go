package engine

import (
	"quorum/game"
	"quorum/searcher"
)

// Player chooses a move for the side to move on the given board. The
// second return is false when no legal move exists.
type Player interface {
	FindMove(b *game.Board) (game.Move, bool)
}

// SearchPlayer plays the minimax searcher's best move.
type SearchPlayer struct {
	Searcher *searcher.Minimax
}

func (p SearchPlayer) FindMove(b *game.Board) (game.Move, bool) {
	return p.Searcher.FindBestMove(b)
}

// GreedyPlayer plays the move whose immediate resulting position the
// heuristic likes best, with no lookahead. Ties resolve to the first
// move in enumeration order.
type GreedyPlayer struct {
	Heuristic game.Heuristic
}

func (p GreedyPlayer) FindMove(b *game.Board) (game.Move, bool) {
	var best game.Move
	var bestValue game.Valuation
	found := false
	for _, mv := range b.Moves() {
		child := b.Apply(mv)
		value := p.Heuristic.Evaluate(&child)
		better := b.WhoseMove == game.White && value > bestValue ||
			b.WhoseMove == game.Black && value < bestValue
		if !found || better {
			best = mv
			bestValue = value
			found = true
		}
	}
	return best, found
}
