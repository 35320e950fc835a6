package searcher

import (
	"sort"

	"quorum/game"
)

type Option func(m *Minimax)

// WithHeuristic sets the leaf evaluation function.
func WithHeuristic(h game.Heuristic) Option {
	return func(m *Minimax) {
		if h != nil {
			m.heuristic = h
		}
	}
}

// WithTable shares an existing transposition table, e.g. between the
// two players of a self-play match.
func WithTable(t *TranspositionTable) Option {
	return func(m *Minimax) {
		if t != nil {
			m.table = t
		}
	}
}

// Stats counts the work of a search session.
type Stats struct {
	Nodes     uint64
	CacheHits uint64
}

// Minimax is a depth-bounded alpha-beta searcher over a shared
// transposition table. White maximizes, Black minimizes.
type Minimax struct {
	depth     int
	heuristic game.Heuristic
	table     *TranspositionTable
	stats     Stats
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{ // Default values
		depth:     depth,
		heuristic: game.PieceCountHeuristic{},
		table:     NewTranspositionTable(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Table() *TranspositionTable {
	return m.table
}

func (m *Minimax) Stats() Stats {
	return m.stats
}

// Evaluate scores a position to the given remaining depth within the
// [alpha, beta] window. A cache hit returns immediately even though the
// cached value may come from a different depth or window; the table is
// only sound while every search against it runs at one fixed depth.
// Wins short-circuit remaining depth with the color's sentinel extreme.
func (m *Minimax) Evaluate(b *game.Board, depth int, alpha, beta game.Valuation) game.Valuation {
	if value, ok := m.table.Lookup(b.Hash); ok {
		m.stats.CacheHits++
		return value
	}
	if depth == 0 {
		return m.heuristic.Evaluate(b)
	}
	if winner, ok := b.Winner(); ok {
		if winner == game.White {
			return game.MaxValuation
		}
		return game.MinValuation
	}
	m.stats.Nodes++

	// Children are ordered by a cheap material key: ascending for the
	// maximizer, ascending on the negated key for the minimizer. The
	// stable order among equal keys is part of the tie-break contract.
	moves := b.Moves()
	children := make([]game.Board, len(moves))
	keys := make([]game.Valuation, len(moves))
	for i, mv := range moves {
		children[i] = b.Apply(mv)
		keys[i] = game.PieceCountHeuristic{}.Evaluate(&children[i])
		if b.WhoseMove == game.Black {
			keys[i] = -keys[i]
		}
	}
	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return keys[order[i]] < keys[order[j]]
	})

	var value game.Valuation
	switch b.WhoseMove {
	case game.White:
		value = game.MinValuation
		for _, i := range order {
			value = max(value, m.Evaluate(&children[i], depth-1, alpha, beta))
			if value >= beta {
				break
			}
			alpha = max(alpha, value)
		}
	case game.Black:
		value = game.MaxValuation
		for _, i := range order {
			value = min(value, m.Evaluate(&children[i], depth-1, alpha, beta))
			if value <= alpha {
				break
			}
			beta = min(beta, value)
		}
	}
	m.table.Insert(b.Hash, value)
	return value
}

// FindBestMove evaluates every root child with a fresh full window, so
// root siblings never prune one another, and returns the argmax move
// for White or the argmin for Black. Ties resolve to the first move in
// enumeration order. The second return is false when the side to move
// has no legal moves.
func (m *Minimax) FindBestMove(b *game.Board) (game.Move, bool) {
	var best game.Move
	var bestValue game.Valuation
	found := false
	for _, mv := range b.Moves() {
		child := b.Apply(mv)
		value := m.Evaluate(&child, m.depth-1, game.MinValuation, game.MaxValuation)
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
