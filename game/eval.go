package game

import (
	"math"
	"sort"
)

// Valuation scores a position from White's perspective: positive is
// good for White, negative for Black.
type Valuation int32

const (
	MaxValuation Valuation = math.MaxInt32
	MinValuation Valuation = math.MinInt32
)

// Heuristic statically evaluates a position.
type Heuristic interface {
	Evaluate(b *Board) Valuation
}

// PieceCountHeuristic scores the on-board material difference.
type PieceCountHeuristic struct{}

func (PieceCountHeuristic) Evaluate(b *Board) Valuation {
	return Valuation(b.White.Len() - b.Black.Len())
}

// LegalMovesHeuristic scores the mobility difference.
type LegalMovesHeuristic struct{}

func (LegalMovesHeuristic) Evaluate(b *Board) Valuation {
	return Valuation(len(b.MovesOf(White)) - len(b.MovesOf(Black)))
}

// CentroidDistanceHeuristic rewards tight clustering: per color, the
// sum over pieces of the L1 distance to the color's centroid raised to
// Power, scored as (black spread - white spread) x 1000, truncated.
type CentroidDistanceHeuristic struct {
	Power float64
}

func (h CentroidDistanceHeuristic) Evaluate(b *Board) Valuation {
	whiteSpread := centroidSpread(b.White, h.Power)
	blackSpread := centroidSpread(b.Black, h.Power)
	return Valuation((blackSpread - whiteSpread) * 1000.0)
}

func centroidSpread(pieces CoordSet, power float64) float64 {
	n := float64(pieces.Len())
	if n == 0 {
		return 0
	}
	// Sorted iteration keeps float accumulation order, and with it the
	// truncated valuation, identical across runs.
	coords := pieces.Coords()
	var cx, cy float64
	for _, c := range coords {
		cx += float64(c.X) / n
		cy += float64(c.Y) / n
	}
	var spread float64
	for _, c := range coords {
		spread += math.Pow(math.Abs(float64(c.X)-cx)+math.Abs(float64(c.Y)-cy), power)
	}
	return spread
}

// ConnectedComponentsHeuristic rewards fewer fragments, aligned with
// the connect-everything win condition: (black groups - white groups).
type ConnectedComponentsHeuristic struct{}

func (ConnectedComponentsHeuristic) Evaluate(b *Board) Valuation {
	return Valuation(len(groupSizes(b, Black)) - len(groupSizes(b, White)))
}

// NthSmallestStringHeuristic scores the difference of the N-th largest
// group size per color. The name is historical: it discards the (N-1)
// largest sizes and returns the next one, i.e. the N-th largest.
type NthSmallestStringHeuristic struct {
	N int
}

func (h NthSmallestStringHeuristic) Evaluate(b *Board) Valuation {
	return Valuation(nthLargestGroup(b, Black, h.N) - nthLargestGroup(b, White, h.N))
}

func nthLargestGroup(b *Board, color Color, n int) int {
	sizes := groupSizes(b, color)
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	idx := n - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sizes) {
		return 0
	}
	return sizes[idx]
}

// groupSizes decomposes a color's pieces into orthogonally connected
// groups by repeated flood fill.
func groupSizes(b *Board, color Color) []int {
	remaining := b.PiecesOf(color).Clone()
	var sizes []int
	for remaining.Len() > 0 {
		source := remaining.Coords()[0]
		group := b.FloodFill(color, source)
		sizes = append(sizes, group.Len())
		for c := range group {
			remaining.Remove(c)
		}
	}
	return sizes
}

// Term weights a sub-heuristic inside a linear combination.
type Term struct {
	Weight    Valuation
	Heuristic Heuristic
}

// LinearCombinationHeuristic sums weight x sub-heuristic over an
// ordered list of terms. Terms may nest further combinations.
type LinearCombinationHeuristic struct {
	Terms []Term
}

func (h LinearCombinationHeuristic) Evaluate(b *Board) Valuation {
	var sum Valuation
	for _, term := range h.Terms {
		sum += term.Weight * term.Heuristic.Evaluate(b)
	}
	return sum
}
