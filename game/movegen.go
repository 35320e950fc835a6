package game

import "fmt"

// MovesOf enumerates every legal move for color: for each ordered
// (active, pivot) pair whose base leap is legal, one movement carrying
// the full convertible set when the reserve can afford it, otherwise
// one movement per reserve-sized combination of convertible squares;
// plus one placement per empty square while the reserve is positive.
func (b *Board) MovesOf(color Color) []Move {
	var movements []Move
	own := b.PiecesOf(color).Coords()
	reserve := b.ReserveOf(color)

	for _, active := range own {
		for _, pivot := range own {
			base := NewMovement(color, active, pivot)
			if b.ValidMove(base) != Legal {
				continue
			}
			if reserve < 0 {
				panic(fmt.Sprintf("negative reserve for %v: %d pieces on board with %d in reserve",
					color, len(own), reserve))
			}
			convertible := b.ConvertibleAround(color, active, base.Dest())
			if len(convertible) <= reserve {
				mv := base
				mv.Conversions = convertible
				movements = append(movements, mv)
			} else {
				for _, combination := range combinations(convertible, reserve) {
					mv := base
					mv.Conversions = combination
					movements = append(movements, mv)
				}
			}
		}
	}

	// A declared conversion set can collide with the capture rule
	// (TriedConvertCapture), so generated movements are re-checked.
	moves := make([]Move, 0, len(movements))
	for _, mv := range movements {
		if b.ValidMove(mv) == Legal {
			moves = append(moves, mv)
		}
	}

	if reserve > 0 {
		for _, at := range b.AllCoords() {
			if !b.occupied(at) {
				moves = append(moves, NewPlacement(color, at))
			}
		}
	}
	return moves
}

// Moves enumerates the side to move's legal moves.
func (b *Board) Moves() []Move {
	return b.MovesOf(b.WhoseMove)
}

// combinations yields every k-subset of coords in lexicographic order
// over the input order. k == 0 yields a single empty combination.
func combinations(coords []Coord, k int) [][]Coord {
	if k == 0 {
		return [][]Coord{{}}
	}
	if k > len(coords) {
		return nil
	}
	var result [][]Coord
	var recurse func(start int, current []Coord)
	recurse = func(start int, current []Coord) {
		if len(current) == k {
			result = append(result, current)
			return
		}
		for i := start; i <= len(coords)-(k-len(current)); i++ {
			next := make([]Coord, len(current)+1)
			copy(next, current)
			next[len(current)] = coords[i]
			recurse(i+1, next)
		}
	}
	recurse(0, nil)
	return result
}
