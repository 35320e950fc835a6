package game

import (
	"fmt"
	"sort"
	"strings"
)

// Coord is a zero-based (file, rank) square on the board.
type Coord struct {
	X, Y int
}

type Color int

const (
	Black Color = iota
	White
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// CoordSet is a unique-membership container of squares. Iteration via
// Coords is sorted so that move enumeration, and therefore search, is
// deterministic across runs (Go map order is randomized).
type CoordSet map[Coord]struct{}

func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

func (s CoordSet) Remove(c Coord) {
	delete(s, c)
}

func (s CoordSet) Len() int {
	return len(s)
}

func (s CoordSet) Clone() CoordSet {
	clone := make(CoordSet, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}

// Coords returns the members sorted by file then rank.
func (s CoordSet) Coords() []Coord {
	coords := make([]Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].X != coords[j].X {
			return coords[i].X < coords[j].X
		}
		return coords[i].Y < coords[j].Y
	})
	return coords
}

// Board is the complete position: piece sets, reserves, side to move
// and the incrementally maintained position hash. Boards are values;
// Apply returns a new Board and never mutates the receiver.
type Board struct {
	BoardSize    int
	MaxGap       int
	White        CoordSet
	Black        CoordSet
	WhiteReserve int
	BlackReserve int
	WhoseMove    Color
	Hash         uint64
}

// FromPosition builds a board from explicit piece sets. Out-of-bounds
// pieces are a programming error, not a rejectable input.
func FromPosition(boardSize int, whoseMove Color, white, black CoordSet) Board {
	for _, c := range white.Coords() {
		if c.X < 0 || c.Y < 0 || c.X >= boardSize || c.Y >= boardSize {
			panic(fmt.Sprintf("white piece %v out of bounds for %dx%d board", c, boardSize, boardSize))
		}
	}
	for _, c := range black.Coords() {
		if c.X < 0 || c.Y < 0 || c.X >= boardSize || c.Y >= boardSize {
			panic(fmt.Sprintf("black piece %v out of bounds for %dx%d board", c, boardSize, boardSize))
		}
	}
	b := Board{
		BoardSize: boardSize,
		MaxGap:    2,
		White:     white,
		Black:     black,
		WhoseMove: whoseMove,
	}
	b.Hash = hashFromScratch(&b)
	return b
}

// StartPosition assigns the squares near two opposite corners to each
// color by diagonal-distance thresholds. White moves first.
func StartPosition(boardSize int) Board {
	if boardSize < 8 {
		panic(fmt.Sprintf("board size %d below minimum of 8", boardSize))
	}
	white := NewCoordSet()
	black := NewCoordSet()
	for x := 0; x < boardSize; x++ {
		for y := 0; y < boardSize; y++ {
			switch {
			case x+y < 4 || x+y > 2*boardSize-6:
				white.Add(Coord{x, y})
			case boardSize-x+y < 5 || boardSize-x+y > 2*boardSize-5:
				black.Add(Coord{x, y})
			}
		}
	}
	return FromPosition(boardSize, White, white, black)
}

func (b *Board) InBounds(c Coord) bool {
	return 0 <= c.X && c.X < b.BoardSize && 0 <= c.Y && c.Y < b.BoardSize
}

// AllPieces is the union of both piece sets.
func (b *Board) AllPieces() CoordSet {
	all := b.White.Clone()
	for c := range b.Black {
		all.Add(c)
	}
	return all
}

func (b *Board) occupied(c Coord) bool {
	return b.White.Contains(c) || b.Black.Contains(c)
}

// AllCoords enumerates every square in file-major order.
func (b *Board) AllCoords() []Coord {
	coords := make([]Coord, 0, b.BoardSize*b.BoardSize)
	for x := 0; x < b.BoardSize; x++ {
		for y := 0; y < b.BoardSize; y++ {
			coords = append(coords, Coord{x, y})
		}
	}
	return coords
}

func (b *Board) PiecesOf(color Color) CoordSet {
	if color == White {
		return b.White
	}
	return b.Black
}

func (b *Board) ReserveOf(color Color) int {
	if color == White {
		return b.WhiteReserve
	}
	return b.BlackReserve
}

// Neighborhood returns the up-to-8 in-bounds squares adjacent to c.
func (b *Board) Neighborhood(c Coord) []Coord {
	neighbors := make([]Coord, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			position := Coord{c.X + dx, c.Y + dy}
			if !b.InBounds(position) {
				continue
			}
			neighbors = append(neighbors, position)
		}
	}
	return neighbors
}

// OrthogonalNeighborhood returns the 4 orthogonally adjacent squares,
// bounds not checked; flood fill only follows occupied squares anyway.
func (b *Board) OrthogonalNeighborhood(c Coord) []Coord {
	return []Coord{{c.X + 1, c.Y}, {c.X - 1, c.Y}, {c.X, c.Y + 1}, {c.X, c.Y - 1}}
}

// FloodFill returns every square of the given color orthogonally
// reachable from source, source included.
func (b *Board) FloodFill(color Color, source Coord) CoordSet {
	visited := NewCoordSet(source)
	queued := NewCoordSet(b.OrthogonalNeighborhood(source)...)
	for queued.Len() > 0 {
		nextQueued := NewCoordSet()
		for _, neighbor := range queued.Coords() {
			if b.PiecesOf(color).Contains(neighbor) && !visited.Contains(neighbor) {
				visited.Add(neighbor)
				for _, next := range b.OrthogonalNeighborhood(neighbor) {
					nextQueued.Add(next)
				}
			}
		}
		queued = nextQueued
	}
	return visited
}

// ColorConnected reports whether all of a color's pieces form a single
// orthogonally connected group.
func (b *Board) ColorConnected(color Color) bool {
	pieces := b.PiecesOf(color)
	if pieces.Len() == 0 {
		panic(fmt.Sprintf("connectivity check for %v with no pieces on the board", color))
	}
	source := pieces.Coords()[0]
	return b.FloodFill(color, source).Len() == pieces.Len()
}

// Winner checks Black before White; if both colors are connected at
// once, Black wins. Callers rely on this fixed priority.
func (b *Board) Winner() (Color, bool) {
	if b.ColorConnected(Black) {
		return Black, true
	}
	if b.ColorConnected(White) {
		return White, true
	}
	return 0, false
}

// CapturableAround lists the opponent neighbors of dest that are fully
// encircled once the mover lands: every in-bounds neighbor of theirs is
// occupied or is dest itself. The active guard on the destination
// neighborhood is unreachable under the leap geometry (active is at
// Chebyshev distance >= 2 from dest) but is part of the rules as
// written; kept pending rule clarification.
func (b *Board) CapturableAround(color Color, active, dest Coord) []Coord {
	opponent := b.PiecesOf(color.Opponent())
	captured := make([]Coord, 0, 8)
	destNeighbors := b.Neighborhood(dest)
	for _, maybeCaptured := range destNeighbors {
		if !opponent.Contains(maybeCaptured) {
			continue
		}
		encircled := true
		for _, liberty := range b.Neighborhood(maybeCaptured) {
			if !(b.occupied(liberty) || liberty == dest) || containsCoord(destNeighbors, active) {
				encircled = false
				break
			}
		}
		if encircled {
			captured = append(captured, maybeCaptured)
		}
	}
	return captured
}

// ConvertibleAround lists the opponent neighbors of dest flanked by a
// mover piece on the far side (dest, neighbor, flanker colinear). The
// flanker-is-active exclusion and the capturable-contains-active guard
// mirror the capture rule's unreachable guard; kept as written.
func (b *Board) ConvertibleAround(color Color, active, dest Coord) []Coord {
	own := b.PiecesOf(color)
	opponent := b.PiecesOf(color.Opponent())
	convertible := make([]Coord, 0, 8)
	for _, neighbor := range b.Neighborhood(dest) {
		flanker := Coord{(neighbor.X-dest.X)*2 + dest.X, (neighbor.Y-dest.Y)*2 + dest.Y}
		if flanker != active &&
			opponent.Contains(neighbor) &&
			own.Contains(flanker) &&
			!containsCoord(b.CapturableAround(color, active, dest), active) {
			convertible = append(convertible, neighbor)
		}
	}
	return convertible
}

func containsCoord(coords []Coord, c Coord) bool {
	for _, candidate := range coords {
		if candidate == c {
			return true
		}
	}
	return false
}

// Render draws the board with rank 0 at the bottom, marking the four
// center squares of an even-sized board (or the center square of an
// odd-sized one) when empty.
func (b *Board) Render() string {
	var sb strings.Builder
	for y := b.BoardSize - 1; y >= 0; y-- {
		for x := 0; x < b.BoardSize; x++ {
			c := Coord{x, y}
			center := float64(b.BoardSize)/2.0 - 0.5
			switch {
			case b.White.Contains(c):
				sb.WriteString("●")
			case b.Black.Contains(c):
				sb.WriteString("○")
			case abs(float64(x)-center) < 1.0 && abs(float64(y)-center) < 1.0:
				sb.WriteString("+")
			default:
				sb.WriteString("·")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
