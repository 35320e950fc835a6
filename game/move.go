package game

import "fmt"

type MoveType int

const (
	// Movement leaps an active piece over an own pivot piece.
	Movement MoveType = iota
	// Placement drops a reserve piece on an empty square.
	Placement
)

// Move is a tagged value: Active, Pivot and Conversions are meaningful
// for movements, At for placements.
type Move struct {
	Type        MoveType
	Color       Color
	Active      Coord
	Pivot       Coord
	Conversions []Coord
	At          Coord
}

// NewMovement builds a movement with no conversions declared.
func NewMovement(color Color, active, pivot Coord) Move {
	return Move{Type: Movement, Color: color, Active: active, Pivot: pivot}
}

func NewPlacement(color Color, at Coord) Move {
	return Move{Type: Placement, Color: color, At: at}
}

// Dest is the landing square: the point reflection of the active
// square through the pivot. Placements land on their target square.
func (m Move) Dest() Coord {
	if m.Type == Placement {
		return m.At
	}
	dx := m.Pivot.X - m.Active.X
	dy := m.Pivot.Y - m.Active.Y
	return Coord{m.Pivot.X + dx, m.Pivot.Y + dy}
}

// Gap is the number of skipped squares between active and pivot.
func (m Move) Gap() int {
	if m.Type == Placement {
		return 0
	}
	if m.Active == m.Pivot {
		panic(fmt.Sprintf("movement with active == pivot at %v", m.Active))
	}
	return max(absInt(m.Active.X-m.Pivot.X)-1, absInt(m.Active.Y-m.Pivot.Y)-1)
}

func (m Move) String() string {
	if m.Type == Placement {
		return fmt.Sprintf("%v ->(%d,%d)", m.Color, m.At.X, m.At.Y)
	}
	s := fmt.Sprintf("%v (%d,%d)x(%d,%d)", m.Color, m.Active.X, m.Active.Y, m.Pivot.X, m.Pivot.Y)
	for _, c := range m.Conversions {
		s += fmt.Sprintf("*(%d,%d)", c.X, c.Y)
	}
	return s
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// IllegalMoveReason is the rejected-input half of the error model:
// ValidMove reports why a move is illegal instead of failing, so
// callers (the notation layer, move enumeration) can react.
type IllegalMoveReason int

const (
	Legal IllegalMoveReason = iota
	ActiveNotOwned
	PivotNotOwned
	DestNotEmpty
	DestNotInBounds
	GapTooBig
	EmptyReserve
	TriedConvertCapture
)

func (r IllegalMoveReason) String() string {
	switch r {
	case Legal:
		return "Legal"
	case ActiveNotOwned:
		return "ActiveNotOwned"
	case PivotNotOwned:
		return "PivotNotOwned"
	case DestNotEmpty:
		return "DestNotEmpty"
	case DestNotInBounds:
		return "DestNotInBounds"
	case GapTooBig:
		return "GapTooBig"
	case EmptyReserve:
		return "EmptyReserve"
	case TriedConvertCapture:
		return "TriedConvertCapture"
	default:
		return fmt.Sprintf("IllegalMoveReason(%d)", int(r))
	}
}

// ValidMove returns Legal or the specific reason the move is not.
// Capture and conversion are mutually exclusive fates per square:
// declaring a conversion on a square that would be captured outright
// is rejected.
func (b *Board) ValidMove(m Move) IllegalMoveReason {
	switch m.Type {
	case Movement:
		pieces := b.PiecesOf(m.Color)
		if !pieces.Contains(m.Active) {
			return ActiveNotOwned
		}
		if !pieces.Contains(m.Pivot) {
			return PivotNotOwned
		}
		dest := m.Dest()
		if b.occupied(dest) {
			return DestNotEmpty
		}
		if !b.InBounds(dest) {
			return DestNotInBounds
		}
		if m.Gap() > b.MaxGap {
			return GapTooBig
		}
		captured := b.CapturableAround(m.Color, m.Active, dest)
		for _, converted := range m.Conversions {
			if containsCoord(captured, converted) {
				return TriedConvertCapture
			}
		}
		return Legal
	case Placement:
		if b.occupied(m.At) {
			return DestNotEmpty
		}
		if b.ReserveOf(m.Color) <= 0 {
			return EmptyReserve
		}
		return Legal
	default:
		panic(fmt.Sprintf("unknown move type %d", m.Type))
	}
}
