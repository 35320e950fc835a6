package game

import "fmt"

// MoveDelta records the squares gained and lost per color and the
// reserve changes of a single move. It is computed once per move and
// drives both the piece-set mutation and the incremental hash update,
// keeping the two in lockstep.
type MoveDelta struct {
	WhitePlus    []Coord
	WhiteMinus   []Coord
	BlackPlus    []Coord
	BlackMinus   []Coord
	WhiteReserve int
	BlackReserve int
}

func (d *MoveDelta) plusOf(color Color) *[]Coord {
	if color == White {
		return &d.WhitePlus
	}
	return &d.BlackPlus
}

func (d *MoveDelta) minusOf(color Color) *[]Coord {
	if color == White {
		return &d.WhiteMinus
	}
	return &d.BlackMinus
}

func (d *MoveDelta) reserveOf(color Color) *int {
	if color == White {
		return &d.WhiteReserve
	}
	return &d.BlackReserve
}

// moveDelta computes the effect of a legal move. Every convertible
// neighbor of the destination leaves the board and credits its owner's
// reserve; squares declared in Conversions additionally reappear in the
// mover's color at the cost of one mover reserve point each. Outright
// captures likewise credit the victim's reserve, never the capturer's.
func (b *Board) moveDelta(m Move) MoveDelta {
	var delta MoveDelta
	switch m.Type {
	case Movement:
		dest := m.Dest()
		*delta.plusOf(m.Color) = append(*delta.plusOf(m.Color), dest)
		*delta.minusOf(m.Color) = append(*delta.minusOf(m.Color), m.Active)

		opponent := m.Color.Opponent()
		convertible := b.ConvertibleAround(m.Color, m.Active, dest)
		for _, captured := range b.CapturableAround(m.Color, m.Active, dest) {
			if !containsCoord(convertible, captured) {
				*delta.minusOf(opponent) = append(*delta.minusOf(opponent), captured)
				*delta.reserveOf(opponent)++
			}
		}
		for _, flanked := range convertible {
			*delta.minusOf(opponent) = append(*delta.minusOf(opponent), flanked)
			*delta.reserveOf(opponent)++
			if containsCoord(m.Conversions, flanked) {
				*delta.plusOf(m.Color) = append(*delta.plusOf(m.Color), flanked)
				*delta.reserveOf(m.Color)--
			}
		}
	case Placement:
		*delta.plusOf(m.Color) = append(*delta.plusOf(m.Color), m.At)
		*delta.reserveOf(m.Color)--
	}
	return delta
}

// Apply plays a legal move and returns the resulting board. Applying
// an illegal move is a programming error.
func (b *Board) Apply(m Move) Board {
	if reason := b.ValidMove(m); reason != Legal {
		panic(fmt.Sprintf("applying illegal move %v: %v", m, reason))
	}
	delta := b.moveDelta(m)

	next := *b
	next.White = b.White.Clone()
	next.Black = b.Black.Clone()
	next.Hash = b.applyToHash(&delta)
	for _, c := range delta.WhiteMinus {
		next.White.Remove(c)
	}
	for _, c := range delta.WhitePlus {
		next.White.Add(c)
	}
	for _, c := range delta.BlackMinus {
		next.Black.Remove(c)
	}
	for _, c := range delta.BlackPlus {
		next.Black.Add(c)
	}
	next.WhiteReserve += delta.WhiteReserve
	next.BlackReserve += delta.BlackReserve
	next.WhoseMove = next.WhoseMove.Opponent()
	return next
}
