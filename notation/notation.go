// Package notation parses the game's move notation into validated
// move values. A movement is written active square then destination
// square, optionally followed by '*' and the converted squares; a
// placement is "->" and the target square. Squares are a file digit
// 1-9 and a CJK numeral rank, both 1-based in text and 0-based in
// coordinates. The parser checks shape only; board legality is
// ValidMove's job.
package notation

import (
	"fmt"
	"strings"

	"quorum/game"
)

// Turn is one numbered line of a game record: White's move then
// Black's reply.
type Turn struct {
	Number int
	White  game.Move
	Black  game.Move
}

var rankNumerals = []rune("一二三四五六七八九")

// ParseGame parses numbered move-pair lines, optionally terminated by
// a 1-0 or 0-1 result tag.
func ParseGame(text string) ([]Turn, error) {
	p := &parser{input: []rune(text)}
	var turns []Turn
	for {
		p.skipSpace()
		if p.eof() {
			return turns, nil
		}
		if p.tryTag("1-0") || p.tryTag("0-1") {
			p.skipSpace()
			if !p.eof() {
				return nil, p.errorf("trailing input after game result")
			}
			return turns, nil
		}
		number, err := p.moveNumber()
		if err != nil {
			return nil, err
		}
		if !p.tryTag(".") {
			return nil, p.errorf("expected '.' after move number %d", number)
		}
		p.skipSpace()
		white, err := p.move(game.White)
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		black, err := p.move(game.Black)
		if err != nil {
			return nil, err
		}
		turns = append(turns, Turn{Number: number, White: white, Black: black})
	}
}

// ParseMove parses a single move for the given color. The whole input
// must be consumed.
func ParseMove(color game.Color, text string) (game.Move, error) {
	p := &parser{input: []rune(text)}
	mv, err := p.move(color)
	if err != nil {
		return game.Move{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return game.Move{}, p.errorf("trailing input after move")
	}
	return mv, nil
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t' || p.peek() == '\n' || p.peek() == '\r') {
		p.pos++
	}
}

func (p *parser) tryTag(tag string) bool {
	if strings.HasPrefix(string(p.input[p.pos:]), tag) {
		p.pos += len([]rune(tag))
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("notation: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) moveNumber() (int, error) {
	if p.peek() < '1' || p.peek() > '9' {
		return 0, p.errorf("expected move number")
	}
	n := 0
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		n = n*10 + int(p.peek()-'0')
		p.pos++
	}
	return n, nil
}

func (p *parser) move(color game.Color) (game.Move, error) {
	if p.tryTag("->") {
		at, err := p.coord()
		if err != nil {
			return game.Move{}, err
		}
		return game.NewPlacement(color, at), nil
	}

	active, err := p.coord()
	if err != nil {
		return game.Move{}, err
	}
	dest, err := p.coord()
	if err != nil {
		return game.Move{}, err
	}
	pivot, ok := pivotBetween(active, dest)
	if !ok {
		return game.Move{}, p.errorf("%v cannot move to %v: the pivot would not align to the grid", active, dest)
	}

	// The '*' before the conversion list is decorative and may be
	// omitted.
	p.tryTag("*")
	mv := game.NewMovement(color, active, pivot)
	for p.startsCoord() {
		conversion, err := p.coord()
		if err != nil {
			return game.Move{}, err
		}
		mv.Conversions = append(mv.Conversions, conversion)
	}
	return mv, nil
}

func (p *parser) startsCoord() bool {
	return p.peek() >= '1' && p.peek() <= '9' &&
		p.pos+1 < len(p.input) && rankIndex(p.input[p.pos+1]) >= 0
}

func (p *parser) coord() (game.Coord, error) {
	// Human notation starts at (1,1); coordinates start at (0,0).
	if p.peek() < '1' || p.peek() > '9' {
		return game.Coord{}, p.errorf("expected file digit 1-9")
	}
	file := int(p.peek()-'0') - 1
	p.pos++
	rank := rankIndex(p.peek())
	if rank < 0 {
		return game.Coord{}, p.errorf("expected rank numeral %s", string(rankNumerals))
	}
	p.pos++
	return game.Coord{X: file, Y: rank}, nil
}

func rankIndex(r rune) int {
	for i, numeral := range rankNumerals {
		if numeral == r {
			return i
		}
	}
	return -1
}

// pivotBetween recovers the leapt-over square as the midpoint of the
// written active and destination squares.
func pivotBetween(active, dest game.Coord) (game.Coord, bool) {
	dx := dest.X - active.X
	dy := dest.Y - active.Y
	if dx%2 != 0 || dy%2 != 0 {
		return game.Coord{}, false
	}
	return game.Coord{X: active.X + dx/2, Y: active.Y + dy/2}, true
}
