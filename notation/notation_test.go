package notation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quorum/game"
)

func TestParseMovePlacement(t *testing.T) {
	mv, err := ParseMove(game.Black, "->4六")
	require.NoError(t, err)
	require.Equal(t, game.NewPlacement(game.Black, game.Coord{X: 3, Y: 5}), mv)
}

func TestParseMoveMovement(t *testing.T) {
	// Active (2,4) leaping to (2,0) pivots on the midpoint (2,2).
	mv, err := ParseMove(game.White, "3五3一")
	require.NoError(t, err)
	require.Equal(t, game.NewMovement(game.White, game.Coord{X: 2, Y: 4}, game.Coord{X: 2, Y: 2}), mv)
	require.Equal(t, game.Coord{X: 2, Y: 0}, mv.Dest())
}

func TestParseMoveWithConversions(t *testing.T) {
	mv, err := ParseMove(game.White, "3五3一*3二")
	require.NoError(t, err)
	require.Equal(t, game.Movement, mv.Type)
	require.Equal(t, game.Coord{X: 2, Y: 4}, mv.Active)
	require.Equal(t, game.Coord{X: 2, Y: 2}, mv.Pivot)
	require.Equal(t, []game.Coord{{X: 2, Y: 1}}, mv.Conversions)
}

func TestParseMoveConversionsWithoutMarker(t *testing.T) {
	// The '*' before the conversion list may be omitted.
	mv, err := ParseMove(game.White, "3五3一3二")
	require.NoError(t, err)
	require.Equal(t, []game.Coord{{X: 2, Y: 1}}, mv.Conversions)
}

func TestParseMoveMisalignedPivot(t *testing.T) {
	// An odd file delta has no on-grid midpoint to leap over.
	_, err := ParseMove(game.White, "3一4一")
	require.Error(t, err)
}

func TestParseMoveRejectsTrailingInput(t *testing.T) {
	_, err := ParseMove(game.White, "3五3一 leftover")
	require.Error(t, err)
}

func TestParseMoveRejectsBadCoord(t *testing.T) {
	_, err := ParseMove(game.White, "0一1一")
	require.Error(t, err)
	_, err = ParseMove(game.White, "3x3一")
	require.Error(t, err)
}

func TestParseGame(t *testing.T) {
	record := "1. 1一5五 1九3五\n" +
		"2. 1二3四 2九2五\n" +
		"3. 3二3六* 3九3七\n" +
		"4. 1四5八 2八4八\n" +
		"5. 1三5九 9一7五\n" +
		"1-0\n"

	turns, err := ParseGame(record)
	require.NoError(t, err)
	require.Len(t, turns, 5)

	require.Equal(t, 1, turns[0].Number)
	require.Equal(t, game.NewMovement(game.White, game.Coord{X: 0, Y: 0}, game.Coord{X: 2, Y: 2}), turns[0].White)
	require.Equal(t, game.NewMovement(game.Black, game.Coord{X: 0, Y: 8}, game.Coord{X: 1, Y: 6}), turns[0].Black)

	// Turn 3's white move declares an asterisk with no conversion
	// squares, which is an empty conversion set.
	require.Empty(t, turns[2].White.Conversions)
	require.Equal(t, 5, turns[4].Number)
}

func TestParseGameRejectsMalformedLine(t *testing.T) {
	_, err := ParseGame("1: 1一5五 1九3五\n")
	require.Error(t, err)
}

func TestParsedMovesApplyToBoard(t *testing.T) {
	// The opening turn of a recorded game replays cleanly on the
	// start position.
	turns, err := ParseGame("1. 1一5三 1九3五\n")
	require.NoError(t, err)
	require.Len(t, turns, 1)

	board := game.StartPosition(9)
	require.Equal(t, game.Legal, board.ValidMove(turns[0].White))
	board = board.Apply(turns[0].White)
	require.Equal(t, game.Legal, board.ValidMove(turns[0].Black))
	board = board.Apply(turns[0].Black)

	require.Equal(t, 20, board.White.Len())
	require.Equal(t, 20, board.Black.Len())
	require.Equal(t, game.White, board.WhoseMove)
}

func TestParsedGameReplaysToCompletion(t *testing.T) {
	// A full recorded game exercising quiet leaps, conversions with
	// and without the marker, placements and a result tag; every move
	// must replay legally from the start position.
	record := "1. 1一5三 1九3五\n" +
		"2. 1二3四 2九2五\n" +
		"3. 3二3六* 3九3七\n" +
		"4. 1四5八 2八4八\n" +
		"5. 1三5九 9一7五\n" +
		"6. 9九7七 9四5六\n" +
		"7. 3六3二 9二7四\n" +
		"8. 4一6五 9三5五*6五\n" +
		"9. 8八6六 ->4六\n" +
		"10. 7八7六 7四3六\n" +
		"11. 3一3三 5六5四\n" +
		"12. 9六5六 8一6三\n" +
		"13. 3二7四*7五 8三4三\n" +
		"14. 7九3九* 8二6二\n" +
		"15. ->4五 ->3五\n" +
		"16. 8七2五* 4八4四*4五\n" +
		"0-1"

	turns, err := ParseGame(record)
	require.NoError(t, err)
	require.Len(t, turns, 16)

	board := game.StartPosition(9)
	for _, turn := range turns {
		require.Equal(t, game.Legal, board.ValidMove(turn.White), "turn %d white %v", turn.Number, turn.White)
		board = board.Apply(turn.White)
		require.Equal(t, game.Legal, board.ValidMove(turn.Black), "turn %d black %v", turn.Number, turn.Black)
		board = board.Apply(turn.Black)
	}

	require.Equal(t, game.White, board.WhoseMove)
	require.Equal(t, game.NewPlacement(game.White, game.Coord{X: 3, Y: 4}), turns[14].White)
	require.Equal(t, []game.Coord{{X: 3, Y: 4}}, turns[15].Black.Conversions)
}
