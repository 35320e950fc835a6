package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quorum/game"
)

// Engine runs a local match between two players on a single board.
type Engine struct {
	Board    game.Board
	players  map[game.Color]Player
	maxPlies int
	matchID  string
}

// LocalEngine sets up a match from the given position. maxPlies caps
// the game length; a non-positive value means no cap.
func LocalEngine(white, black Player, board game.Board, maxPlies int) *Engine {
	if white == nil || black == nil {
		panic("both players must be provided")
	}
	return &Engine{
		Board:    board,
		players:  map[game.Color]Player{game.White: white, game.Black: black},
		maxPlies: maxPlies,
		matchID:  uuid.NewString(),
	}
}

// Run plays the game to completion and returns the winner, or false if
// the ply cap was reached first. A position with no winner and no
// legal moves panics; the rules do not produce one.
func (e *Engine) Run() (game.Color, bool) {
	log.Info().Str("match", e.matchID).Msgf("%v is starting", e.Board.WhoseMove)

	ply := 0
	for {
		if winner, ok := e.Board.Winner(); ok {
			log.Info().Str("match", e.matchID).Int("plies", ply).Msgf("%v wins", winner)
			return winner, true
		}
		if e.maxPlies > 0 && ply >= e.maxPlies {
			log.Info().Str("match", e.matchID).Int("plies", ply).Msg("ply cap reached with no winner")
			return 0, false
		}

		mover := e.Board.WhoseMove
		mv, ok := e.players[mover].FindMove(&e.Board)
		if !ok {
			panic(fmt.Sprintf("no winner and no legal moves on %v's turn with max gap %d",
				mover, e.Board.MaxGap))
		}
		e.Board = e.Board.Apply(mv)
		ply++

		log.Debug().Str("match", e.matchID).Int("ply", ply).
			Int("white_reserve", e.Board.WhiteReserve).
			Int("black_reserve", e.Board.BlackReserve).
			Msgf("%v", mv)
	}
}
