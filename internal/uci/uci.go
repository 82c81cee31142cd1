// Package uci is the line-oriented shell around the core: it parses a
// UCI subset and dispatches into the board and the generator. Search and
// evaluation commands answer with stubs.
package uci

import (
	"strings"

	"github.com/kestrelchess/kestrel/internal/bitboards"
	"github.com/kestrelchess/kestrel/internal/game"
	. "github.com/kestrelchess/kestrel/internal/helpers"
	"github.com/kestrelchess/kestrel/internal/movegen"
)

type Runner struct {
	Board  *game.Board
	Tables *bitboards.AttackTables
}

func NewRunner(tables *bitboards.AttackTables) (*Runner, Error) {
	board := game.NewBoard()
	if err := board.LoadFen(game.StartingFen); !IsNil(err) {
		return nil, err
	}
	return &Runner{Board: board, Tables: tables}, NilError
}

func parseFen(input string) string {
	s := strings.TrimPrefix(input, "position ")
	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.Split(s, " moves ")[0]
	}
	return game.StartingFen
}

func parseMoves(input string) []string {
	if !strings.Contains(input, " moves ") {
		return nil
	}
	return strings.Fields(strings.SplitN(input, " moves ", 2)[1])
}

// performMoveFromString resolves a long-algebraic move against the
// generator's output, so the shell can never apply a move the position
// does not offer.
func (r *Runner) performMoveFromString(s string) Error {
	moves := movegen.Generate(r.Tables, r.Board)
	for _, move := range moves {
		if move.String() == s {
			return r.Board.MakeMove(move)
		}
	}
	return Errorf("move %q not available in %q", s, r.Board.FenString())
}

var helpText = strings.Join([]string{
	"Commands:",
	"----------------------------------------",
	"uci",
	"\tTell the engine to use the UCI protocol; it answers 'uciok'.",
	"isready",
	"\tSynchronize with the GUI; the engine answers 'readyok'.",
	"ucinewgame",
	"\tReset the board to the starting position.",
	"position [fen <fenstring> | startpos] moves <move1> ... <movei>",
	"\tSet up the position on the internal board.",
	"go",
	"\tStart calculating (not implemented).",
	"stop",
	"\tStop calculating (not implemented).",
	"eval",
	"\tEvaluate the position (not implemented).",
	"d",
	"\tDisplay the current position.",
	"quit",
	"\tQuit the program.",
}, "\n")

// HandleInput dispatches one input line and returns the output lines.
// "quit" is the caller's concern; the runner never terminates anything.
func (r *Runner) HandleInput(input string) ([]string, Error) {
	result := []string{}
	command := input
	if i := strings.IndexByte(input, ' '); i >= 0 {
		command = input[:i]
	}

	switch command {
	case "uci":
		result = append(result, "id name kestrel")
		result = append(result, "id author the kestrel authors")
		result = append(result, "uciok")
	case "isready":
		result = append(result, "readyok")
	case "ucinewgame":
		if err := r.Board.LoadFen(game.StartingFen); !IsNil(err) {
			return result, err
		}
	case "position":
		if err := r.Board.LoadFen(parseFen(input)); !IsNil(err) {
			return result, err
		}
		for _, move := range parseMoves(input) {
			if err := r.performMoveFromString(move); !IsNil(err) {
				return result, err
			}
		}
	case "go", "stop", "eval":
		result = append(result, "info string "+command+" not implemented")
	case "d":
		result = append(result, r.Board.String())
	case "help":
		result = append(result, helpText)
	case "quit":
		result = append(result, "goodbye")
	default:
		result = append(result, "Unknown command, type help for more information")
	}
	return result, NilError
}
