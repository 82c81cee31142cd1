// Command perft enumerates legal move paths from a position, split by
// root move. Usage:
//
//	perft [depth] [fen...] [profile]
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kestrelchess/kestrel/internal/bitboards"
	"github.com/kestrelchess/kestrel/internal/game"
	. "github.com/kestrelchess/kestrel/internal/helpers"
	"github.com/kestrelchess/kestrel/internal/movegen"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
)

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func main() {
	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
		args = FilterSlice(args, func(arg string) bool {
			return arg != "profile"
		})
	}

	depth := 5
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			fail(err)
		}
		depth = v
		args = args[1:]
	}

	fen := game.StartingFen
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	tables := bitboards.NewAttackTables()
	board := game.NewBoard()
	if err := board.LoadFen(fen); !IsNil(err) {
		fail(err)
	}

	rootMoves, err := movegen.LegalMoves(tables, board)
	if !IsNil(err) {
		fail(err)
	}

	bar := progressbar.Default(int64(len(rootMoves)), fmt.Sprintf("perft %v", depth))

	total := int64(0)
	lines := make([]string, 0, len(rootMoves))
	for _, move := range rootMoves {
		next := *board
		if err := next.MakeMove(move); !IsNil(err) {
			fail(err)
		}
		count, err := movegen.Perft(tables, &next, depth-1)
		if !IsNil(err) {
			fail(err)
		}
		total += count
		lines = append(lines, fmt.Sprintf("%v: %v", move, count))
		_ = bar.Add(1)
	}
	_ = bar.Close()

	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println("Nodes searched:", total)
}
