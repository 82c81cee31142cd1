package movegen

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/kestrel/internal/bitboards"
	"github.com/kestrelchess/kestrel/internal/game"
	. "github.com/kestrelchess/kestrel/internal/helpers"
)

var testTables = bitboards.NewAttackTables()

func pp(t any) string {
	return spew.Sdump(t)
}

func boardFromFen(t *testing.T, fen string) *game.Board {
	t.Helper()
	b := game.NewBoard()
	require.True(t, IsNil(b.LoadFen(fen)))
	return b
}

func movesOfKind(moves MoveList, kind MoveKind) MoveList {
	return MoveList(FilterSlice(moves, func(m Move) bool {
		return m.Kind() == kind
	}))
}

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	b := boardFromFen(t, game.StartingFen)
	moves := Generate(testTables, b)

	require.Equal(t, 20, len(moves), pp(moves.Strings()))

	pawnPushes := 0
	for _, m := range moves {
		if b.PieceAt(m.From()).Type() == Pawn {
			pawnPushes++
		}
	}
	assert.Equal(t, 16, pawnPushes)

	for _, s := range []string{"b1a3", "b1c3", "g1f3", "g1h3"} {
		assert.True(t, Contains(moves.Strings(), s), s)
	}
}

func TestGenerateOnEmptyBoard(t *testing.T) {
	moves := Generate(testTables, game.NewBoard())
	assert.Equal(t, 0, len(moves))
}

func TestGenerateIsIdempotent(t *testing.T) {
	b := boardFromFen(t, "r1b1kb1r/p1pqn1P1/1pn4p/8/2P5/2N5/PPQBN1pP/R3KB1R w KQkq - 0 12")

	first := Generate(testTables, b)
	second := Generate(testTables, b)
	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, "r1b1kb1r/p1pqn1P1/1pn4p/8/2P5/2N5/PPQBN1pP/R3KB1R w KQkq - 0 12", b.FenString())
}

func TestGenerateOrderedByOriginAndDuplicateFree(t *testing.T) {
	b := boardFromFen(t, "rnbqkb1r/2pp2pn/1p6/pP1PppPp/8/2N5/P1P1PP1P/R1BQKBNR w KQkq f6 0 8")
	moves := Generate(testTables, b)

	assert.True(t, sort.SliceIsSorted(moves, func(i, j int) bool {
		return moves[i].From() < moves[j].From()
	}), pp(moves.Strings()))

	seen := map[Move]bool{}
	for _, m := range moves {
		assert.False(t, seen[m], "duplicate %v", m)
		seen[m] = true
	}
}

func TestEnPassantGeneration(t *testing.T) {
	b := boardFromFen(t, "rnbqkb1r/2pp2pn/1p6/pP1PppPp/8/2N5/P1P1PP1P/R1BQKBNR w KQkq f6 0 8")
	require.Equal(t, SqF6, b.EnPassant)

	moves := Generate(testTables, b)
	enPassants := movesOfKind(moves, EnPassantMove)

	// f6 is attacked only by the g5 pawn; e5 holds a Black pawn
	require.Equal(t, 1, len(enPassants), pp(enPassants.Strings()))
	assert.Equal(t, NewEnPassantMove(SqG5, SqF6), enPassants[0])

	for _, m := range moves {
		assert.NotEqual(t, SqE5, m.From())
	}
}

func TestPromotionFanOut(t *testing.T) {
	b := boardFromFen(t, "r1b1kb1r/p1pqn1P1/1pn4p/8/2P5/2N5/PPQBN1pP/R3KB1R w KQkq - 0 12")
	moves := Generate(testTables, b)

	promotions := movesOfKind(moves, PromotionMove)
	byDestination := map[Square]MoveList{}
	for _, m := range promotions {
		require.Equal(t, SqG7, m.From())
		byDestination[m.To()] = append(byDestination[m.To()], m)
	}

	// push to g8 plus captures on f8 and h8, four promotions each
	require.Equal(t, 3, len(byDestination), pp(promotions.Strings()))
	for _, to := range []Square{SqF8, SqG8, SqH8} {
		fanOut := byDestination[to]
		require.Equal(t, 4, len(fanOut), "destination %v", to)

		kinds := map[PieceType]bool{}
		for _, m := range fanOut {
			kinds[m.Promotion()] = true
		}
		assert.Equal(t, 4, len(kinds), "destination %v", to)
	}

	// no plain pawn move may target the promotion rank
	for _, m := range moves {
		if b.PieceAt(m.From()).Type() == Pawn && m.Kind() == NormalMove {
			assert.NotEqual(t, 7, m.To().Row())
		}
	}
}

func TestDoublePushGeneration(t *testing.T) {
	b := boardFromFen(t, game.StartingFen)
	moves := Generate(testTables, b)

	assert.True(t, Contains(moves, NewMove(SqE2, SqE3)))
	assert.True(t, Contains(moves, NewMove(SqE2, SqE4)))

	// a blocked pawn gets neither push
	b = boardFromFen(t, "rnbqkbnr/pppppppp/8/8/8/4n3/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	moves = Generate(testTables, b)
	assert.False(t, Contains(moves, NewMove(SqE2, SqE3)))
	assert.False(t, Contains(moves, NewMove(SqE2, SqE4)))

	// a pawn off its initial row only pushes one step
	b = boardFromFen(t, "rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	moves = Generate(testTables, b)
	assert.True(t, Contains(moves, NewMove(SqE3, SqE4)))
	assert.False(t, Contains(moves, NewMove(SqE3, SqE5)))
}

func TestCastlingGeneration(t *testing.T) {
	b := boardFromFen(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := Generate(testTables, b)

	castles := movesOfKind(moves, CastlingMove)
	require.Equal(t, 2, len(castles), pp(castles.Strings()))
	assert.True(t, Contains(castles, CastleMove(White, Kingside)))
	assert.True(t, Contains(castles, CastleMove(White, Queenside)))

	require.True(t, IsNil(b.MakeMove(CastleMove(White, Kingside))))
	assert.Equal(t, WKing, b.PieceAt(SqG1))
	assert.Equal(t, WRook, b.PieceAt(SqF1))
	assert.False(t, b.CastlingRights[White][Kingside])
	assert.False(t, b.CastlingRights[White][Queenside])

	blackCastles := movesOfKind(Generate(testTables, b), CastlingMove)
	assert.Equal(t, 2, len(blackCastles))
}

func TestCastlingBlockedByPieces(t *testing.T) {
	// bishops on f1 and b8 block one side each
	b := boardFromFen(t, "rb2k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	castles := movesOfKind(Generate(testTables, b), CastlingMove)
	require.Equal(t, 1, len(castles), pp(castles.Strings()))
	assert.Equal(t, CastleMove(White, Queenside), castles[0])

	require.True(t, IsNil(b.MakeMove(NewMove(SqA1, SqA2))))
	castles = movesOfKind(Generate(testTables, b), CastlingMove)
	require.Equal(t, 1, len(castles))
	assert.Equal(t, CastleMove(Black, Kingside), castles[0])
}

func TestCastlingRequiresRights(t *testing.T) {
	b := boardFromFen(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	castles := movesOfKind(Generate(testTables, b), CastlingMove)
	assert.Equal(t, 0, len(castles))
}

func TestSliderGeneration(t *testing.T) {
	// a lone rook on d4 with a friendly pawn on d6 and an enemy on g4
	b := boardFromFen(t, "4k3/8/3P4/8/3R2p1/8/8/4K3 w - - 0 1")
	moves := Generate(testTables, b)

	rookMoves := MoveList(FilterSlice(moves, func(m Move) bool {
		return m.From() == SqD4
	}))

	targets := MapSlice(rookMoves, func(m Move) Square { return m.To() })
	assert.True(t, Contains(targets, SqD5), pp(rookMoves.Strings()))
	assert.False(t, Contains(targets, SqD6), "friendly blocker square excluded")
	assert.False(t, Contains(targets, SqD7), "beyond the blocker")
	assert.True(t, Contains(targets, SqG4), "first enemy blocker captured")
	assert.False(t, Contains(targets, SqH4), "beyond the capture")
	assert.True(t, Contains(targets, SqA4))
	assert.True(t, Contains(targets, SqD1))
}

func TestQueenGeneration(t *testing.T) {
	b := boardFromFen(t, "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	moves := Generate(testTables, b)

	queenMoves := FilterSlice(moves, func(m Move) bool {
		return m.From() == SqD4
	})
	assert.Equal(t, 27, len(queenMoves))
}
