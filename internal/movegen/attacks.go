package movegen

import (
	. "github.com/kestrelchess/kestrel/internal/bitboards"
	"github.com/kestrelchess/kestrel/internal/game"
	. "github.com/kestrelchess/kestrel/internal/helpers"
)

// SquareAttacked reports whether any piece of `by` attacks s. A pawn of
// `by` attacks s exactly when a pawn of the other color standing on s
// would attack the pawn's square, so the opposite-color table is probed.
func SquareAttacked(tables *AttackTables, b *game.Board, s Square, by Color) bool {
	if tables.PawnAttacks(by.Other(), s)&b.Pieces[MakePiece(by, Pawn)] != 0 {
		return true
	}
	if tables.KnightAttacks(s)&b.Pieces[MakePiece(by, Knight)] != 0 {
		return true
	}
	if tables.KingAttacks(s)&b.Pieces[MakePiece(by, King)] != 0 {
		return true
	}

	rookish := b.Pieces[MakePiece(by, Rook)] | b.Pieces[MakePiece(by, Queen)]
	if tables.RookMoves(s, b.AllBB)&rookish != 0 {
		return true
	}
	bishopish := b.Pieces[MakePiece(by, Bishop)] | b.Pieces[MakePiece(by, Queen)]
	return tables.BishopMoves(s, b.AllBB)&bishopish != 0
}

func KingInCheck(tables *AttackTables, b *game.Board, c Color) bool {
	kingBoard := b.Pieces[MakePiece(c, King)]
	if kingBoard == 0 {
		return false
	}
	return SquareAttacked(tables, b, SquareFromIndex(kingBoard.FirstIndexOfOne()), c.Other())
}

// LegalMoves post-filters the pseudo-legal moves by applying each to a
// copy of the board and rejecting those that leave the mover's king in
// check.
func LegalMoves(tables *AttackTables, b *game.Board) (MoveList, Error) {
	pseudo := Generate(tables, b)
	legal := make(MoveList, 0, len(pseudo))

	for _, move := range pseudo {
		next := *b
		if err := next.MakeMove(move); !IsNil(err) {
			return legal, err
		}
		if !KingInCheck(tables, &next, b.SideToMove) {
			legal.Add(move)
		}
	}
	return legal, NilError
}

// Perft counts the move paths of the given depth, applying the legality
// filter at every node. The standard cross-check for a generator.
func Perft(tables *AttackTables, b *game.Board, depth int) (int64, Error) {
	if depth <= 0 {
		return 1, NilError
	}

	moves, err := LegalMoves(tables, b)
	if !IsNil(err) {
		return 0, err
	}
	if depth == 1 {
		return int64(len(moves)), NilError
	}

	total := int64(0)
	for _, move := range moves {
		next := *b
		if err := next.MakeMove(move); !IsNil(err) {
			return total, err
		}
		count, err := Perft(tables, &next, depth-1)
		if !IsNil(err) {
			return total, err
		}
		total += count
	}
	return total, NilError
}
