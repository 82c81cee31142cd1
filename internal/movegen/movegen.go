package movegen

import (
	. "github.com/kestrelchess/kestrel/internal/bitboards"
	"github.com/kestrelchess/kestrel/internal/game"
	. "github.com/kestrelchess/kestrel/internal/helpers"
)

// Generate returns the pseudo-legal moves for the side to move, ordered
// by origin square ascending. It never mutates the board; calling it
// repeatedly between mutations yields identical lists.
func Generate(tables *AttackTables, b *game.Board) MoveList {
	moves := make(MoveList, 0, 64)
	GenerateInto(tables, b, &moves)
	return moves
}

// GenerateInto is Generate with a caller-provided buffer, for callers
// that recycle MoveLists (see GetMoveList/ReleaseMoveList).
func GenerateInto(tables *AttackTables, b *game.Board, moves *MoveList) {
	moves.Clear()

	for i := 0; i < 64; i++ {
		from := SquareFromIndex(i)
		piece := b.PieceAt(from)
		if piece == NoPiece || piece.Color() != b.SideToMove {
			continue
		}

		switch piece.Type() {
		case Pawn:
			generatePawnMoves(tables, b, moves, from)
		case Knight:
			generateTargetMoves(moves, from, tables.KnightAttacks(from) &^ b.FriendlyBB(b.SideToMove))
		case Bishop:
			generateTargetMoves(moves, from, tables.BishopMoves(from, b.AllBB) &^ b.FriendlyBB(b.SideToMove))
		case Rook:
			generateTargetMoves(moves, from, tables.RookMoves(from, b.AllBB) &^ b.FriendlyBB(b.SideToMove))
		case Queen:
			generateTargetMoves(moves, from, tables.QueenMoves(from, b.AllBB) &^ b.FriendlyBB(b.SideToMove))
		case King:
			generateTargetMoves(moves, from, tables.KingAttacks(from) &^ b.FriendlyBB(b.SideToMove))
			generateCastlingMoves(b, moves, from)
		}
	}
}

func generateTargetMoves(moves *MoveList, from Square, targets Bitboard) {
	temp := targets
	for temp != 0 {
		var to int
		to, temp = temp.NextIndexOfOne()
		moves.Add(NewMove(from, SquareFromIndex(to)))
	}
}

var promotionOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

func addPromotions(moves *MoveList, from Square, to Square) {
	for _, promotion := range promotionOrder {
		moves.Add(NewPromotionMove(from, to, promotion))
	}
}

func generatePawnMoves(tables *AttackTables, b *game.Board, moves *MoveList, from Square) {
	us := b.SideToMove

	pushOffset := OffsetN
	initialRow, prePromotionRow := 1, 6
	if us == Black {
		pushOffset = OffsetS
		initialRow, prePromotionRow = 6, 1
	}
	row := from.Row()

	attacks := tables.PawnAttacks(us, from)

	// captures, promoting on the last rank
	captures := attacks & b.EnemyBB(us)
	temp := captures
	for temp != 0 {
		var to int
		to, temp = temp.NextIndexOfOne()
		if row == prePromotionRow {
			addPromotions(moves, from, SquareFromIndex(to))
		} else {
			moves.Add(NewMove(from, SquareFromIndex(to)))
		}
	}

	if b.EnPassant != SquareNone && attacks&SquareBitboard(b.EnPassant) != 0 {
		moves.Add(NewEnPassantMove(from, b.EnPassant))
	}

	// pushes
	oneAhead := Square(int(from) + pushOffset)
	if !oneAhead.IsValid() || !b.Empty(oneAhead) {
		return
	}
	switch row {
	case prePromotionRow:
		addPromotions(moves, from, oneAhead)
	case initialRow:
		moves.Add(NewMove(from, oneAhead))
		twoAhead := Square(int(oneAhead) + pushOffset)
		if b.Empty(twoAhead) {
			moves.Add(NewMove(from, twoAhead))
		}
	default:
		moves.Add(NewMove(from, oneAhead))
	}
}

// castlingEmptyMasks[c][side] holds the squares between king and rook
// that must be empty.
var castlingEmptyMasks = func() [2][2]Bitboard {
	squares := [2][2][]Square{
		{{SqF1, SqG1}, {SqB1, SqC1, SqD1}},
		{{SqF8, SqG8}, {SqB8, SqC8, SqD8}},
	}
	result := [2][2]Bitboard{}
	for c := range squares {
		for side := range squares[c] {
			for _, s := range squares[c][side] {
				result[c][side] |= SquareBitboard(s)
			}
		}
	}
	return result
}()

// generateCastlingMoves gates on rights, between-square emptiness, and
// the rook still standing on its corner. King safety along the path is
// deliberately not checked here; this generator is pseudo-legal.
func generateCastlingMoves(b *game.Board, moves *MoveList, from Square) {
	us := b.SideToMove
	if from != game.KingHomes[us] {
		return
	}

	for _, side := range AllCastlingSides {
		if !b.CastlingRights[us][side] {
			continue
		}
		if b.AllBB&castlingEmptyMasks[us][side] != 0 {
			continue
		}
		if b.PieceAt(game.RookHomes[us][side]) != MakePiece(us, Rook) {
			continue
		}
		moves.Add(CastleMove(us, side))
	}
}
