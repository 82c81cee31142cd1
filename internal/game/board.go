package game

import (
	. "github.com/kestrelchess/kestrel/internal/bitboards"
	. "github.com/kestrelchess/kestrel/internal/helpers"
)

// Board is the mutable position: a square->piece mailbox, twelve
// per-piece bitboards, the color aggregates, and the game-state scalars.
// The mailbox and the bitboards are maintained in lockstep. Board is a
// plain value (arrays and scalars), so copying it copies the position.
type Board struct {
	Squares [64]Piece
	Pieces  [12]Bitboard

	WhiteBB Bitboard
	BlackBB Bitboard
	AllBB   Bitboard

	SideToMove     Color
	CastlingRights [2][2]bool // indexed by Color, CastlingSide
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
}

// NewBoard returns an empty board with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.clearPosition()
	return b
}

func (b *Board) clearPosition() {
	*b = Board{}
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
	b.EnPassant = SquareNone
	b.FullMoveNumber = 1
}

func (b *Board) PieceAt(s Square) Piece {
	return b.Squares[s]
}

func (b *Board) Empty(s Square) bool {
	return b.Squares[s] == NoPiece
}

func (b *Board) FriendlyBB(c Color) Bitboard {
	if c == White {
		return b.WhiteBB
	}
	return b.BlackBB
}

func (b *Board) EnemyBB(c Color) Bitboard {
	if c == White {
		return b.BlackBB
	}
	return b.WhiteBB
}

// PutPiece places piece on s, displacing whatever was there.
func (b *Board) PutPiece(piece Piece, s Square) {
	mask := SquareBitboard(s)

	if current := b.Squares[s]; current != NoPiece {
		b.Pieces[current] &= ^mask
		b.WhiteBB &= ^mask
		b.BlackBB &= ^mask
	}

	b.Pieces[piece] |= mask
	b.Squares[s] = piece
	if piece.Color() == White {
		b.WhiteBB |= mask
	} else {
		b.BlackBB |= mask
	}
	b.AllBB = b.WhiteBB | b.BlackBB
}

// DeletePiece empties s.
func (b *Board) DeletePiece(s Square) {
	current := b.Squares[s]
	if current == NoPiece {
		return
	}

	mask := SquareBitboard(s)
	b.Pieces[current] &= ^mask
	b.WhiteBB &= ^mask
	b.BlackBB &= ^mask
	b.Squares[s] = NoPiece
	b.AllBB = b.WhiteBB | b.BlackBB
}

var RookHomes = [2][2]Square{
	{SqH1, SqA1},
	{SqH8, SqA8},
}

var KingHomes = [2]Square{SqE1, SqE8}

// castlingPieceMasks[c][side] covers the king home and rook corner for
// that right; any move touching either square forfeits it.
var castlingPieceMasks = func() [2][2]Bitboard {
	result := [2][2]Bitboard{}
	for _, c := range []Color{White, Black} {
		for _, side := range AllCastlingSides {
			result[c][side] = SquareBitboard(KingHomes[c]) | SquareBitboard(RookHomes[c][side])
		}
	}
	return result
}()

func rookCastleSquares(from Square, to Square) (Square, Square, Error) {
	switch from {
	case SqE1:
		switch to {
		case SqG1:
			return SqH1, SqF1, NilError
		case SqC1:
			return SqA1, SqD1, NilError
		}
	case SqE8:
		switch to {
		case SqG8:
			return SqH8, SqF8, NilError
		case SqC8:
			return SqA8, SqD8, NilError
		}
	}
	return SquareNone, SquareNone, Errorf("unknown castling move %v%v", from, to)
}

// MakeMove applies m to the board. Moves are expected to come from the
// generator; the sentinels fail, as does a castling move that is not one
// of the four king castling moves. Other structurally invalid moves are
// not diagnosed.
func (b *Board) MakeMove(m Move) Error {
	if !m.IsValid() {
		return Errorf("invalid move %016b", uint16(m))
	}

	from, to := m.From(), m.To()
	piece := b.Squares[from]
	captured := m.Kind() == EnPassantMove || b.Squares[to] != NoPiece

	switch m.Kind() {
	case NormalMove:
		b.DeletePiece(from)
		b.PutPiece(piece, to)
	case PromotionMove:
		b.DeletePiece(from)
		b.PutPiece(MakePiece(piece.Color(), m.Promotion()), to)
	case EnPassantMove:
		// The captured pawn shares to's file and from's rank.
		b.DeletePiece(SquareFromRowCol(from.Row(), to.Col()))
		b.DeletePiece(from)
		b.PutPiece(piece, to)
	case CastlingMove:
		rookFrom, rookTo, err := rookCastleSquares(from, to)
		if !IsNil(err) {
			return err
		}
		rook := b.Squares[rookFrom]
		b.DeletePiece(from)
		b.PutPiece(piece, to)
		b.DeletePiece(rookFrom)
		b.PutPiece(rook, rookTo)
	}

	b.EnPassant = SquareNone
	if m.Kind() == NormalMove && piece.Type() == Pawn && AbsDiff(int(from), int(to)) == 2*OffsetN {
		b.EnPassant = Square((int(from) + int(to)) / 2)
	}

	moveBoard := SquareBitboard(from) | SquareBitboard(to)
	for _, c := range []Color{White, Black} {
		for _, side := range AllCastlingSides {
			if moveBoard&castlingPieceMasks[c][side] != 0 {
				b.CastlingRights[c][side] = false
			}
		}
	}

	if piece.Type() == Pawn || captured {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	if b.SideToMove == Black {
		b.FullMoveNumber++
	}
	b.SideToMove = b.SideToMove.Other()

	return NilError
}
