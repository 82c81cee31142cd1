package game

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/kestrelchess/kestrel/internal/helpers"
)

const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFen replaces the whole position with the one described by fen.
// Parsing is tolerant: missing or truncated fields leave the later
// fields at their defaults, and unknown placement characters are
// skipped. Inconsistent castling rights and en-passant targets are
// repaired rather than rejected.
func (b *Board) LoadFen(fen string) Error {
	b.clearPosition()

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return Errorf("empty fen %q", fen)
	}

	row, col := 7, 0
	for _, c := range fields[0] {
		switch {
		case c == '/':
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			if piece, err := PieceFromRune(c); IsNil(err) && row >= 0 && col < 8 {
				b.PutPiece(piece, SquareFromRowCol(row, col))
				col++
			}
		}
	}

	if len(fields) > 1 {
		if player, err := ColorFromString(fields[1]); IsNil(err) {
			b.SideToMove = player
		}
	}

	if len(fields) > 2 {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.CastlingRights[White][Kingside] = true
			case 'Q':
				b.CastlingRights[White][Queenside] = true
			case 'k':
				b.CastlingRights[Black][Kingside] = true
			case 'q':
				b.CastlingRights[Black][Queenside] = true
			}
		}
	}

	if len(fields) > 3 && fields[3] != "-" {
		if target, err := SquareFromString(fields[3]); IsNil(err) {
			b.EnPassant = target
		}
	}

	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			b.HalfMoveClock = v
		}
	}
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			b.FullMoveNumber = v
		}
	}

	b.repairCastlingRights()
	b.repairEnPassant()

	return NilError
}

// repairCastlingRights drops any right whose king or rook has left its
// home square.
func (b *Board) repairCastlingRights() {
	for _, c := range []Color{White, Black} {
		king := MakePiece(c, King)
		rook := MakePiece(c, Rook)
		for _, side := range AllCastlingSides {
			if !b.CastlingRights[c][side] {
				continue
			}
			b.CastlingRights[c][side] = b.PieceAt(KingHomes[c]) == king &&
				b.PieceAt(RookHomes[c][side]) == rook
		}
	}
}

// repairEnPassant keeps the en-passant target only when the position is
// consistent with a double push on the previous ply: the pushed enemy
// pawn sits in front of the target, a pawn of the other color stands
// beside it, and both the target and the pushed pawn's origin square are
// empty. The side to move is not consulted.
func (b *Board) repairEnPassant() {
	target := b.EnPassant
	if target == SquareNone {
		return
	}

	valid := false
	col := target.Col()

	adjacent := func(row int, piece Piece) bool {
		if col > 0 && b.PieceAt(SquareFromRowCol(row, col-1)) == piece {
			return true
		}
		if col < 7 && b.PieceAt(SquareFromRowCol(row, col+1)) == piece {
			return true
		}
		return false
	}

	switch target.Row() {
	case 5: // rank 6: Black just double-pushed
		valid = b.PieceAt(SquareFromRowCol(4, col)) == BPawn &&
			adjacent(4, WPawn) &&
			b.Empty(SquareFromRowCol(6, col)) &&
			b.Empty(target)
	case 2: // rank 3: White just double-pushed
		valid = b.PieceAt(SquareFromRowCol(3, col)) == WPawn &&
			adjacent(3, BPawn) &&
			b.Empty(SquareFromRowCol(1, col)) &&
			b.Empty(target)
	}

	if !valid {
		b.EnPassant = SquareNone
	}
}

// FenString emits the canonical six-field FEN for the position.
func (b *Board) FenString() string {
	placement := ""
	for row := 7; row >= 0; row-- {
		numEmpty := 0
		for col := 0; col < 8; col++ {
			piece := b.PieceAt(SquareFromRowCol(row, col))
			if piece == NoPiece {
				numEmpty++
				continue
			}
			if numEmpty > 0 {
				placement += strconv.Itoa(numEmpty)
				numEmpty = 0
			}
			placement += piece.String()
		}
		if numEmpty > 0 {
			placement += strconv.Itoa(numEmpty)
		}
		if row != 0 {
			placement += "/"
		}
	}

	player := "w"
	if b.SideToMove == Black {
		player = "b"
	}

	castling := ""
	letters := [2][2]string{{"K", "Q"}, {"k", "q"}}
	for _, c := range []Color{White, Black} {
		for _, side := range AllCastlingSides {
			if b.CastlingRights[c][side] {
				castling += letters[c][side]
			}
		}
	}
	if castling == "" {
		castling = "-"
	}

	return fmt.Sprintf("%v %v %v %v %v %v",
		placement, player, castling, b.EnPassant, b.HalfMoveClock, b.FullMoveNumber)
}

// String renders the human-facing diagram: a bordered grid with rank
// labels on the right, file labels below, and the FEN trailer.
func (b *Board) String() string {
	border := " +---+---+---+---+---+---+---+---+\n"

	diagram := "\n" + border
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			diagram += " | " + b.PieceAt(SquareFromRowCol(row, col)).String()
		}
		diagram += fmt.Sprintf(" | %v\n", row+1)
		diagram += border
	}
	diagram += "   a   b   c   d   e   f   g   h\n"
	diagram += "\n\nFen: " + b.FenString()

	return diagram
}
