package helpers

type Color uint8

const (
	White Color = iota
	Black
)

var _colorStrings = [2]string{
	"white", "black",
}

func (c Color) String() string {
	return _colorStrings[c]
}

func (c Color) Other() Color {
	return 1 - c
}

func ColorFromString(s string) (Color, Error) {
	switch s {
	case "w":
		return White, NilError
	case "b":
		return Black, NilError
	default:
		return White, Errorf("invalid color %q", s)
	}
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

func (p PieceType) String() string {
	return [7]string{
		"p", "n", "b", "r", "q", "k", "?",
	}[p]
}

func (p PieceType) IsValid() bool {
	return p < NoPieceType
}

// Piece is a colored piece. The numbering is load-bearing: it indexes the
// twelve per-piece bitboards, and Piece == PieceType + 6*Color.
type Piece uint8

const (
	WPawn Piece = iota
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
	NoPiece
)

func MakePiece(c Color, t PieceType) Piece {
	return Piece(uint8(t) + 6*uint8(c))
}

var _pieceTypeLookup = [13]PieceType{
	Pawn, Knight, Bishop, Rook, Queen, King,
	Pawn, Knight, Bishop, Rook, Queen, King,
	NoPieceType,
}

func (p Piece) Type() PieceType {
	return _pieceTypeLookup[p]
}

func (p Piece) Color() Color {
	if p >= BPawn {
		return Black
	}
	return White
}

func (p Piece) IsValid() bool {
	return p < NoPiece
}

func (p Piece) IsWhite() bool {
	return p <= WKing
}

func (p Piece) IsBlack() bool {
	return p >= BPawn && p <= BKing
}

var _pieceStrings = [13]string{
	"P", "N", "B", "R", "Q", "K",
	"p", "n", "b", "r", "q", "k",
	" ",
}

func (p Piece) String() string {
	return _pieceStrings[p]
}

func PieceFromRune(c rune) (Piece, Error) {
	switch c {
	case 'P':
		return WPawn, NilError
	case 'N':
		return WKnight, NilError
	case 'B':
		return WBishop, NilError
	case 'R':
		return WRook, NilError
	case 'Q':
		return WQueen, NilError
	case 'K':
		return WKing, NilError
	case 'p':
		return BPawn, NilError
	case 'n':
		return BKnight, NilError
	case 'b':
		return BBishop, NilError
	case 'r':
		return BRook, NilError
	case 'q':
		return BQueen, NilError
	case 'k':
		return BKing, NilError
	default:
		return NoPiece, Errorf("invalid piece %q", c)
	}
}

// Square is a board index 0..63 (a1=0, h8=63, index = row*8 + col, row 0
// is White's back rank) or the SquareNone sentinel.
type Square uint8

const SquareNone Square = 255

func SquareFromRowCol(row int, col int) Square {
	return Square(row<<3 + col)
}

func SquareFromIndex(index int) Square {
	return Square(index)
}

func (s Square) Row() int {
	return int(s) >> 3
}

func (s Square) Col() int {
	return int(s) & 0b111
}

func (s Square) Index() int {
	return int(s)
}

func (s Square) IsValid() bool {
	return s < 64
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('1' + s.Row())})
}

func SquareFromString(s string) (Square, Error) {
	if len(s) != 2 {
		return SquareNone, Errorf("invalid square %q", s)
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col >= 8 || row < 0 || row >= 8 {
		return SquareNone, Errorf("invalid square %q", s)
	}
	return SquareFromRowCol(row, col), NilError
}

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

var AllCastlingSides = [2]CastlingSide{Kingside, Queenside}

func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}
