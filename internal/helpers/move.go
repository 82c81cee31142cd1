package helpers

// Move packs a whole move into 16 bits so move lists stay compact and
// comparisons are single-word:
//
//	bit  0- 5: destination square
//	bit  6-11: origin square
//	bit 12-13: promotion piece type (00=Knight, 01=Bishop, 10=Rook, 11=Queen)
//	bit 14-15: kind (00=Normal, 01=Promotion, 10=EnPassant, 11=Castling)
//
// MoveNone is all zeros; MoveNull has origin == destination. Neither is
// valid. The bit layout is stable and part of the external contract.
type Move uint16

type MoveKind uint16

const (
	NormalMove MoveKind = iota
	PromotionMove
	EnPassantMove
	CastlingMove
)

func (k MoveKind) String() string {
	return [4]string{
		"normal", "promotion", "en-passant", "castling",
	}[k]
}

const (
	MoveNone Move = 0
	MoveNull Move = 0b0000_0000_0100_0001
)

func makeMove(from Square, to Square, kind MoveKind, promotionBits uint16) Move {
	return Move(uint16(to) |
		uint16(from)<<6 |
		promotionBits<<12 |
		uint16(kind)<<14)
}

func NewMove(from Square, to Square) Move {
	return makeMove(from, to, NormalMove, 0)
}

// NewPromotionMove renumbers the PieceType at the packing boundary:
// Knight packs as 00, Queen as 11.
func NewPromotionMove(from Square, to Square, promotion PieceType) Move {
	return makeMove(from, to, PromotionMove, uint16(promotion-Knight)&0b11)
}

func NewEnPassantMove(from Square, to Square) Move {
	return makeMove(from, to, EnPassantMove, 0)
}

func NewCastlingMove(from Square, to Square) Move {
	return makeMove(from, to, CastlingMove, 0)
}

func CastleMove(c Color, side CastlingSide) Move {
	return _castleMoves[c][side]
}

var _castleMoves = [2][2]Move{
	{NewCastlingMove(SqE1, SqG1), NewCastlingMove(SqE1, SqC1)},
	{NewCastlingMove(SqE8, SqG8), NewCastlingMove(SqE8, SqC8)},
}

func (m Move) To() Square {
	return Square(m & 0b11_1111)
}

func (m Move) From() Square {
	return Square((m >> 6) & 0b11_1111)
}

func (m Move) Kind() MoveKind {
	return MoveKind(m >> 14)
}

func (m Move) Promotion() PieceType {
	return Knight + PieceType((m>>12)&0b11)
}

func (m Move) IsValid() bool {
	return m != MoveNone && m != MoveNull
}

// String renders the long-algebraic wire form, e.g. "e2e4", "g7g8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.Kind() == PromotionMove {
		s += m.Promotion().String()
	}
	return s
}

// MoveList is an ordered move sequence in generation order. A position
// has at most ~256 pseudo-legal moves, so pooled buffers never regrow.
type MoveList []Move

func (l *MoveList) Add(m Move) {
	*l = append(*l, m)
}

func (l *MoveList) Clear() {
	*l = (*l)[:0]
}

func (l MoveList) Strings() []string {
	return MapSlice(l, func(m Move) string { return m.String() })
}

var GetMoveList, ReleaseMoveList = CreatePool(
	func() MoveList {
		return make(MoveList, 0, 256)
	},
	func(l *MoveList) {
		l.Clear()
	},
)
