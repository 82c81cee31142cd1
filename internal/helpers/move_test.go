package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveBitLayout(t *testing.T) {
	m := NewMove(SqE2, SqE4)

	// bits 0-5 destination, 6-11 origin, 14-15 kind
	assert.Equal(t, uint16(SqE4)|uint16(SqE2)<<6, uint16(m))
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, NormalMove, m.Kind())
}

func TestMoveSentinels(t *testing.T) {
	assert.Equal(t, Move(0), MoveNone)
	assert.False(t, MoveNone.IsValid())

	assert.NotEqual(t, MoveNone, MoveNull)
	assert.Equal(t, MoveNull.From(), MoveNull.To())
	assert.False(t, MoveNull.IsValid())

	assert.True(t, NewMove(SqE2, SqE4).IsValid())
	assert.True(t, NewMove(SqA1, SqA2).IsValid())
}

func TestPromotionPacking(t *testing.T) {
	// Knight packs as 00 and Queen as 11, regardless of the PieceType
	// enum values
	for i, promotion := range []PieceType{Knight, Bishop, Rook, Queen} {
		m := NewPromotionMove(SqG7, SqG8, promotion)
		assert.Equal(t, uint16(i), (uint16(m)>>12)&0b11)
		assert.Equal(t, promotion, m.Promotion())
		assert.Equal(t, PromotionMove, m.Kind())
	}
}

func TestMoveKinds(t *testing.T) {
	assert.Equal(t, uint16(0b01), uint16(NewPromotionMove(SqA7, SqA8, Queen))>>14)
	assert.Equal(t, uint16(0b10), uint16(NewEnPassantMove(SqE5, SqF6))>>14)
	assert.Equal(t, uint16(0b11), uint16(NewCastlingMove(SqE1, SqG1))>>14)
}

func TestCastleMoves(t *testing.T) {
	m := CastleMove(White, Kingside)
	assert.Equal(t, SqE1, m.From())
	assert.Equal(t, SqG1, m.To())
	assert.Equal(t, CastlingMove, m.Kind())

	assert.Equal(t, "e1c1", CastleMove(White, Queenside).String())
	assert.Equal(t, "e8g8", CastleMove(Black, Kingside).String())
	assert.Equal(t, "e8c8", CastleMove(Black, Queenside).String())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4).String())
	assert.Equal(t, "g7g8q", NewPromotionMove(SqG7, SqG8, Queen).String())
	assert.Equal(t, "b2b1n", NewPromotionMove(SqB2, SqB1, Knight).String())
}

func TestMoveListPool(t *testing.T) {
	l := GetMoveList()
	l.Add(NewMove(SqE2, SqE4))
	l.Add(NewMove(SqD2, SqD4))
	assert.Equal(t, 2, len(*l))
	assert.Equal(t, []string{"e2e4", "d2d4"}, l.Strings())

	ReleaseMoveList(l)
	l = GetMoveList()
	assert.Equal(t, 0, len(*l))
	ReleaseMoveList(l)
}
