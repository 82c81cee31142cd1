package bitboards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kestrelchess/kestrel/internal/helpers"
)

func TestSingleBitboard(t *testing.T) {
	assert.Equal(t, Bitboard(1), SingleBitboard(0))
	assert.Equal(t, Bitboard(1)<<63, SingleBitboard(63))
	assert.Equal(t, SingleBitboard(int(SqE4)), SquareBitboard(SqE4))
}

func TestNextIndexOfOne(t *testing.T) {
	b := SquareBitboard(SqB1) | SquareBitboard(SqE4) | SquareBitboard(SqH8)

	indices := []int{}
	for b != 0 {
		var index int
		index, b = b.NextIndexOfOne()
		indices = append(indices, index)
	}
	assert.Equal(t, []int{int(SqB1), int(SqE4), int(SqH8)}, indices)
}

func TestEachIndexOfOne(t *testing.T) {
	b := SquareBitboard(SqA1) | SquareBitboard(SqD5)

	indices := []int{}
	b.EachIndexOfOne(func(index int) {
		indices = append(indices, index)
	})
	assert.Equal(t, []int{int(SqA1), int(SqD5)}, indices)
}

func TestBitboardFromStrings(t *testing.T) {
	b := BitboardFromStrings([8]string{
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00001000",
		"00000000",
		"00000000",
		"10000000",
	})
	assert.Equal(t, SquareBitboard(SqA1)|SquareBitboard(SqE4), b)
	assert.Equal(t, b, BitboardFromStrings(splitRanks(b.String())))
}

func splitRanks(s string) [8]string {
	result := [8]string{}
	start := 0
	for i := 0; i < 8; i++ {
		result[i] = s[start : start+8]
		start += 9
	}
	return result
}

func TestEdgeMasks(t *testing.T) {
	assert.Equal(t, 56, OnesCount(MaskN))
	assert.Equal(t, 56, OnesCount(MaskW))
	assert.Equal(t, Bitboard(0), MaskN&SquareBitboard(SqE8))
	assert.Equal(t, Bitboard(0), MaskW&SquareBitboard(SqA4))
	assert.NotEqual(t, Bitboard(0), MaskN&SquareBitboard(SqE7))
}

func TestPreMoveMasksPreventWrapping(t *testing.T) {
	// stepping east from the h-file must not wrap onto the a-file
	hFile := SquareBitboard(SqH4)
	assert.Equal(t, Bitboard(0), RotateTowardsIndex64(hFile&PreMoveMasks[E], Offsets[E])&SquareBitboard(SqA5))
	assert.Equal(t, Bitboard(0), hFile&PreMoveMasks[E])

	g4 := SquareBitboard(SqG4)
	assert.Equal(t, SquareBitboard(SqH4), RotateTowardsIndex64(g4&PreMoveMasks[E], Offsets[E]))
}
