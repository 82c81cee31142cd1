package bitboards

import (
	"fmt"
	"math/bits"
	"strings"

	. "github.com/kestrelchess/kestrel/internal/helpers"
)

// Bitboard has bit i set when square i (a1=0 .. h8=63) is in the set.
type Bitboard uint64

const (
	AllZeros Bitboard = 0
	AllOnes  Bitboard = ^AllZeros
)

type Dir int

const (
	N Dir = iota
	S
	E
	W

	NE
	NW
	SE
	SW

	NNE
	NNW
	SSE
	SSW
	ENE
	ESE
	WNW
	WSW

	NumDirs
)

const (
	OffsetN int = 8
	OffsetS int = -8
	OffsetE int = 1
	OffsetW int = -1
)

var Offsets = [NumDirs]int{
	OffsetN,
	OffsetS,
	OffsetE,
	OffsetW,

	OffsetN + OffsetE,
	OffsetN + OffsetW,
	OffsetS + OffsetE,
	OffsetS + OffsetW,

	OffsetN + OffsetN + OffsetE,
	OffsetN + OffsetN + OffsetW,
	OffsetS + OffsetS + OffsetE,
	OffsetS + OffsetS + OffsetW,
	OffsetE + OffsetN + OffsetE,
	OffsetE + OffsetS + OffsetE,
	OffsetW + OffsetN + OffsetW,
	OffsetW + OffsetS + OffsetW,
}

var RookDirs = []Dir{N, S, E, W}
var BishopDirs = []Dir{NE, NW, SE, SW}
var KingDirs = []Dir{N, S, E, W, NE, NW, SE, SW}
var KnightDirs = []Dir{NNE, NNW, SSE, SSW, ENE, ESE, WNW, WSW}

// PawnCaptureDirs is indexed by Color.
var PawnCaptureDirs = [2][2]Dir{
	{NE, NW},
	{SE, SW},
}

func withoutRank(rank int) Bitboard {
	result := AllOnes
	for col := 0; col < 8; col++ {
		result &= ^SingleBitboard(int(SquareFromRowCol(rank, col)))
	}
	return result
}

func withoutCol(col int) Bitboard {
	result := AllOnes
	for rank := 0; rank < 8; rank++ {
		result &= ^SingleBitboard(int(SquareFromRowCol(rank, col)))
	}
	return result
}

var (
	MaskN = withoutRank(7)
	MaskS = withoutRank(0)
	MaskE = withoutCol(7)
	MaskW = withoutCol(0)

	MaskNN = withoutRank(6)
	MaskSS = withoutRank(1)
	MaskEE = withoutCol(6)
	MaskWW = withoutCol(1)
)

// PreMoveMasks[dir] holds the squares from which a single step in dir
// stays on the board; rotating a masked board by Offsets[dir] therefore
// never wraps across an edge.
var PreMoveMasks = [NumDirs]Bitboard{
	MaskN,
	MaskS,
	MaskE,
	MaskW,

	MaskN & MaskE,
	MaskN & MaskW,
	MaskS & MaskE,
	MaskS & MaskW,

	MaskNN & MaskN & MaskE,
	MaskNN & MaskN & MaskW,
	MaskSS & MaskS & MaskE,
	MaskSS & MaskS & MaskW,
	MaskEE & MaskN & MaskE,
	MaskEE & MaskS & MaskE,
	MaskWW & MaskN & MaskW,
	MaskWW & MaskS & MaskW,
}

var _singleBitboards = func() [64]Bitboard {
	result := [64]Bitboard{}
	for i := 0; i < 64; i++ {
		result[i] = Bitboard(1) << i
	}
	return result
}()

func SingleBitboard(index int) Bitboard {
	return _singleBitboards[index]
}

func SquareBitboard(s Square) Bitboard {
	return _singleBitboards[s]
}

func RotateTowardsIndex64(b Bitboard, n int) Bitboard {
	return Bitboard(bits.RotateLeft64(uint64(b), n))
}

func OnesCount(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}

// NextIndexOfOne pops the lowest set bit, returning its index and the
// remaining board.
func (b Bitboard) NextIndexOfOne() (int, Bitboard) {
	index := bits.TrailingZeros64(uint64(b))
	return index, b & (b - 1)
}

func (b Bitboard) FirstIndexOfOne() int {
	return bits.TrailingZeros64(uint64(b))
}

func (b Bitboard) EachIndexOfOne(callback func(int)) {
	temp := b
	for temp != 0 {
		var index int
		index, temp = temp.NextIndexOfOne()
		callback(index)
	}
}

// String renders ranks 8 down to 1, one line each, '1' for set bits.
func (b Bitboard) String() string {
	ranks := [8]string{}
	for rank := 7; rank >= 0; rank-- {
		line := make([]byte, 8)
		for col := 0; col < 8; col++ {
			if b&SquareBitboard(SquareFromRowCol(rank, col)) != 0 {
				line[col] = '1'
			} else {
				line[col] = '0'
			}
		}
		ranks[7-rank] = string(line)
	}
	return strings.Join(ranks[:], "\n")
}

// BitboardFromStrings builds a board from eight rank lines, rank 8 first.
func BitboardFromStrings(lines [8]string) Bitboard {
	b := Bitboard(0)
	for inverseRank, line := range lines {
		if len(line) != 8 {
			panic(fmt.Sprintf("rank line %q must have 8 squares", line))
		}
		for col, c := range line {
			if c == '1' {
				b |= SquareBitboard(SquareFromRowCol(7-inverseRank, col))
			}
		}
	}
	return b
}
