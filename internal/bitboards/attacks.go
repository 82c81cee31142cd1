package bitboards

import (
	. "github.com/kestrelchess/kestrel/internal/helpers"
)

// AttackTables is the process-lifetime lookup table set: per-square jump
// attacks for king/knight/pawn, per-square empty-board ray sets for the
// sliders, and the blocker-keyed slider move tables. Construct once with
// NewAttackTables; read-only afterwards and safe to share.
type AttackTables struct {
	King   [64]Bitboard
	Knight [64]Bitboard
	Pawn   [2][64]Bitboard // indexed by Color

	// Full empty-board ray sets, edges included. These are the coarse
	// attack boards and the domain of blocker subsets.
	RookMasks   [64]Bitboard
	BishopMasks [64]Bitboard
	QueenMasks  [64]Bitboard

	Rook   MagicMoveTable
	Bishop MagicMoveTable
}

// generateWalkBitboard slides pieceBoard one step at a time along dir,
// accumulating reached squares. A ray stops at (and includes) the first
// blocker it meets.
func generateWalkBitboard(pieceBoard Bitboard, blockerBoard Bitboard, dir Dir) Bitboard {
	mask := PreMoveMasks[dir]
	offset := Offsets[dir]

	output := Bitboard(0)
	potential := pieceBoard
	for potential != 0 {
		potential = RotateTowardsIndex64(potential&mask, offset)
		output |= potential
		potential &= ^blockerBoard
	}
	return output
}

func jumpTargets(pieceBoard Bitboard, dirs []Dir) Bitboard {
	result := Bitboard(0)
	for _, dir := range dirs {
		result |= RotateTowardsIndex64(pieceBoard&PreMoveMasks[dir], Offsets[dir])
	}
	return result
}

func slideTargets(pieceBoard Bitboard, blockerBoard Bitboard, dirs []Dir) Bitboard {
	result := Bitboard(0)
	for _, dir := range dirs {
		result |= generateWalkBitboard(pieceBoard, blockerBoard, dir)
	}
	return result
}

// NewAttackTables precomputes every table deterministically; no board
// state is consulted.
func NewAttackTables() *AttackTables {
	t := &AttackTables{}

	for i := 0; i < 64; i++ {
		pieceBoard := SingleBitboard(i)

		t.King[i] = jumpTargets(pieceBoard, KingDirs)
		t.Knight[i] = jumpTargets(pieceBoard, KnightDirs)
		t.Pawn[White][i] = jumpTargets(pieceBoard, PawnCaptureDirs[White][:])
		t.Pawn[Black][i] = jumpTargets(pieceBoard, PawnCaptureDirs[Black][:])

		t.RookMasks[i] = slideTargets(pieceBoard, AllZeros, RookDirs)
		t.BishopMasks[i] = slideTargets(pieceBoard, AllZeros, BishopDirs)
		t.QueenMasks[i] = t.RookMasks[i] | t.BishopMasks[i]
	}

	t.Rook = newMagicMoveTable(RookDirs, _rookMagics)
	t.Bishop = newMagicMoveTable(BishopDirs, _bishopMagics)

	return t
}

func (t *AttackTables) KingAttacks(s Square) Bitboard {
	return t.King[s]
}

func (t *AttackTables) KnightAttacks(s Square) Bitboard {
	return t.Knight[s]
}

func (t *AttackTables) PawnAttacks(c Color, s Square) Bitboard {
	return t.Pawn[c][s]
}

func (t *AttackTables) RookAttacks(s Square) Bitboard {
	return t.RookMasks[s]
}

func (t *AttackTables) BishopAttacks(s Square) Bitboard {
	return t.BishopMasks[s]
}

func (t *AttackTables) QueenAttacks(s Square) Bitboard {
	return t.QueenMasks[s]
}

// RookMoves maps (square, blockers) to the reachable squares along the
// four orthogonal rays, stopping at and including the first blocker per
// ray. Any blocker set is accepted; bits outside the square's ray mask
// are ignored.
func (t *AttackTables) RookMoves(s Square, blockers Bitboard) Bitboard {
	return t.Rook.Lookup(s, blockers)
}

func (t *AttackTables) BishopMoves(s Square, blockers Bitboard) Bitboard {
	return t.Bishop.Lookup(s, blockers)
}

// QueenMoves combines the rook and bishop lookups on the same square.
func (t *AttackTables) QueenMoves(s Square, blockers Bitboard) Bitboard {
	return t.Rook.Lookup(s, blockers) | t.Bishop.Lookup(s, blockers)
}
