package bitboards

import (
	"fmt"

	. "github.com/kestrelchess/kestrel/internal/helpers"
)

type MagicValue struct {
	Magic            uint64
	BitsInMagicIndex int
}

func (m MagicValue) String() string {
	return fmt.Sprintf("{%v, %v}", m.Magic, m.BitsInMagicIndex)
}

// MagicMoveTable is a perfect-hash mapping from (square, blocker subset)
// to a move board:
//
//	Moves[s][ ((blockers & BlockerMasks[s]) * Magics[s].Magic) >> (64 - bits) ]
//
// BlockerMasks trim the edge squares of each ray: a blocker on the last
// square of a ray never changes the reachable set, so dropping edge bits
// shrinks the index without changing any lookup result.
type MagicMoveTable struct {
	Magics       [64]MagicValue
	BlockerMasks [64]Bitboard
	Moves        [64][]Bitboard
}

func MagicIndex(magic uint64, blockerBoard Bitboard, bitsInIndex int) int {
	return int((uint64(blockerBoard) * magic) >> (64 - bitsInIndex))
}

func (t *MagicMoveTable) Lookup(s Square, blockers Bitboard) Bitboard {
	blockerBoard := blockers & t.BlockerMasks[s]
	magic := t.Magics[s]
	return t.Moves[s][MagicIndex(magic.Magic, blockerBoard, magic.BitsInMagicIndex)]
}

// generateBlockerMask is the trimmed blocker domain for a slider on
// startIndex: each ray excluding its final on-board square.
func generateBlockerMask(startIndex int, dirs []Dir) Bitboard {
	result := Bitboard(0)
	for _, dir := range dirs {
		walk := generateWalkBitboard(SingleBitboard(startIndex), AllZeros, dir)
		result |= walk & PreMoveMasks[dir]
	}
	result &= ^SingleBitboard(startIndex)
	return result
}

// generateBlockerBoard spreads the bits of seed over the set bits of
// blockerMask, low mask bit first. Seeds 0..2^popcount(mask)-1 enumerate
// every blocker subset exactly once.
func generateBlockerBoard(blockerMask Bitboard, seed int) Bitboard {
	result := Bitboard(0)
	bit := 0
	rest := blockerMask
	for rest != 0 {
		var index int
		index, rest = rest.NextIndexOfOne()
		if seed&(1<<bit) != 0 {
			result |= SingleBitboard(index)
		}
		bit++
	}
	return result
}

// newMagicMoveTable builds the blocker-keyed move table for one slider.
// The magic constants are fixed; construction is deterministic and
// verifies that every blocker subset hashes without a conflicting
// collision (constructive collisions, where two subsets share a move
// board, are allowed). Each square's table has 1<<BitsInMagicIndex
// entries.
func newMagicMoveTable(dirs []Dir, magics [64]MagicValue) MagicMoveTable {
	result := MagicMoveTable{Magics: magics}

	for i := 0; i < 64; i++ {
		blockerMask := generateBlockerMask(i, dirs)
		result.BlockerMasks[i] = blockerMask

		magic := magics[i]
		pieceBoard := SingleBitboard(i)
		numBlockerBoards := 1 << OnesCount(blockerMask)

		moves := make([]Bitboard, 1<<magic.BitsInMagicIndex)
		filled := make([]bool, 1<<magic.BitsInMagicIndex)

		for seed := 0; seed < numBlockerBoards; seed++ {
			blockerBoard := generateBlockerBoard(blockerMask, seed)
			moveBoard := slideTargets(pieceBoard, blockerBoard, dirs)

			magicIndex := MagicIndex(magic.Magic, blockerBoard, magic.BitsInMagicIndex)
			if filled[magicIndex] && moves[magicIndex] != moveBoard {
				panic(fmt.Sprintf("magic %v collides for square %v", magic, Square(i)))
			}
			moves[magicIndex] = moveBoard
			filled[magicIndex] = true
		}

		result.Moves[i] = moves
	}

	return result
}

var _rookMagics = [64]MagicValue{
	{9331458498780872708, 12}, {4665729506550484992, 11}, {144126186415460480, 11}, {144124147393380420, 12}, {11565257037802111104, 11}, {144132788852099073, 11}, {360290736719004416, 11}, {72057871080096230, 12}, {4719913149124313312, 11}, {293156463157707144, 10}, {6917669902577307648, 10}, {140771923603456, 10}, {1162069475734979584, 10}, {9223935029758136344, 10}, {73465046232203520, 10}, {72198473260253312, 11}, {72207677412868132, 11}, {9160032444752128, 10}, {144256475856900105, 10}, {5193215519872860424, 10}, {159430394052612, 10}, {10523224031208014848, 10}, {864765895917076752, 10}, {600333755678852, 11}, {15832969587466384, 11}, {4503884168962050, 10}, {1161937501029400896, 10}, {5814147670840180754, 10}, {576645472412763136, 10}, {42786397639148544, 10}, {2315415374626029896, 10}, {10520549469173335296, 11}, {2317524495633481760, 11}, {360323223285399872, 10}, {9007474451424004, 10}, {5700005885121026, 10}, {10160261531204324352, 10}, {15016162516944359556, 10}, {17636813465603, 10}, {150026164885260370, 11}, {18015225290719265, 11}, {292736450217132032, 10}, {1333100674342224000, 10}, {1153484494829912080, 10}, {145243183935160356, 10}, {4648277800028340236, 10}, {18295882077241348, 10}, {148900299225235458, 11}, {2308517022067064960, 11}, {2666166164849787008, 10}, {10484947351389610496, 10}, {865113409641250944, 10}, {79164905423104, 10}, {598134445769894144, 10}, {8865384334336, 10}, {140741783341184, 11}, {11822236544142419985, 12}, {853358739210241, 11}, {2306689770606579907, 11}, {27305340485764105, 11}, {562958563547782, 12}, {576742261673689253, 11}, {563053041289474, 11}, {72061994248775234, 12},
}

var _bishopMagics = [64]MagicValue{
	{1171237203947823488, 6}, {2308412585671671873, 5}, {7569428664312397952, 5}, {1155182929459020040, 5}, {883849190865657860, 5}, {23791370577911968, 5}, {4936090344850063874, 5}, {146649013763063808, 6}, {936753137990238992, 5}, {2278222469285378, 5}, {1196989970411233792, 5}, {324720985242599456, 5}, {5764660884244799536, 5}, {2394762130760320, 5}, {621497027822370952, 5}, {13981425596434489600, 5}, {27065647490015380, 5}, {5190404141385548160, 5}, {9605402366906400, 7}, {579851818030354560, 7}, {1190076210669946880, 7}, {73606260729094176, 7}, {63472633420988992, 5}, {144191067330330882, 5}, {9296115726568935426, 5}, {1153494350270302208, 5}, {2594293288496408642, 7}, {288533842569070752, 9}, {282097763762178, 9}, {12682493891987964224, 7}, {3413158987827720, 5}, {144257574865338502, 5}, {9227880378178601482, 5}, {578723650582085891, 5}, {563226173772032, 7}, {4611688219602845825, 9}, {577596552386969664, 9}, {784805039544846344, 7}, {4512990774821376, 5}, {13856521630425031561, 5}, {36187162681018624, 5}, {81208298082213924, 5}, {563370994700560, 7}, {598417927602305, 7}, {1733894656929825796, 7}, {9223935605837201536, 7}, {83396204645406928, 5}, {2594638672888348928, 5}, {4575136872169504, 5}, {1443143505936385, 5}, {288232576282804224, 5}, {2199569041456, 5}, {1181772762902036736, 5}, {582517344230309892, 5}, {4616194085424742402, 5}, {78814110179000972, 5}, {380572319064539168, 6}, {4625202317049012226, 5}, {109354164517619712, 5}, {18256567021373440, 5}, {1154047404782782976, 5}, {586593868780142848, 5}, {9223566169653444672, 5}, {4508038484721921, 6},
}
