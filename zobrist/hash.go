package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for an n-in-a-row position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// posTable is indexed by square, then by board.Cell. The EmptyCell column
	// stays zero so empty squares don't contribute.
	posTable  [][3]uint64
	markTable [3]uint64

	boardDim int
}

func (z *Zobrist) Initialize(boardDim int) {
	z.boardDim = boardDim
	z.posTable = make([][3]uint64, boardDim*boardDim)
	for i := range z.posTable {
		z.posTable[i][board.PlayerCell] = frand.Uint64n(bignum) + 1
		z.posTable[i][board.BotCell] = frand.Uint64n(bignum) + 1
	}
	z.markTable[move.Player] = frand.Uint64n(bignum) + 1
	z.markTable[move.Bot] = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) BoardDim() int {
	return z.boardDim
}

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

// Hash hashes the cells of b. b must have the dimension z was initialized
// with.
func (z *Zobrist) Hash(b *board.GameBoard) uint64 {
	key := uint64(0)
	dim := b.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			key ^= z.posTable[row*dim+col][b.CellAt(row, col)]
		}
	}
	return key
}

// AddAction returns the hash of the position after a is placed on a
// position hashing to key. Applying it twice undoes it.
func (z *Zobrist) AddAction(key uint64, a move.Action) uint64 {
	return key ^ z.posTable[a.Row()*z.boardDim+a.Col()][board.CellFor(a.Mark())]
}

// SearchKey mixes the remaining depth and the mark that just moved into a
// position hash.
func (z *Zobrist) SearchKey(positionKey uint64, depth int, m move.Mark) uint64 {
	return positionKey ^ z.markTable[m] ^ hashUint64(uint64(depth)+1)
}
