package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// The position hash is a Zobrist-style 64-bit fingerprint: one constant
// per (color, square), per (color, reserve level) and per side to move,
// drawn from a fixed-seed deterministic stream so that every build and
// run produces identical tables.
const (
	zobristSeed uint64 = 0x82f8527e9323632d

	// hashSpan bounds the coordinate range the piece table covers.
	hashSpan         = 9
	maxHashedReserve = 20
)

// MaxBoardSize is the largest board edge the hash tables cover; bigger
// boards cannot be hashed.
const MaxBoardSize = hashSpan

var (
	pieceHashes   [2 * hashSpan * hashSpan]uint64
	reserveHashes [2 * maxHashedReserve]uint64
	turnHashes    [2]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for i := range pieceHashes {
		pieceHashes[i] = rng.Uint64()
	}
	for i := range reserveHashes {
		reserveHashes[i] = rng.Uint64()
	}
	for i := range turnHashes {
		turnHashes[i] = rng.Uint64()
	}
}

func colorIndex(color Color) int {
	if color == White {
		return 1
	}
	return 0
}

func pieceHash(color Color, c Coord) uint64 {
	if c.X < 0 || c.Y < 0 || c.X >= hashSpan || c.Y >= hashSpan {
		panic(fmt.Sprintf("no piece hash for square %v", c))
	}
	return pieceHashes[hashSpan*hashSpan*colorIndex(color)+hashSpan*c.X+c.Y]
}

func reserveHash(color Color, reserve int) uint64 {
	if reserve < 0 || reserve >= maxHashedReserve {
		panic(fmt.Sprintf("no reserve hash for level %d", reserve))
	}
	return reserveHashes[maxHashedReserve*colorIndex(color)+reserve]
}

func turnHash(color Color) uint64 {
	return turnHashes[colorIndex(color)]
}

// applyToHash folds a move delta into the current hash: pieces gained
// and lost toggle their square constants, both colors' reserve levels
// are XORed out and back in (a no-op for an unchanged level), and the
// turn constants swap sides.
func (b *Board) applyToHash(delta *MoveDelta) uint64 {
	newHash := b.Hash
	for _, c := range delta.WhitePlus {
		newHash ^= pieceHash(White, c)
	}
	for _, c := range delta.WhiteMinus {
		newHash ^= pieceHash(White, c)
	}
	for _, c := range delta.BlackPlus {
		newHash ^= pieceHash(Black, c)
	}
	for _, c := range delta.BlackMinus {
		newHash ^= pieceHash(Black, c)
	}
	newHash ^= reserveHash(White, b.WhiteReserve)
	newHash ^= reserveHash(White, b.WhiteReserve+delta.WhiteReserve)
	newHash ^= reserveHash(Black, b.BlackReserve)
	newHash ^= reserveHash(Black, b.BlackReserve+delta.BlackReserve)
	newHash ^= turnHash(b.WhoseMove) ^ turnHash(b.WhoseMove.Opponent())
	return newHash
}

// hashFromScratch hashes a full position. Apply maintains the same
// value incrementally; the two must agree bit for bit.
func hashFromScratch(b *Board) uint64 {
	var hash uint64
	for c := range b.White {
		hash ^= pieceHash(White, c)
	}
	for c := range b.Black {
		hash ^= pieceHash(Black, c)
	}
	hash ^= reserveHash(White, b.WhiteReserve)
	hash ^= reserveHash(Black, b.BlackReserve)
	hash ^= turnHash(b.WhoseMove)
	return hash
}

// RecomputeHash refreshes the cached hash after direct edits to the
// piece sets or reserves, e.g. when setting up test positions.
func (b *Board) RecomputeHash() {
	b.Hash = hashFromScratch(b)
}
