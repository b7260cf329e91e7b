package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitboardWithWithoutHas(t *testing.T) {
	bb := BbEmpty
	bb = bb.With(SquareA1)
	bb = bb.With(Square(27))
	require.True(t, bb.Has(SquareA1))
	require.True(t, bb.Has(Square(27)))
	require.False(t, bb.Has(Square(1)))

	bb = bb.Without(SquareA1)
	assert.False(t, bb.Has(SquareA1))
	assert.True(t, bb.Has(Square(27)))
}

func TestBitboardFlip(t *testing.T) {
	bb := FromSquare(Square(10))
	bb = bb.Flip(Square(10))
	assert.True(t, bb.Empty())

	bb = bb.Flip(Square(10))
	assert.Equal(t, FromSquare(Square(10)), bb)
}

func TestBitboardFlipMut(t *testing.T) {
	var bb Bitboard
	bb.FlipMut(SquareA1)
	assert.True(t, bb.Has(SquareA1))
	bb.FlipMut(SquareA1)
	assert.True(t, bb.Empty())
}

func TestBitboardCount(t *testing.T) {
	bb := FromSquare(Square(0)) | FromSquare(Square(5)) | FromSquare(Square(63))
	assert.Equal(t, 3, bb.Count())
	assert.Equal(t, 0, BbEmpty.Count())
	assert.Equal(t, 64, BbFull.Count())
}

func TestBitboardPopAscending(t *testing.T) {
	bb := FromSquare(Square(40)) | FromSquare(Square(2)) | FromSquare(Square(17))
	var popped []Square
	for !bb.Empty() {
		popped = append(popped, bb.Pop())
	}
	assert.Equal(t, []Square{2, 17, 40}, popped)
}

func TestBitboardRankFileBb(t *testing.T) {
	rank0 := RankBb(0)
	for f := 0; f < 8; f++ {
		assert.True(t, rank0.Has(RankFile(0, f)))
	}
	assert.False(t, rank0.Has(RankFile(1, 0)))

	fileA := FileBb(0)
	for r := 0; r < 8; r++ {
		assert.True(t, fileA.Has(RankFile(r, 0)))
	}
	assert.False(t, fileA.Has(RankFile(0, 1)))
}

func TestBitboardFlipVerticalInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		bb := randomBitboard(rng)
		assert.Equal(t, bb, bb.FlipVertical().FlipVertical())
	}
}

func TestBitboardFlipVerticalSwapsRanks(t *testing.T) {
	bb := FromSquare(RankFile(0, 3))
	flipped := bb.FlipVertical()
	assert.Equal(t, FromSquare(RankFile(7, 3)), flipped)
}

func TestRandomBitboardIsSparse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		bb := randomBitboard(rng)
		// three independent 64-bit values ANDed together should, on
		// average, leave well under half the bits set.
		assert.Less(t, bb.Count(), 40)
	}
}
