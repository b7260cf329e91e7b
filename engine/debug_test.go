package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertValidAcceptsStartPos(t *testing.T) {
	b := FromStartPos()
	assert.NoError(t, assertValid(&b))
}

func TestAssertValidAcceptsPositionsAfterMakeMove(t *testing.T) {
	b := FromStartPos()
	var buf [256]Movement
	for _, mv := range b.LegalMoves(All, buf[:0]) {
		next := b.MakeMove(mv)
		require.NoError(t, assertValid(&next), "after move %v", mv)
	}
}

func TestAssertValidRejectsOverlappingOccupancy(t *testing.T) {
	b := FromStartPos()
	b.occupancy[Black] = b.occupancy[Black].With(b.King(White))
	assert.Error(t, assertValid(&b))
}

func TestAssertValidRejectsMissingKing(t *testing.T) {
	b := FromStartPos()
	kingSq := b.King(White)
	b.pieces[King] = b.pieces[King].Without(kingSq)
	b.occupancy[White] = b.occupancy[White].Without(kingSq)
	assert.Error(t, assertValid(&b))
}

func TestAssertValidRejectsPawnOnBackRank(t *testing.T) {
	// a1 is empty here, so only the back-rank pawn rule is broken.
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	b.pieces[Pawn] = b.pieces[Pawn].With(RankFile(0, 0))
	b.occupancy[White] = b.occupancy[White].With(RankFile(0, 0))
	assert.Error(t, assertValid(&b))
}
