// eval.go implements static position evaluation: material, piece-square
// tables, a tempo bonus, an attacked-squares bonus, and the move
// "promise" heuristic used to order moves before search.

package engine

// MATE is the sentinel checkmate score, chosen strictly below the
// search's +-infinity window so mate scores can still be distinguished
// by distance-to-mate arithmetic without overflowing an int16.
const MATE int16 = 10000

var pieceValue = [NumPieces]int16{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  975,
	King:   0,
}

const tempoBonus int16 = 30

// pieceSquareTable[p][sq] is added to pieceValue[p] for a White piece
// of type p on sq; Black's tables are obtained by vertically flipping
// the piece's bitboard before scoring, so only White-oriented tables
// are kept.
var pieceSquareTable = [NumPieces][64]int16{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// centralControl scores squares for the attacked-squares bonus: more
// valuable to attack the center than the rim.
var centralControl = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// Evaluate returns a signed score from White's perspective: positive
// favors White, negative favors Black. Returns a game-over sentinel
// (+-MATE or 0) if the side to move has no legal moves.
func Evaluate(b *Board) int16 {
	var buf [256]Movement
	if len(b.LegalMoves(All, buf[:0])) == 0 {
		if b.InCheck() {
			return -MATE * b.sideToMove.Polarize()
		}
		return 0
	}

	var score int16
	for p := Piece(0); p < Piece(NumPieces); p++ {
		score += materialAndPST(b, p, White)
		score -= materialAndPST(b, p, Black)
	}

	score += attackBonus(b, White) - attackBonus(b, Black)
	score += tempoBonus * b.sideToMove.Polarize()
	return score
}

func materialAndPST(b *Board, p Piece, c Color) int16 {
	bb := b.pieces[p] & b.occupancy[c]
	if c == Black {
		bb = bb.FlipVertical()
	}
	var score int16
	for !bb.Empty() {
		sq := bb.Pop()
		score += pieceValue[p] + pieceSquareTable[p][sq]
	}
	return score
}

func attackBonus(b *Board, c Color) int16 {
	var score int16
	for bb := b.attacked[c]; !bb.Empty(); {
		score += centralControl[bb.Pop()]
	}
	return score
}

// promiseValue is used by Promise; it is intentionally coarser than
// pieceValue since it only needs to rank moves against each other.
var promiseValue = [NumPieces]int16{
	Pawn:   10,
	Knight: 40,
	Bishop: 45,
	Rook:   68,
	Queen:  145,
	King:   256,
}

// Promise estimates the tactical value of mv for move ordering: the
// value of any captured piece minus a fraction of the moving piece's
// value, in the spirit of MVV-LVA. It is never used as a final score.
func Promise(b *Board, mv Movement) int16 {
	mover, _ := b.PieceOn(mv.From)
	var victimValue int16
	if victim, ok := b.PieceOn(mv.To); ok {
		victimValue = promiseValue[victim]
	} else if b.enPassantSet && mv.To == b.enPassant && mover == Pawn {
		victimValue = promiseValue[Pawn]
	}
	promise := victimValue*64 - promiseValue[mover]
	if mv.HasPromote {
		promise += promiseValue[mv.Promote]
	}
	return promise
}
