// result.go classifies a position into a human-readable outcome. This
// is a read-only convenience derived from legal moves, check status
// and material; it never feeds back into make-move, evaluation or
// search.

package engine

// GameResult classifies the state of a position.
type GameResult int

const (
	InProgress GameResult = iota
	WhiteMates
	BlackMates
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial
)

func (r GameResult) String() string {
	switch r {
	case InProgress:
		return "in progress"
	case WhiteMates:
		return "white mates"
	case BlackMates:
		return "black mates"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move draw"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "unknown"
	}
}

// Result classifies b's current position. halfmoveClock is the number
// of plies since the last capture or pawn move; Board itself does not
// persist this (FromFEN reads but discards it), so callers that track
// it pass it in here.
func (b *Board) Result(halfmoveClock int) GameResult {
	var buf [256]Movement
	if len(b.LegalMoves(All, buf[:0])) == 0 {
		if !b.InCheck() {
			return Stalemate
		}
		if b.sideToMove == White {
			return BlackMates
		}
		return WhiteMates
	}

	if halfmoveClock >= 100 {
		return FiftyMoveDraw
	}

	if b.hasInsufficientMaterial() {
		return InsufficientMaterial
	}

	return InProgress
}

// hasInsufficientMaterial reports the simplest draw-by-material cases:
// bare kings, king and minor vs. bare king. It does not attempt the
// same-colored-bishops or more exotic fortress cases.
func (b *Board) hasInsufficientMaterial() bool {
	if !b.pieces[Pawn].Empty() || !b.pieces[Rook].Empty() || !b.pieces[Queen].Empty() {
		return false
	}
	minors := b.pieces[Knight].Count() + b.pieces[Bishop].Count()
	return minors <= 1
}
