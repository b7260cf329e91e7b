// search.go implements iterative-deepening negamax search with
// alpha-beta pruning, quiescence, check extension, a transposition
// table, and principal-variation reconstruction.

package engine

import (
	"sort"
	"time"
)

const (
	maxPly    = 1000
	infinity  int16 = 32000
	// mateThreshold separates "ordinary" evaluation scores from mate
	// scores: anything beyond it is the result of the MATE sentinel
	// arithmetic, not material/positional evaluation.
	mateThreshold int16 = MATE - 1000
)

func isMateScore(score int16) bool {
	return score > mateThreshold || score < -mateThreshold
}

// ttEntry is the transposition table's payload for one Board.
type ttEntry struct {
	score   int16
	depth   int
	best    Movement
	hasBest bool
	mate    bool
}

// Searcher owns a transposition table and search statistics. It is not
// safe for concurrent use; the core is single-threaded by design.
type Searcher struct {
	cfg        Config
	log        Logger
	tt         map[Board]ttEntry
	maxEntries int

	stats       Stats
	hasDeadline bool
	deadline    time.Time
}

// entrySizeEstimate approximates the memory cost of one transposition
// table slot (Board plus ttEntry plus Go map overhead), used to turn a
// configured MB budget into an entry-count ceiling.
const entrySizeEstimate = 128

// NewSearcher creates a Searcher governed by cfg. A nil log is replaced
// with NulLogger.
func NewSearcher(cfg Config, log Logger) *Searcher {
	if log == nil {
		log = NulLogger{}
	}
	maxEntries := cfg.tableSizeMB() * 1024 * 1024 / entrySizeEstimate
	return &Searcher{
		cfg:        cfg,
		log:        log,
		tt:         make(map[Board]ttEntry),
		maxEntries: maxEntries,
	}
}

// SearchDepth iterates depth 1..maxDepth and returns the best move and
// score of the last completed iteration.
func (s *Searcher) SearchDepth(b Board, maxDepth int) (Movement, int16) {
	return s.run(b, func(depth int) bool { return depth > maxDepth })
}

// SearchTimed iterates until budget elapses or the internal depth
// ceiling is reached, and returns the best move and score of the last
// completed iteration.
func (s *Searcher) SearchTimed(b Board, budget time.Duration) (Movement, int16) {
	s.deadline = time.Now().Add(budget)
	s.hasDeadline = true
	defer func() { s.hasDeadline = false }()
	return s.run(b, func(depth int) bool { return s.timeUp() })
}

func (s *Searcher) run(b Board, stop func(depth int) bool) (Movement, int16) {
	s.log.BeginSearch()
	defer s.log.EndSearch()

	start := time.Now()
	var bestMove Movement
	var bestScore int16
	for depth := 1; depth <= maxPly; depth++ {
		if stop(depth) {
			break
		}
		s.stats = Stats{Depth: depth}
		score := s.alphabeta(b, depth, -infinity, infinity, 0)
		if s.timeUp() {
			break
		}
		bestScore = score

		elapsed := maxDuration(time.Since(start), time.Microsecond)
		s.stats.ElapsedMS = elapsed.Milliseconds()
		s.stats.Nps = s.stats.Nodes * uint64(time.Second) / uint64(elapsed)

		pv := s.reconstructPV(b, depth+32)
		if len(pv) > 0 {
			bestMove = pv[0]
		}
		if s.cfg.AnalyseMode {
			s.log.PrintPV(s.stats, bestScore, pv)
		}
	}
	return bestMove, bestScore
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

func (s *Searcher) timeUp() bool {
	return s.hasDeadline && time.Now().After(s.deadline)
}

// alphabeta implements the normative negamax search at one node: time
// check, transposition probe, game-over detection, check extension,
// quiescence below depth 0, move ordering by promise, the main
// alpha-beta loop, and transposition insertion. ply is the distance
// from the root, used only to track SelDepth.
func (s *Searcher) alphabeta(b Board, depth int, alpha, beta int16, ply int) int16 {
	if s.timeUp() {
		return 0
	}
	s.stats.Nodes++
	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}

	entry, hasEntry := s.tt[b]
	if hasEntry && entry.depth >= depth && !entry.mate {
		return entry.score
	}

	var buf [256]Movement
	moves := b.LegalMoves(All, buf[:0])
	if len(moves) == 0 {
		if b.InCheck() {
			return -(int16(depth) + MATE)
		}
		return 0
	}

	if b.InCheck() {
		depth++
	}

	if depth < 0 {
		static := Evaluate(&b) * b.sideToMove.Polarize()
		if static >= alpha {
			return static
		}
		moves = filterCaptures(&b, moves)
		if len(moves) == 0 {
			return static
		}
	}

	orderMoves(&b, moves, entry, hasEntry)

	bestScore := -infinity
	bestMove := moves[0]
	for i, mv := range moves {
		child := b.MakeMove(mv)
		score := -s.alphabeta(child, depth-1, -beta, -alpha, ply+1)
		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			_ = i // fail-high; ordering quality is not instrumented further
			break
		}
	}

	if !s.timeUp() {
		s.storeTT(b, bestScore, depth, bestMove)
	}
	return bestScore
}

func (s *Searcher) storeTT(b Board, score int16, depth int, best Movement) {
	if len(s.tt) >= s.maxEntries {
		s.tt = make(map[Board]ttEntry, s.maxEntries)
	}
	s.tt[b] = ttEntry{score: score, depth: depth, best: best, hasBest: true, mate: isMateScore(score)}
}

// filterCaptures narrows moves down to those that capture a piece
// (including en-passant), for use in quiescence.
func filterCaptures(b *Board, moves []Movement) []Movement {
	captures := moves[:0]
	for _, mv := range moves {
		if b.IsCapture(mv) {
			captures = append(captures, mv)
		}
	}
	return captures
}

// orderMoves sorts moves by descending promise. If the transposition
// table had an entry for this position, its stored best move (a good
// guess even when its score was not trustworthy, e.g. a mate score at
// the wrong depth) is moved to the front.
func orderMoves(b *Board, moves []Movement, entry ttEntry, hasEntry bool) {
	sort.SliceStable(moves, func(i, j int) bool {
		return Promise(b, moves[i]) > Promise(b, moves[j])
	})
	if !hasEntry || !entry.hasBest {
		return
	}
	for i, mv := range moves {
		if mv == entry.best {
			moves[0], moves[i] = moves[i], moves[0]
			return
		}
	}
}

// reconstructPV chases best-move pointers through the transposition
// table, stopping on a missing entry, an illegal stored move, or a
// revisited board (to stay finite across repetitions).
func (s *Searcher) reconstructPV(b Board, maxLen int) []Movement {
	var pv []Movement
	visited := make(map[Board]bool)
	cur := b
	for len(pv) < maxLen {
		if visited[cur] {
			break
		}
		visited[cur] = true

		entry, ok := s.tt[cur]
		if !ok || !entry.hasBest {
			break
		}

		var buf [256]Movement
		legal := cur.LegalMoves(All, buf[:0])
		found := false
		for _, mv := range legal {
			if mv == entry.best {
				found = true
				break
			}
		}
		if !found {
			break
		}

		pv = append(pv, entry.best)
		cur = cur.MakeMove(entry.best)
	}
	return pv
}
