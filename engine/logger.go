// logger.go defines the search progress reporting interface and two
// implementations: a silent one, and one backed by structured logging.

package engine

import "go.uber.org/zap"

// Stats carries search progress counters shown to a Logger.
type Stats struct {
	Nodes     uint64
	Depth     int
	SelDepth  int
	ElapsedMS int64
	Nps       uint64
}

// Logger receives search progress notifications. Search and move
// generation never call a Logger directly; only the iterative
// deepening loop does, once per completed depth.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int16, pv []Movement)
}

// NulLogger discards every notification.
type NulLogger struct{}

func (NulLogger) BeginSearch()                                  {}
func (NulLogger) EndSearch()                                    {}
func (NulLogger) PrintPV(stats Stats, score int16, pv []Movement) {}

// ZapLogger reports search progress as structured log records, one
// line per completed iterative-deepening depth.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger wraps an existing zap.Logger. A nil logger is replaced
// with a no-op one so ZapLogger is always safe to use.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapLogger{log: log}
}

func (zl *ZapLogger) BeginSearch() {
	zl.log.Debug("search started")
}

func (zl *ZapLogger) EndSearch() {
	zl.log.Debug("search finished")
}

func (zl *ZapLogger) PrintPV(stats Stats, score int16, pv []Movement) {
	moves := make([]string, len(pv))
	for i, mv := range pv {
		moves[i] = mv.String()
	}
	zl.log.Info("iteration complete",
		zap.Int("depth", stats.Depth),
		zap.Int("seldepth", stats.SelDepth),
		zap.Int16("score_cp", score),
		zap.Uint64("nodes", stats.Nodes),
		zap.Uint64("nps", stats.Nps),
		zap.Int64("elapsed_ms", stats.ElapsedMS),
		zap.Strings("pv", moves),
	)
}
