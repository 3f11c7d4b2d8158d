package substrate

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger for the handful of structured call sites
// this codebase needs: OOM/disable notices, checkpoint-improvement lines,
// and progress updates — replacing the original's direct std::cout
// writes under cout_mutex() (see runtime_component.hpp) with zerolog's own
// internal write synchronization. The zero value is a disabled no-op
// logger so library code never panics when a caller hasn't configured
// one, matching the "package-level no-op logger is the zero value" rule
// in SPEC_FULL.md §1.
type Logger struct {
	zl      zerolog.Logger
	enabled bool
}

// NewLogger builds an enabled Logger writing JSON lines to w (os.Stderr is
// the usual choice; tests pass a bytes.Buffer).
func NewLogger(w io.Writer) Logger {
	return Logger{zl: zerolog.New(w).With().Timestamp().Logger(), enabled: true}
}

// NewConsoleLogger builds an enabled Logger with zerolog's human-readable
// console writer, the form suited to an interactive terminal.
func NewConsoleLogger(w io.Writer) Logger {
	return Logger{zl: zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger(), enabled: true}
}

func (l Logger) Progress(prefix, msg string, fields map[string]any) {
	if !l.enabled {
		return
	}
	ev := l.zl.Info().Str("prefix", prefix)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l Logger) Improvement(prefix string, bestWeight int, nodesVisited uint64, elapsedSec float64) {
	if !l.enabled {
		return
	}
	l.zl.Info().Str("prefix", prefix).Int("best_weight", bestWeight).
		Uint64("nodes_visited", nodesVisited).Float64("elapsed_sec", elapsedSec).
		Msg("checkpoint improvement")
}

// OOM reports a single resource-exhaustion event; callers pair it with
// ReportOOMOnce so a hot loop that keeps hitting the same OOM site does
// not flood the log.
func (l Logger) OOM(where string) {
	if !l.enabled {
		return
	}
	l.zl.Warn().Str("where", where).Msg("resource exhausted, disabling component")
}

var oomOnce sync.Map // map[string]struct{}

// ReportOOMOnce logs an OOM event through logger the first time `where` is
// seen in this process, mirroring pmr_report_oom_once's "only once per
// call site" discipline.
func ReportOOMOnce(logger Logger, where string) {
	if _, loaded := oomOnce.LoadOrStore(where, struct{}{}); !loaded {
		logger.OOM(where)
	}
}

// DefaultLogger returns a console logger writing to stderr, the fallback
// a CLI-style caller (auto/batch) reaches for when it has not configured
// anything else.
func DefaultLogger() Logger {
	return NewConsoleLogger(os.Stderr)
}
