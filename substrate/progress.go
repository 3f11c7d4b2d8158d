package substrate

import "sync"

// progressPrefixes holds the current progress-prefix-per-goroutine
// mapping. Go has no thread-local storage, so — unlike the original's
// `thread_local const char*` — this keys off a caller-supplied worker ID
// (e.g. the batch/auto worker index) rather than the runtime goroutine ID.
var progressPrefixes sync.Map // map[int]string

// ProgressPrefix returns the prefix previously set for workerID, or "" if
// none was set.
func ProgressPrefix(workerID int) string {
	v, ok := progressPrefixes.Load(workerID)
	if !ok {
		return ""
	}
	return v.(string)
}

func setProgressPrefix(workerID int, prefix string) {
	if prefix == "" {
		progressPrefixes.Delete(workerID)
		return
	}
	progressPrefixes.Store(workerID, prefix)
}

// ProgressPrefixGuard sets workerID's progress prefix for the lifetime of
// the guard and restores the previous value on Close, the Go analogue of
// runtime_component.hpp's RAII ProgressPrefixGuard.
type ProgressPrefixGuard struct {
	workerID int
	previous string
}

func NewProgressPrefixGuard(workerID int, prefix string) *ProgressPrefixGuard {
	g := &ProgressPrefixGuard{workerID: workerID, previous: ProgressPrefix(workerID)}
	setProgressPrefix(workerID, prefix)
	return g
}

func (g *ProgressPrefixGuard) Close() {
	setProgressPrefix(g.workerID, g.previous)
}
