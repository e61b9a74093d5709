// Package stats tracks session-wide discovery statistics across query executions.
package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/query"
)

const (
	// HistoryLimit is the number of history entries kept; older entries are dropped.
	HistoryLimit = 50
	// RecentLimit is the number of entries reported as recent queries.
	RecentLimit = 5
)

// HistoryEntry is one recorded execution.
type HistoryEntry struct {
	Query      string     `json:"query"`
	Timestamp  time.Time  `json:"timestamp"`
	Mode       query.Mode `json:"mode"`
	Discovered int        `json:"discovered"`
}

// Tracker accumulates statistics for one session. All methods are safe for concurrent use;
// each Record is applied atomically.
type Tracker struct {
	mu     sync.Mutex
	now    func() time.Time
	logger *zap.Logger

	sessionID       string
	startedAt       time.Time
	totalQueries    int
	invalidAttempts int
	discovered      map[string]struct{}
	discoveryOrder  []string
	hidden          map[string]struct{}
	history         []HistoryEntry
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the tracker logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTracker starts a new session.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	t.resetLocked()
	return t
}

// Record applies one execution to the session. Fields are deduplicated by canonical name,
// so two aliases of one field count once.
func (t *Tracker) Record(rawQuery string, md query.Metadata) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalQueries++

	// Iterate in a stable order so discoveryOrder is deterministic.
	tokens := make([]string, 0, len(md.FieldTypes))
	for token := range md.FieldTypes {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		classification := md.FieldTypes[token]
		if classification == catalog.Invalid {
			t.invalidAttempts++
			continue
		}

		name := token
		if canonical, ok := md.Resolved[token]; ok && canonical != "" {
			name = canonical
		}
		if _, seen := t.discovered[name]; !seen {
			t.discovered[name] = struct{}{}
			t.discoveryOrder = append(t.discoveryOrder, name)
		}
		if classification == catalog.HiddenField {
			if _, seen := t.hidden[name]; !seen {
				t.hidden[name] = struct{}{}
				t.logger.Info("hidden field discovered",
					zap.String("session_id", t.sessionID),
					zap.String("field", name))
			}
		}
	}

	t.history = append(t.history, HistoryEntry{
		Query:      rawQuery,
		Timestamp:  t.now(),
		Mode:       md.Mode,
		Discovered: len(t.discovered),
	})
	if len(t.history) > HistoryLimit {
		t.history = append([]HistoryEntry(nil), t.history[len(t.history)-HistoryLimit:]...)
	}
}

// Reset clears every counter and starts a new session.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous := t.sessionID
	t.resetLocked()
	t.logger.Info("session statistics reset",
		zap.String("previous_session_id", previous),
		zap.String("session_id", t.sessionID))
}

func (t *Tracker) resetLocked() {
	t.sessionID = uuid.New().String()
	t.startedAt = t.now()
	t.totalQueries = 0
	t.invalidAttempts = 0
	t.discovered = make(map[string]struct{})
	t.discoveryOrder = nil
	t.hidden = make(map[string]struct{})
	t.history = nil
}

// History returns every kept entry, newest first.
func (t *Tracker) History() []HistoryEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return reversed(t.history, len(t.history))
}

// Snapshot returns a consistent read-only view of the session.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := t.now().Sub(t.startedAt)
	s := Snapshot{
		SessionID:       t.sessionID,
		StartedAt:       t.startedAt,
		Elapsed:         elapsed,
		SessionMinutes:  int(elapsed / time.Minute),
		TotalQueries:    t.totalQueries,
		UniqueFields:    len(t.discovered),
		HiddenFound:     len(t.hidden),
		InvalidAttempts: t.invalidAttempts,
		Fields:          append([]string(nil), t.discoveryOrder...),
		HiddenFields:    sortedSet(t.hidden),
		RecentQueries:   reversed(t.history, RecentLimit),
	}
	if n := len(t.history); n > 0 {
		latest := t.history[n-1]
		s.LatestQuery = &latest
	}
	s.Achievements = achievementsFor(s)
	return s
}

func reversed(entries []HistoryEntry, limit int) []HistoryEntry {
	if limit > len(entries) {
		limit = len(entries)
	}
	out := make([]HistoryEntry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
