package stats

import "time"

// Snapshot is a point-in-time view of a Tracker.
type Snapshot struct {
	SessionID       string         `json:"sessionId"`
	StartedAt       time.Time      `json:"startedAt"`
	Elapsed         time.Duration  `json:"-"`
	SessionMinutes  int            `json:"sessionMinutes"`
	TotalQueries    int            `json:"totalQueries"`
	UniqueFields    int            `json:"uniqueFieldsCount"`
	HiddenFound     int            `json:"hiddenFieldsFound"`
	InvalidAttempts int            `json:"invalidFieldsAttempted"`
	Fields          []string       `json:"allUniqueFieldsList"`
	HiddenFields    []string       `json:"hiddenFieldNames"`
	RecentQueries   []HistoryEntry `json:"recentQueries"`
	LatestQuery     *HistoryEntry  `json:"latestQuery,omitempty"`
	Achievements    Achievements   `json:"achievements"`
}

// Achievements are thresholds reached during the session.
type Achievements struct {
	FirstQuery     bool `json:"firstQuery"`
	Explorer       bool `json:"explorer"`
	Detective      bool `json:"detective"`
	FieldCollector bool `json:"fieldCollector"`
	HiddenMaster   bool `json:"hiddenMaster"`
	Persistent     bool `json:"persistent"`
}

// Achievement describes one achievement for display.
type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

func achievementsFor(s Snapshot) Achievements {
	return Achievements{
		FirstQuery:     s.TotalQueries >= 1,
		Explorer:       s.TotalQueries >= 5,
		Detective:      s.HiddenFound >= 3,
		FieldCollector: s.UniqueFields >= 15,
		HiddenMaster:   s.HiddenFound >= 10,
		Persistent:     s.SessionMinutes >= 5,
	}
}

// List returns the achievements in display order.
func (a Achievements) List() []Achievement {
	return []Achievement{
		{"firstQuery", "First Query", "Run your first query", a.FirstQuery},
		{"explorer", "Explorer", "Run 5 queries", a.Explorer},
		{"detective", "Detective", "Find 3 hidden fields", a.Detective},
		{"fieldCollector", "Field Collector", "Discover 15 unique fields", a.FieldCollector},
		{"hiddenMaster", "Hidden Master", "Find 10 hidden fields", a.HiddenMaster},
		{"persistent", "Persistent", "Keep exploring for 5 minutes", a.Persistent},
	}
}

// Unlocked returns the number of unlocked achievements.
func (a Achievements) Unlocked() int {
	n := 0
	for _, item := range a.List() {
		if item.Unlocked {
			n++
		}
	}
	return n
}
