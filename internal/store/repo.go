package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProfileData is the persisted user profile.
type ProfileData struct {
	Name string `json:"name"`
}

// AssessmentData is the persisted assessment score set, including the
// narrative when the narrator call succeeded.
type AssessmentData struct {
	MemoryNumbers float64 `json:"memory_numbers"`
	MemoryWords   float64 `json:"memory_words"`
	Speed         float64 `json:"speed"`
	Logic         float64 `json:"logic"`
	WorkingMemory float64 `json:"working_memory"`
	Narrative     string  `json:"narrative,omitempty"`
}

// StatsData holds the engagement counters. LastPlayed is a calendar date
// in "2006-01-02" form, not a timestamp; streaks are whole-day arithmetic.
type StatsData struct {
	GamesPlayed   int    `json:"games_played"`
	CurrentStreak int    `json:"current_streak"`
	LastPlayed    string `json:"last_played,omitempty"`
}

// SnapshotData captures the full user state at a point in time.
type SnapshotData struct {
	Version    int               `json:"version"`
	Profile    *ProfileData      `json:"profile,omitempty"`
	Assessment *AssessmentData   `json:"assessment,omitempty"`
	Stats      *StatsData        `json:"stats,omitempty"`
	Settings   map[string]string `json:"settings,omitempty"`
}

// Snapshot represents a point-in-time capture of user state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages user state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, assigning its global sequence number.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// GameEventData captures one completed game playthrough.
type GameEventData struct {
	SessionID    string
	GameType     string
	Score        int
	Accuracy     float64
	DurationSecs int
	Timestamp    time.Time
}

// AssessmentEventData captures one completed assessment run.
type AssessmentEventData struct {
	SessionID     string
	MemoryNumbers float64
	MemoryWords   float64
	Speed         float64
	Logic         float64
	WorkingMemory float64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendGameEvent records a completed game.
	AppendGameEvent(ctx context.Context, data GameEventData) error

	// GameResults returns results for one game type, oldest first.
	GameResults(ctx context.Context, gameType string, opts QueryOpts) ([]GameEventData, error)

	// AppendAssessmentEvent records a completed assessment.
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
