package types

import "time"

// ThreatLevel is the banded label derived from a threat score.
type ThreatLevel string

const (
	LevelLow      ThreatLevel = "Low"
	LevelGuarded  ThreatLevel = "Guarded"
	LevelElevated ThreatLevel = "Elevated"
	LevelHigh     ThreatLevel = "High"
)

// KeywordSeries is one chart dataset: a keyword and its daily interest
// index values (0-100).
type KeywordSeries struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// Signal is the per-request bundle of outbreak indicators for one
// (disease, city, geo) query: a 30-day interest series per keyword plus a
// social mention count. Request-scoped, immutable after construction.
type Signal struct {
	Disease      string          `json:"disease"`
	City         string          `json:"city"`
	Geo          string          `json:"geo"`
	Labels       []string        `json:"labels"`
	Series       []KeywordSeries `json:"series"`
	MentionCount int             `json:"mentionCount"`
	GeneratedAt  time.Time       `json:"generatedAt"`
}

// ChartData mirrors the shape the dashboard's chart library expects.
type ChartData struct {
	Labels   []string        `json:"labels"`
	Datasets []KeywordSeries `json:"datasets"`
}

// ThreatReport is the full response payload for one threat query.
type ThreatReport struct {
	ID                   string      `json:"id"`
	Disease              string      `json:"disease"`
	City                 string      `json:"city"`
	Geo                  string      `json:"geo"`
	ThreatScore          int         `json:"threat_score"`
	ThreatLevel          ThreatLevel `json:"threat_level"`
	SpikePct             float64     `json:"spike_pct"`
	ActionItem           string      `json:"action_item"`
	Recommendation       string      `json:"recommendation"`
	RecommendationSource string      `json:"recommendation_source"`
	ChartData            ChartData   `json:"chart_data"`
	GeneratedAt          string      `json:"generated_at"`
}
