package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL string        // Base URL of the popup service
	Pairs   int           // Number of comparisons to request
	Workers int           // Number of concurrent requests
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every response
}

// Stats holds run statistics.
type Stats struct {
	Categories   int
	Leaderboards int
	Comparisons  int
	Fallbacks    int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

// Row mirrors a leaderboard row of the JSON API.
type Row struct {
	Rank      int     `json:"rank"`
	Tier      string  `json:"tier"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Score     float64 `json:"score"`
}

// Leaderboards mirrors GET /api/leaderboards.
type Leaderboards struct {
	Category    string `json:"category"`
	Marketplace []Row  `json:"marketplace"`
	FairFound   []Row  `json:"fairfound"`
	Fallback    bool   `json:"fallback"`
}

// Side mirrors one header of a comparison.
type Side struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Avatar string `json:"avatar"`
}

// Metric mirrors a comparison metric.
type Metric struct {
	Label  string  `json:"label"`
	Value1 float64 `json:"value1"`
	Value2 float64 `json:"value2"`
	Bar1   float64 `json:"bar1"`
	Bar2   float64 `json:"bar2"`
}

// Comparison mirrors POST /api/compare.
type Comparison struct {
	Freelancer1 Side     `json:"freelancer1"`
	Freelancer2 Side     `json:"freelancer2"`
	Metrics     []Metric `json:"metrics"`
	Winner      string   `json:"winner"`
	Summary     string   `json:"summary"`
	Fallback    bool     `json:"fallback"`
}

// Pair is a pair of profile URLs to compare.
type Pair struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}
