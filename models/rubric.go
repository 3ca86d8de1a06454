package models

// Tag flags one rubric category on a marked answer.
type Tag struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "ok", "mid" or "bad"; detection currently never yields "mid"
}

// Grid re-expresses the category signals under the display labels of the
// results table.
type Grid struct {
	Ethical         string `json:"ethical"`
	Impact          string `json:"impact"`
	Legal           string `json:"legal"`
	Recommendations string `json:"recommendations"`
	Structure       string `json:"structure"`
}

// FrameworkEntry pairs a marking expectation with its case-study guidance.
type FrameworkEntry struct {
	Expectation string `json:"expectation"`
	Case        string `json:"case"`
}

// Framework is the fixed four-tab comparison panel attached to every scored
// result.
type Framework struct {
	GDPR   FrameworkEntry `json:"gdpr"`
	UNESCO FrameworkEntry `json:"unesco"`
	Ofsted FrameworkEntry `json:"ofsted"`
	JISC   FrameworkEntry `json:"jisc"`
}

// RubricResult is the outcome of marking one submitted answer. When Gated is
// true only WordCount and Message carry meaning; every scoring field stays at
// its zero value.
type RubricResult struct {
	Gated         bool       `json:"gated"`
	WordCount     int        `json:"wordCount"`
	Message       string     `json:"message,omitempty"`
	Score         *int       `json:"score"`
	Strengths     []string   `json:"strengths"`
	Tags          []Tag      `json:"tags"`
	Grid          *Grid      `json:"grid"`
	Feedback      string     `json:"feedback,omitempty"`
	Framework     *Framework `json:"framework"`
	ModelAnswer   *string    `json:"modelAnswer"`
	ModelAiLetter *string    `json:"modelAiLetter"`
}
