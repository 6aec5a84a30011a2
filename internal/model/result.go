package model

// Outcome describes how a ranking run ended.
type Outcome string

// Ranking run outcomes.
const (
	OutcomeRanked       Outcome = "ranked"
	OutcomeNoMatches    Outcome = "no_matches"
	OutcomeUnknownCity  Outcome = "unknown_city"
	OutcomeDatasetError Outcome = "dataset_error"
)

// IsError reports whether the outcome represents a failed run rather than
// a completed one.
func (o Outcome) IsError() bool {
	return o == OutcomeUnknownCity || o == OutcomeDatasetError
}

// Stats counts what happened to the loaded records during a run.
type Stats struct {
	Loaded       int `json:"loaded"`
	SelfExcluded int `json:"self_excluded"`
	Unresolved   int `json:"unresolved"`
	FilteredOut  int `json:"filtered_out"`
	Candidates   int `json:"candidates"`
}

// ResultSet is the ordered, truncated output of one ranking run.
type ResultSet struct {
	RunID      string        `json:"run_id,omitempty"`
	Source     string        `json:"source"`
	Request    Request       `json:"request"`
	Outcome    Outcome       `json:"outcome"`
	Places     []ScoredPlace `json:"places"`
	Stats      Stats         `json:"stats"`
	ReportPath string        `json:"report_path,omitempty"`
}

// Empty reports whether there is nothing to present.
func (r *ResultSet) Empty() bool {
	return r == nil || r.Outcome != OutcomeRanked || len(r.Places) == 0
}

// Len returns the number of ranked places.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Places)
}
