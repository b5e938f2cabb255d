package result

// Severity grades a violation. Only SeverityError can fail a diagram;
// warnings cost potential score but stay visible; notes are accepted
// shorthand and suppress noise.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Issue is one severity-tagged finding about a placement or connection.
type Issue struct {
	Type       string   `json:"type"`
	Severity   Severity `json:"severity"`
	NodeID     string   `json:"node_id,omitempty"`
	EdgeID     string   `json:"edge_id,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Pattern is a detected whole-diagram best practice and its bonus.
type Pattern struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// AuditReport is the one-shot outcome of auditing a full snapshot. It has
// no persisted identity and is recomputed from scratch each call.
type AuditReport struct {
	Score            int       `json:"score"`
	MaxScore         int       `json:"max_score"`
	IsValid          bool      `json:"is_valid"`
	Correct          []string  `json:"correct,omitempty"`
	Incorrect        []string  `json:"incorrect,omitempty"`
	Missing          []string  `json:"missing,omitempty"`
	Suggestions      []string  `json:"suggestions,omitempty"`
	PlacementIssues  []Issue   `json:"placement_issues,omitempty"`
	ConnectionIssues []Issue   `json:"connection_issues,omitempty"`
	Patterns         []Pattern `json:"patterns,omitempty"`
}

// ErrorCount returns how many issues in the list carry error severity.
func ErrorCount(issues []Issue) int {
	n := 0
	for _, is := range issues {
		if is.Severity == SeverityError {
			n++
		}
	}
	return n
}
