package querylog

// Entry records one recommendation or Q&A lookup for later review.
// Writes are best effort: a failed insert never surfaces to the caller.
type Entry struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	QueryText string         `json:"query_text"`
	Intent    string         `json:"intent"`
	Input     map[string]any `json:"input_json"`
	Output    map[string]any `json:"output_json"`
}

// Known intents
const (
	IntentRecharge = "recharge"
	IntentSessions = "sessions"
	IntentQA       = "qa"
)
