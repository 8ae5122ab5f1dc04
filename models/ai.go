package models

// AskRequest is the payload coming from the frontend into /api/ask.
type AskRequest struct {
	Question      string `json:"question"`                // user's message (voice-to-text or typed)
	ScheduleState string `json:"scheduleState,omitempty"` // opaque token from a previous turn, if mid-scheduling
}

// AskResponse is what the ask handler returns to the frontend.
type AskResponse struct {
	Answer        string   `json:"answer"`
	ScheduleState *string  `json:"scheduleState"` // null when no scheduling conversation is active
	Done          bool     `json:"done,omitempty"`
	Violations    []string `json:"violations,omitempty"`
	LatencyMS     int64    `json:"latency_ms,omitempty"`
}

// Answer is the result of the retrieval pipeline.
type Answer struct {
	Text            string `json:"text"`
	TriggerSchedule bool   `json:"triggerSchedule"`
	LatencyMS       int64  `json:"latency_ms"`
}

// DocumentChunk is one indexed piece of support documentation.
type DocumentChunk struct {
	ID        string    `bson:"_id" json:"id"`
	Source    string    `bson:"source" json:"source"`
	Text      string    `bson:"text" json:"text"`
	Embedding []float32 `bson:"embedding" json:"embedding,omitempty"`
}
