package dto

// ErrorResponse carries a user-facing error message. Field names the offending input, Item its line.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Item  *int   `json:"item,omitempty"`
}

// StreamMessage is one websocket push.
type StreamMessage struct {
	Type    string          `json:"type"`
	Version uint64          `json:"version"`
	Orders  []OrderResponse `json:"orders"`
	Summary SummaryResponse `json:"summary"`
}

// SnapshotMessageType marks a full snapshot push.
const SnapshotMessageType = "snapshot"
