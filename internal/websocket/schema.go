package websocket

import "github.com/classpoint/classpoint-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventAttendance Event = "attendance"
	EventError      Event = "error"
	EventPong       Event = "pong"
)

// AttendanceEvent wraps a live roll-call event for the feed.
type AttendanceEvent struct {
	Event   Event           `json:"event"`
	Payload model.FeedEvent `json:"payload"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
