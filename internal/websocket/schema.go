package websocket

import "encoding/json"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action of a client message.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError    Event = "error"
	EventSnapshot Event = "snapshot"
	EventActivity Event = "activity"
	EventPong     Event = "pong"
)

// SnapshotResponse carries the most recent feed entries on connect.
type SnapshotResponse struct {
	Event   Event `json:"event"`
	Entries any   `json:"entries"`
}

// ActivityResponse carries one newly persisted activity entry as published
// on the feed channel.
type ActivityResponse struct {
	Event Event           `json:"event"`
	Entry json.RawMessage `json:"entry"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
