package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionAsk  Action = "ask"
	ActionPing Action = "ping"
)

// AskRequest is sent by the client to ask the FAQ responder a question.
type AskRequest struct {
	Action   Action `json:"action"`
	Question string `json:"question"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventAnswer Event = "answer"
	EventError  Event = "error"
	EventPong   Event = "pong"
)

// AnswerResponse carries the FAQ answer back to the client.
type AnswerResponse struct {
	Event  Event  `json:"event"`
	Answer string `json:"answer"`
}

// PongResponse answers a keepalive ping.
type PongResponse struct {
	Event Event `json:"event"`
}

// ErrorResponse reports a protocol error to the client.
type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
