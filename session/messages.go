package session

import "github.com/muhzinmohammed/infinite-canvas-notes/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	EditorID string
}

// Command: a decoded client envelope, applied between ticks
type Command struct {
	EditorID string
	Env      protocol.Envelope
}

// Leave: issued on disconnect
type Leave struct {
	EditorID string
}

// Render: request for a PNG snapshot of the board, served over HTTP
type Render struct {
	W, H  int
	Reply chan<- RenderResult
}

type RenderResult struct {
	PNG []byte
	Err error
}
