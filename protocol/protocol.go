package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"

	MsgAddNote     = "addNote"
	MsgMoveNote    = "moveNote"
	MsgEditNote    = "editNote"
	MsgRecolorNote = "recolorNote"
	MsgDeleteNote  = "deleteNote"

	MsgConnectNotes = "connectNotes"
	MsgDeleteString = "deleteString"
)

const (
	// SimTickHz caps the simulation at one tick per ~16ms regardless of the
	// client's display refresh rate.
	SimTickHz   = 60
	BroadcastHz = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
