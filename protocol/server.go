package protocol

import "github.com/muhzinmohammed/infinite-canvas-notes/physics"

type Welcome struct {
	EditorID string `json:"editorId"`
	Board    string `json:"board"`
	TickHz   int    `json:"tickHz"`
}

type Error struct {
	Msg string `json:"msg"`
}

type State struct {
	Tick    int              `json:"tick"`
	Notes   []NoteSnapshot   `json:"notes"`
	Strings []StringSnapshot `json:"strings,omitempty"`
}

type NoteSnapshot struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Color string  `json:"color"`
	Text  string  `json:"text,omitempty"`
}

// StringSnapshot carries the simulated geometry for one string: the full
// point run for the path, plus the two endpoints separately for the hover
// affordances at the attachment points.
type StringSnapshot struct {
	ID     string          `json:"id"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Points []physics.Point `json:"points"`
	Start  physics.Point   `json:"start"`
	End    physics.Point   `json:"end"`
}
