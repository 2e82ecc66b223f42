package protocol

// Commands coming in from the client. IDs for new notes and strings are
// assigned server-side and come back in the next state broadcast.

type Hello struct {
	V    int    `json:"v"`              // protocol version
	Name string `json:"name,omitempty"` // optional display name
}

type AddNote struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
	Text  string  `json:"text,omitempty"`
}

type MoveNote struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type EditNote struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type RecolorNote struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

type DeleteNote struct {
	ID string `json:"id"`
}

type ConnectNotes struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DeleteString is the deletion-intent signal fired when the client activates
// a string's hit region; the server owns the actual removal.
type DeleteString struct {
	ID string `json:"id"`
}
