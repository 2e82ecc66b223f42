package board

// State is the authoritative board: every note and every string on one
// canvas. It is owned and mutated by a single session goroutine.
type State struct {
	Tick        int
	Notes       map[string]*Note
	Connections map[string]*Connection
}

func NewState() *State {
	return &State{
		Notes:       make(map[string]*Note),
		Connections: make(map[string]*Connection),
	}
}
