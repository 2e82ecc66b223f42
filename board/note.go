package board

import "github.com/muhzinmohammed/infinite-canvas-notes/physics"

const (
	DefaultNoteW = 200.0
	DefaultNoteH = 150.0

	DefaultColor = "yellow"
)

// Note is one sticky card on the canvas. Position is the top-left corner in
// canvas coordinates; strings attach at the center.
type Note struct {
	ID    string
	X, Y  float64
	W, H  float64
	Color string
	Text  string
}

func (n *Note) Center() physics.Point {
	return physics.NoteCenter(n.X, n.Y, n.W, n.H)
}
