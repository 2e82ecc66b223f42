package board

import "fmt"

func (s *State) AddNote(n *Note) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("add note: missing id")
	}
	if _, exists := s.Notes[n.ID]; exists {
		return fmt.Errorf("add note: duplicate id %q", n.ID)
	}
	if n.W <= 0 {
		n.W = DefaultNoteW
	}
	if n.H <= 0 {
		n.H = DefaultNoteH
	}
	if n.Color == "" {
		n.Color = DefaultColor
	}
	s.Notes[n.ID] = n
	return nil
}

func (s *State) MoveNote(id string, x, y float64) error {
	n, ok := s.Notes[id]
	if !ok {
		return fmt.Errorf("move note: unknown id %q", id)
	}
	n.X = x
	n.Y = y
	return nil
}

func (s *State) EditNote(id, text string) error {
	n, ok := s.Notes[id]
	if !ok {
		return fmt.Errorf("edit note: unknown id %q", id)
	}
	n.Text = text
	return nil
}

func (s *State) RecolorNote(id, color string) error {
	n, ok := s.Notes[id]
	if !ok {
		return fmt.Errorf("recolor note: unknown id %q", id)
	}
	if color == "" {
		color = DefaultColor
	}
	n.Color = color
	return nil
}

// DeleteNote removes a note and every string attached to it. Deleting an
// unknown id is a no-op so late-arriving deletes from clients stay harmless.
func (s *State) DeleteNote(id string) {
	delete(s.Notes, id)
	for cid, c := range s.Connections {
		if c.From == id || c.To == id {
			delete(s.Connections, cid)
		}
	}
}

// Connect hangs a new string between two existing notes.
func (s *State) Connect(id, from, to string) error {
	if id == "" {
		return fmt.Errorf("connect: missing id")
	}
	if from == to {
		return fmt.Errorf("connect: cannot connect note %q to itself", from)
	}
	if _, ok := s.Notes[from]; !ok {
		return fmt.Errorf("connect: unknown note %q", from)
	}
	if _, ok := s.Notes[to]; !ok {
		return fmt.Errorf("connect: unknown note %q", to)
	}
	if _, exists := s.Connections[id]; exists {
		return fmt.Errorf("connect: duplicate id %q", id)
	}
	for _, c := range s.Connections {
		if (c.From == from && c.To == to) || (c.From == to && c.To == from) {
			return fmt.Errorf("connect: notes %q and %q are already connected", from, to)
		}
	}
	s.Connections[id] = &Connection{ID: id, From: from, To: to}
	return nil
}

// Disconnect drops one string. Unknown ids are a no-op, same as DeleteNote.
func (s *State) Disconnect(id string) {
	delete(s.Connections, id)
}
