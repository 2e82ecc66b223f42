package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// Saved board files hold notes and string endpoints only; chain geometry is
// re-seeded on the first tick after a reload, once both notes of each string
// are back.

type savedNote struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Color string  `json:"color"`
	Text  string  `json:"text,omitempty"`
}

type savedConnection struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

type savedBoard struct {
	Notes       []savedNote       `json:"notes"`
	Connections []savedConnection `json:"connections"`
}

// Save writes the board to path as JSON.
func (s *State) Save(path string) error {
	sb := savedBoard{
		Notes:       make([]savedNote, 0, len(s.Notes)),
		Connections: make([]savedConnection, 0, len(s.Connections)),
	}
	for _, n := range s.Notes {
		sb.Notes = append(sb.Notes, savedNote{
			ID: n.ID, X: n.X, Y: n.Y, W: n.W, H: n.H, Color: n.Color, Text: n.Text,
		})
	}
	for _, c := range s.Connections {
		sb.Connections = append(sb.Connections, savedConnection{ID: c.ID, From: c.From, To: c.To})
	}

	b, err := json.MarshalIndent(sb, "", "  ")
	if err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// Load reads a board saved by Save. Notes load before connections so every
// string finds both of its endpoints in one pass.
func Load(path string) (*State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	var sb savedBoard
	if err := json.Unmarshal(b, &sb); err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}

	s := NewState()
	for _, n := range sb.Notes {
		if err := s.AddNote(&Note{ID: n.ID, X: n.X, Y: n.Y, W: n.W, H: n.H, Color: n.Color, Text: n.Text}); err != nil {
			return nil, fmt.Errorf("load board: %w", err)
		}
	}
	for _, c := range sb.Connections {
		if err := s.Connect(c.ID, c.From, c.To); err != nil {
			return nil, fmt.Errorf("load board: %w", err)
		}
	}
	return s, nil
}
