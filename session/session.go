package session

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/muhzinmohammed/infinite-canvas-notes/board"
	"github.com/muhzinmohammed/infinite-canvas-notes/protocol"
	"github.com/muhzinmohammed/infinite-canvas-notes/render"
)

// Session owns one board: a single goroutine ticks the simulation, applies
// client commands between ticks, and broadcasts decimated state snapshots.
// All board state is confined to that goroutine; the outside talks through
// Inbox only.
type Session struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	state          *board.State
	clients        map[string]Conn
	nextEditor     int
	nextNote       int
	nextString     int
	quit           chan struct{}

	Code     string            // board code (e.g. "ABC123")
	SavePath string            // optional; board JSON written when the last editor leaves
	OnEmpty  func(code string) // called when last editor leaves
}

func New() *Session {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Session{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		state:          board.NewState(),
		clients:        make(map[string]Conn),
		nextEditor:     1,
		nextNote:       1,
		nextString:     1,
		quit:           make(chan struct{}),
	}
}

func (s *Session) Stop() {
	close(s.quit)
}

// NumEditors returns the current number of connected clients.
func (s *Session) NumEditors() int {
	return len(s.clients)
}

// LoadBoard restores a previously saved board from SavePath. Call before Run;
// a missing file just means a fresh board.
func (s *Session) LoadBoard() {
	if s.SavePath == "" {
		return
	}
	if _, err := os.Stat(s.SavePath); err != nil {
		return
	}
	st, err := board.Load(s.SavePath)
	if err != nil {
		log.Printf("board %s: %v", s.Code, err)
		return
	}
	s.state = st
	// ID counters resume past anything on the reloaded board so new notes
	// and strings never collide with restored ones.
	for id := range st.Notes {
		var n int
		if _, err := fmt.Sscanf(id, "n%d", &n); err == nil && n >= s.nextNote {
			s.nextNote = n + 1
		}
	}
	for id := range st.Connections {
		var n int
		if _, err := fmt.Sscanf(id, "s%d", &n); err == nil && n >= s.nextString {
			s.nextString = n + 1
		}
	}
}

// Run is the session loop. The ticker is released on Stop; every session
// that starts Run must eventually get Stop, via OnEmpty or manager removal,
// or its tick callback leaks.
func (s *Session) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			s.handleCommand(cmd)
		case <-ticker.C:
			board.Step(s.state)
			if s.state.Tick%s.broadcastEvery == 0 {
				s.broadcastState()
			}
		}
	}
}

func (s *Session) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		editorID := fmt.Sprintf("e%d", s.nextEditor)
		s.nextEditor++
		s.clients[editorID] = c.Conn
		c.Reply <- JoinResult{EditorID: editorID}
		s.sendStateTo(c.Conn)
	case Command:
		conn, ok := s.clients[c.EditorID]
		if !ok {
			return
		}
		if err := s.apply(c.Env); err != nil {
			s.sendErrorTo(conn, err)
		}
	case Leave:
		s.handleLeave(c.EditorID)
	case Render:
		png, err := render.PNG(s.state, c.W, c.H)
		c.Reply <- RenderResult{PNG: png, Err: err}
	}
}

// apply mutates the board for one client command. Errors go back to the
// issuing client only; the board and every other editor are unaffected.
func (s *Session) apply(env protocol.Envelope) error {
	switch env.T {
	case protocol.MsgAddNote:
		p, err := protocol.DecodePayload[protocol.AddNote](env)
		if err != nil {
			return err
		}
		id := fmt.Sprintf("n%d", s.nextNote)
		s.nextNote++
		return s.state.AddNote(&board.Note{ID: id, X: p.X, Y: p.Y, Color: p.Color, Text: p.Text})
	case protocol.MsgMoveNote:
		p, err := protocol.DecodePayload[protocol.MoveNote](env)
		if err != nil {
			return err
		}
		return s.state.MoveNote(p.ID, p.X, p.Y)
	case protocol.MsgEditNote:
		p, err := protocol.DecodePayload[protocol.EditNote](env)
		if err != nil {
			return err
		}
		return s.state.EditNote(p.ID, p.Text)
	case protocol.MsgRecolorNote:
		p, err := protocol.DecodePayload[protocol.RecolorNote](env)
		if err != nil {
			return err
		}
		return s.state.RecolorNote(p.ID, p.Color)
	case protocol.MsgDeleteNote:
		p, err := protocol.DecodePayload[protocol.DeleteNote](env)
		if err != nil {
			return err
		}
		s.state.DeleteNote(p.ID)
		return nil
	case protocol.MsgConnectNotes:
		p, err := protocol.DecodePayload[protocol.ConnectNotes](env)
		if err != nil {
			return err
		}
		id := fmt.Sprintf("s%d", s.nextString)
		s.nextString++
		return s.state.Connect(id, p.From, p.To)
	case protocol.MsgDeleteString:
		p, err := protocol.DecodePayload[protocol.DeleteString](env)
		if err != nil {
			return err
		}
		s.state.Disconnect(p.ID)
		return nil
	default:
		return fmt.Errorf("unknown command %q", env.T)
	}
}

func (s *Session) handleLeave(editorID string) {
	c, ok := s.clients[editorID]
	if ok {
		_ = c.Close()
		delete(s.clients, editorID)
	}
	if len(s.clients) == 0 {
		s.saveBoard()
		if s.OnEmpty != nil && s.Code != "" {
			s.OnEmpty(s.Code)
		}
	}
}

func (s *Session) saveBoard() {
	if s.SavePath == "" {
		return
	}
	if err := s.state.Save(s.SavePath); err != nil {
		log.Printf("board %s: %v", s.Code, err)
	}
}

func (s *Session) removeEditor(editorID string) {
	if c, ok := s.clients[editorID]; ok {
		_ = c.Close()
	}
	delete(s.clients, editorID)
}

func (s *Session) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, s.buildSnapshot())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range s.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		s.removeEditor(id)
	}
}

func (s *Session) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, s.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (s *Session) sendErrorTo(c Conn, cause error) {
	b, err := protocol.Encode(protocol.MsgError, protocol.Error{Msg: cause.Error()})
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (s *Session) buildSnapshot() protocol.State {
	snapshot := protocol.State{
		Tick:    s.state.Tick,
		Notes:   make([]protocol.NoteSnapshot, 0, len(s.state.Notes)),
		Strings: make([]protocol.StringSnapshot, 0, len(s.state.Connections)),
	}
	for id, n := range s.state.Notes {
		snapshot.Notes = append(snapshot.Notes, protocol.NoteSnapshot{
			ID:    id,
			X:     n.X,
			Y:     n.Y,
			W:     n.W,
			H:     n.H,
			Color: n.Color,
			Text:  n.Text,
		})
	}
	for id, c := range s.state.Connections {
		pts := c.Points()
		if pts == nil {
			continue // not renderable yet, or an endpoint note is gone
		}
		snapshot.Strings = append(snapshot.Strings, protocol.StringSnapshot{
			ID:     id,
			From:   c.From,
			To:     c.To,
			Points: pts,
			Start:  pts[0],
			End:    pts[len(pts)-1],
		})
	}
	return snapshot
}
