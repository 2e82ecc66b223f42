package session

import (
	"crypto/rand"
	"math/big"
	"path/filepath"
	"sync"
)

// BoardInfo is returned by the API for the board list.
type BoardInfo struct {
	Code    string `json:"code"`
	Editors int    `json:"editors"`
}

// Manager holds live sessions by board code. Sessions are created on first
// join or via CreateBoard, and removed when the last editor leaves.
type Manager struct {
	mu       sync.RWMutex
	saveDir  string
	sessions map[string]*Session
}

// NewManager creates a manager. saveDir may be empty to disable board
// persistence.
func NewManager(saveDir string) *Manager {
	return &Manager{
		saveDir:  saveDir,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreateBoard returns the session for the given code, creating (and
// reloading any saved board) if needed.
func (m *Manager) GetOrCreateBoard(code string) *Session {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		return s
	}
	s := m.newSession(code)
	m.sessions[code] = s
	go s.Run()
	return s
}

// GetBoard returns a live session without creating one.
func (m *Manager) GetBoard(code string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[code]
	return s, ok
}

func (m *Manager) newSession(code string) *Session {
	s := New()
	s.Code = code
	if m.saveDir != "" {
		s.SavePath = filepath.Join(m.saveDir, code+".json")
	}
	s.OnEmpty = func(c string) {
		m.removeBoard(c)
	}
	s.LoadBoard()
	return s
}

func (m *Manager) removeBoard(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		s.Stop()
		delete(m.sessions, code)
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateBoard generates a unique 6-char code, creates the session, and
// returns the code.
func (m *Manager) CreateBoard() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.sessions[code]; exists {
			continue
		}
		s := m.newSession(code)
		m.sessions[code] = s
		go s.Run()
		return code
	}
}

// ListBoards returns all active boards with code and editor count.
func (m *Manager) ListBoards() []BoardInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]BoardInfo, 0, len(m.sessions))
	for code, s := range m.sessions {
		out = append(out, BoardInfo{Code: code, Editors: s.NumEditors()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
