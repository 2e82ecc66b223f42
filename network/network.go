package network

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muhzinmohammed/infinite-canvas-notes/protocol"
	"github.com/muhzinmohammed/infinite-canvas-notes/session"
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	readLimit     = 1 << 20 // 1MB
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	pingEvery     = 25 * time.Second
)

// Handler owns the /ws endpoint: upgrade, hello handshake, join, then pump
// decoded envelopes into the board session until the socket dies.
type Handler struct {
	mgr *session.Manager
}

func NewHandler(mgr *session.Manager) *Handler {
	return &Handler{mgr: mgr}
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("board")
	if code == "" {
		http.Error(w, "missing board code", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	wc := &wsConn{conn: conn}
	defer wc.Close()

	// Basic timeouts + pong handling (keeps connections healthy)
	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	// The first message must be hello; everything else is a protocol error.
	_, msg, err := conn.ReadMessage()
	if err != nil {
		log.Println("read hello:", err)
		return
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil || env.T != protocol.MsgHello {
		log.Println("expected hello, closing")
		return
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		log.Println("hello payload:", err)
		return
	}

	sess := h.mgr.GetOrCreateBoard(code)
	reply := make(chan session.JoinResult, 1)
	sess.Inbox <- session.Join{Conn: wc, Name: hello.Name, Reply: reply}
	res := <-reply

	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		EditorID: res.EditorID,
		Board:    code,
		TickHz:   protocol.SimTickHz,
	})
	if err == nil {
		_ = wc.Send(welcome)
	}

	// Ping loop; stops when the read loop exits.
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := wc.Ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Println("decode:", err)
			continue
		}
		sess.Inbox <- session.Command{EditorID: res.EditorID, Env: env}
	}

	close(done)
	sess.Inbox <- session.Leave{EditorID: res.EditorID}
}

// wsConn adapts a websocket to session.Conn. gorilla allows one concurrent
// writer, and both the session goroutine and the ping loop write, hence the
// mutex.
type wsConn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
