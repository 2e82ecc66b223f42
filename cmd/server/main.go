package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/muhzinmohammed/infinite-canvas-notes/config"
	"github.com/muhzinmohammed/infinite-canvas-notes/network"
	"github.com/muhzinmohammed/infinite-canvas-notes/session"
)

func main() {
	config.InitConfig()

	port := config.GetEnvOr("HTTP_PORT", "8080")
	saveDir := config.GetEnvOr("BOARD_SAVE_DIR", "")
	staticDir := config.GetEnvOr("STATIC_DIR", "")

	mgr := session.NewManager(saveDir)
	ws := network.NewHandler(mgr)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws.ServeWS)

	mux.HandleFunc("GET /api/boards", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, mgr.ListBoards())
	})
	mux.HandleFunc("POST /api/boards", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"code": mgr.CreateBoard()})
	})
	mux.HandleFunc("GET /api/boards/{code}/snapshot.png", func(w http.ResponseWriter, r *http.Request) {
		sess, ok := mgr.GetBoard(r.PathValue("code"))
		if !ok {
			http.Error(w, "no such board", http.StatusNotFound)
			return
		}
		width := intParam(r, "w", 1280)
		height := intParam(r, "h", 800)
		reply := make(chan session.RenderResult, 1)
		sess.Inbox <- session.Render{W: width, H: height, Reply: reply}
		select {
		case res := <-reply:
			if res.Err != nil {
				http.Error(w, res.Err.Error(), http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(res.PNG)
		case <-time.After(2 * time.Second):
			http.Error(w, "snapshot timed out", http.StatusServiceUnavailable)
		}
	})

	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	log.Printf("listening on :%s (ws endpoint: /ws)", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("write json:", err)
	}
}

func intParam(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
