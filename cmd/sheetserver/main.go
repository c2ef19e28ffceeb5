// Command sheetserver exposes a single shared sheet over HTTP, broadcasting
// each edited cell's new rendering to connected WebSocket clients.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kalexmills/cellgraph/internal"
	"github.com/kalexmills/cellgraph/sheetsync"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// server holds the shared sheet and the set of connected clients awaiting
// broadcast updates.
type server struct {
	sheet   *sheetsync.Sheet
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newServer() *server {
	return &server{
		sheet:   sheetsync.New(),
		clients: make(map[*websocket.Conn]bool),
	}
}

// updateRequest is a client-submitted edit.
type updateRequest struct {
	Type string `json:"type"` // "set" or "clear"
	Ref  string `json:"ref"`
	Text string `json:"text,omitempty"`
}

// cellUpdate is a single cell's rendered state, pushed to every client after
// that cell is edited. Cells whose values change only through the
// invalidation cascade are not pushed.
type cellUpdate struct {
	Ref   string `json:"ref"`
	Text  string `json:"text"`
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		var req updateRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		pos, err := internal.ParsePosition(req.Ref)
		if err != nil {
			s.sendError(conn, req.Ref, err)
			continue
		}
		switch req.Type {
		case "set":
			err = s.sheet.SetCell(pos, req.Text)
		case "clear":
			err = s.sheet.ClearCell(pos)
		default:
			s.sendError(conn, req.Ref, nil)
			continue
		}
		if err != nil {
			s.sendError(conn, req.Ref, err)
			continue
		}
		s.broadcastCell(pos)
	}
}

func (s *server) sendError(conn *websocket.Conn, ref string, err error) {
	msg := cellUpdate{Ref: ref}
	if err != nil {
		msg.Error = err.Error()
	} else {
		msg.Error = "unknown request type"
	}
	_ = conn.WriteJSON(msg)
}

// broadcastCell pushes pos's current rendering to every connected client.
// A full dependency-aware diff (pushing every invalidated dependent) is left
// to clients, which can re-read dependents from /snapshot; the server does
// not track which refs a given client currently has open.
func (s *server) broadcastCell(pos internal.Position) {
	update := s.render(pos)

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(update); err != nil {
			log.Printf("broadcast to client failed: %v", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *server) render(pos internal.Position) cellUpdate {
	cell, err := s.sheet.GetCell(pos)
	if err != nil {
		return cellUpdate{Ref: pos.String(), Error: err.Error()}
	}
	if cell == nil {
		return cellUpdate{Ref: pos.String()}
	}
	update := cellUpdate{Ref: pos.String(), Text: cell.Text}
	if ferr, ok := cell.Value.(internal.FormulaError); ok {
		update.Error = ferr.Error()
	} else {
		update.Value = cell.String()
	}
	return update
}

func (s *server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	rows, cols := s.sheet.PrintableSize()
	var cells []cellUpdate
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			u := s.render(internal.Position{Row: row, Col: col})
			if u.Text != "" || u.Value != "" || u.Error != "" {
				cells = append(cells, u)
			}
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cells)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	s := newServer()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/snapshot", s.handleSnapshot)

	log.Printf("sheetserver listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
