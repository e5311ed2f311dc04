package main

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub reparte ondas (binario) y frecuencia cardíaca (JSON) a los monitores
// conectados.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *Hub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
}

func (h *Hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

func (h *Hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	return clients
}

// broadcast envía a todos; un cliente lento o caído se desconecta.
func (h *Hub) broadcast(messageType int, b []byte) {
	for _, c := range h.snapshot() {
		_ = c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(messageType, b); err != nil {
			_ = c.Close()
			h.remove(c)
		}
	}
}

// serveWS registra el cliente hasta que cierra la conexión.
func (h *Hub) serveWS(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("upgrade", "remote", r.RemoteAddr, "error", err)
			return
		}
		h.add(conn)
		logger.Debug("client connected", "remote", r.RemoteAddr, "clients", h.len())
		defer func() {
			h.remove(conn)
			conn.Close()
		}()

		// solo lectura para detectar el cierre
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
