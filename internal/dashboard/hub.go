package dashboard

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"fuel-console/internal/metrics"
	"fuel-console/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans dashboard snapshots out to websocket subscribers.
type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan models.DashboardSnapshot
	done       chan struct{}
	closeOnce  sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan models.DashboardSnapshot, 8),
		done:      make(chan struct{}),
	}
}

// Run delivers broadcasts until Close is called.
func (h *Hub) Run() {
	for {
		select {
		case snap := <-h.broadcast:
			h.send(snap)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) send(snap models.DashboardSnapshot) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	for client := range h.clients {
		if err := client.WriteJSON(snap); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
	metrics.DashboardSubscribers.Set(float64(len(h.clients)))
}

// Broadcast queues snap for every subscriber. When the queue is full the
// snapshot is dropped; the next poll supersedes it anyway.
func (h *Hub) Broadcast(snap models.DashboardSnapshot) {
	select {
	case h.broadcast <- snap:
	default:
		log.Printf("[Dashboard] Broadcast queue full, dropping snapshot")
	}
}

// Subscribers returns the number of open connections.
func (h *Hub) Subscribers() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}

// ServeWS upgrades the request and registers the connection. The current
// snapshot is sent straight away so a new subscriber does not wait a full
// poll interval.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, current models.DashboardSnapshot) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[Dashboard] WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	h.clientsMux.Lock()
	h.clients[conn] = true
	metrics.DashboardSubscribers.Set(float64(len(h.clients)))
	if err := conn.WriteJSON(current); err != nil {
		delete(h.clients, conn)
		h.clientsMux.Unlock()
		return
	}
	h.clientsMux.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.clientsMux.Lock()
			delete(h.clients, conn)
			metrics.DashboardSubscribers.Set(float64(len(h.clients)))
			h.clientsMux.Unlock()
			break
		}
	}
}

// Close stops Run and disconnects every subscriber.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.clientsMux.Lock()
		for client := range h.clients {
			client.Close()
			delete(h.clients, client)
		}
		metrics.DashboardSubscribers.Set(0)
		h.clientsMux.Unlock()
	})
}
