package scrollsync

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Position is one pane's scroll offsets.
type Position struct {
	// Pane names the pane the offsets came from,
	// e.g. "chroma" or "classic".
	Pane string `json:"pane"`

	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Hub relays scroll positions between the connections
// viewing the same comparison.
//
// Each pane holds its own connection.
// A position reported by the active scroll source
// is forwarded to every other connection in the same room;
// positions from anyone else are dropped
// until the source's debounce window expires.
type Hub struct {
	// Log is the logger for connection-level noise.
	// Defaults to a silent logger.
	Log *log.Logger

	// Window is the debounce window for the scroll token.
	// Defaults to [DefaultWindow].
	Window time.Duration

	upgrader websocket.Upgrader

	mu    sync.Mutex
	rooms map[string]*room
}

type room struct {
	token *Token

	mu      sync.Mutex
	clients map[string]*client
}

type client struct {
	id   string
	pane string
	conn *websocket.Conn
	send chan Position
}

func (h *Hub) logger() *log.Logger {
	if h.Log != nil {
		return h.Log
	}
	return log.New(io.Discard, "", 0)
}

// Serve upgrades the request to a websocket connection
// and joins it to the room for the given comparison.
// It returns when the connection closes.
func (h *Hub) Serve(roomName string, w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger().Printf("scrollsync: upgrade: %v", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		pane: r.URL.Query().Get("pane"),
		conn: conn,
		send: make(chan Position, 8),
	}

	rm := h.join(roomName, c)
	defer h.leave(roomName, c)

	go c.writeLoop()
	h.readLoop(rm, c)
}

func (h *Hub) readLoop(rm *room, c *client) {
	for {
		var pos Position
		if err := c.conn.ReadJSON(&pos); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger().Printf("scrollsync: read: %v", err)
			}
			return
		}

		// Only the active scroll source may drive the mirrors.
		// A scroll echoed back by a mirrored pane
		// arrives while the source still holds the token
		// and is dropped here.
		if !rm.token.Acquire(c.id) {
			continue
		}

		pos.Pane = c.pane
		rm.broadcast(pos, c.id)
	}
}

func (c *client) writeLoop() {
	for pos := range c.send {
		if err := c.conn.WriteJSON(pos); err != nil {
			return
		}
	}
}

func (h *Hub) join(name string, c *client) *room {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms == nil {
		h.rooms = make(map[string]*room)
	}
	rm, ok := h.rooms[name]
	if !ok {
		rm = &room{
			token:   NewToken(h.Window),
			clients: make(map[string]*client),
		}
		h.rooms[name] = rm
	}

	rm.mu.Lock()
	rm.clients[c.id] = c
	rm.mu.Unlock()
	return rm
}

func (h *Hub) leave(name string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[name]
	if !ok {
		return
	}

	rm.mu.Lock()
	delete(rm.clients, c.id)
	empty := len(rm.clients) == 0
	rm.mu.Unlock()

	close(c.send)
	_ = c.conn.Close()

	if empty {
		delete(h.rooms, name)
	}
}

// broadcast forwards a position to every client in the room
// except the one it came from.
// Clients that can't keep up lose positions rather than block the room.
func (rm *room) broadcast(pos Position, from string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	for id, c := range rm.clients {
		if id == from {
			continue
		}
		select {
		case c.send <- pos:
		default:
		}
	}
}
