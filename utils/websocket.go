// utils/websocket.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"collabspace/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 64
)

// Client is one websocket connection watching a project board.
type Client struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Conn         *websocket.Conn
	Send         chan []byte
	lastActivity atomic.Int64
}

func (c *Client) touch() {
	c.lastActivity.Store(time.Now().UnixNano())
}

func (c *Client) idleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, c.lastActivity.Load()))
}

type roomMessage struct {
	projectID uuid.UUID
	payload   []byte
}

// Manager fans task events out to the clients of each project room. Room
// membership is only changed from the Run goroutine.
type Manager struct {
	rooms      map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomMessage
	done       chan struct{}
	mutex      sync.RWMutex

	upgrader            websocket.Upgrader
	logger              *log.Logger
	maxInactivity       time.Duration
	healthCheckInterval time.Duration
}

// NewManager creates a manager. allowedOrigins may contain "*".
func NewManager(logger *log.Logger, allowedOrigins []string) *Manager {
	m := &Manager{
		rooms:               make(map[uuid.UUID]map[*Client]bool),
		register:            make(chan *Client),
		unregister:          make(chan *Client),
		broadcast:           make(chan roomMessage, 256),
		done:                make(chan struct{}),
		logger:              logger,
		maxInactivity:       5 * time.Minute,
		healthCheckInterval: time.Minute,
	}
	m.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(allowedOrigins),
		Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
			logger.Printf("WebSocket upgrade error: %v, status: %d", reason, status)
			http.Error(w, http.StatusText(status), status)
		},
	}
	return m
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(r *http.Request) bool { return true }
		}
		set[origin] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.healthCheckInterval)
	defer ticker.Stop()
	defer close(m.done)

	for {
		select {
		case <-ctx.Done():
			m.mutex.Lock()
			for _, room := range m.rooms {
				for client := range room {
					m.removeLocked(client)
				}
			}
			m.mutex.Unlock()
			return

		case client := <-m.register:
			m.mutex.Lock()
			room, ok := m.rooms[client.ProjectID]
			if !ok {
				room = make(map[*Client]bool)
				m.rooms[client.ProjectID] = room
			}
			room[client] = true
			m.mutex.Unlock()

		case client := <-m.unregister:
			m.mutex.Lock()
			m.removeLocked(client)
			m.mutex.Unlock()

		case msg := <-m.broadcast:
			m.mutex.Lock()
			for client := range m.rooms[msg.projectID] {
				select {
				case client.Send <- msg.payload:
				default:
					m.logger.Printf("Dropping client %s in project %s (send buffer full)", client.ID, client.ProjectID)
					m.removeLocked(client)
				}
			}
			m.mutex.Unlock()

		case <-ticker.C:
			m.cleanupInactiveConnections()
		}
	}
}

// removeLocked drops the client from its room and closes its send channel,
// which ends its write pump. Callers hold m.mutex.
func (m *Manager) removeLocked(client *Client) {
	room, ok := m.rooms[client.ProjectID]
	if !ok || !room[client] {
		return
	}
	delete(room, client)
	close(client.Send)
	if len(room) == 0 {
		delete(m.rooms, client.ProjectID)
	}
}

func (m *Manager) cleanupInactiveConnections() {
	now := time.Now()
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, room := range m.rooms {
		for client := range room {
			if client.idleFor(now) > m.maxInactivity {
				m.logger.Printf("Closing inactive client %s in project %s", client.ID, client.ProjectID)
				m.removeLocked(client)
			}
		}
	}
}

// Publish queues the event for every client watching event.ProjectID. It
// never blocks a request: a full queue drops the event.
func (m *Manager) Publish(event models.TaskEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		m.logger.Printf("Failed to encode %s event: %v", event.Type, err)
		return
	}

	select {
	case <-m.done:
		return
	default:
	}

	select {
	case m.broadcast <- roomMessage{projectID: event.ProjectID, payload: payload}:
	default:
		m.logger.Printf("Dropping %s event for project %s (broadcast queue full)", event.Type, event.ProjectID)
	}
}

// ClientCount reports how many clients watch the project.
func (m *Manager) ClientCount(projectID uuid.UUID) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms[projectID])
}

// ServeProject upgrades the request and joins the connection to the
// project's room. The caller has already checked that the project exists.
func (m *Manager) ServeProject(c *gin.Context, projectID uuid.UUID) {
	conn, err := m.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the error response
		return
	}

	client := &Client{
		ID:        uuid.New(),
		ProjectID: projectID,
		Conn:      conn,
		Send:      make(chan []byte, sendBufferSize),
	}
	client.touch()

	select {
	case m.register <- client:
	case <-m.done:
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	m.logger.Printf("WebSocket client %s joined project %s", client.ID, projectID)
	go client.writePump()
	go client.readPump(m)
}

// writePump pumps messages from the manager to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only keeps the connection alive; clients have nothing to say.
func (c *Client) readPump(m *Manager) {
	defer func() {
		select {
		case m.unregister <- c:
		case <-m.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.touch()
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				m.logger.Printf("WebSocket read error for client %s in project %s: %v", c.ID, c.ProjectID, err)
			}
			return
		}
		c.touch()
	}
}
