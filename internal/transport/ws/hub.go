package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard message types
const (
	MsgSystemRegistered     MessageType = "system_registered"
	MsgAssessmentClassified MessageType = "assessment_classified"
	MsgObligationCompleted  MessageType = "obligation_completed"
	MsgError                MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for org dashboards. An org can have
// any number of open dashboards; every broadcast reaches all of them.
type Hub struct {
	// Org -> open dashboard connections
	orgConns map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	OrgID    string
	MemberID string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	OrgID   string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		orgConns:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.orgConns[conn.OrgID] == nil {
				h.orgConns[conn.OrgID] = make(map[*Connection]bool)
			}
			h.orgConns[conn.OrgID][conn] = true
			log.Printf("Dashboard %s connected for org %s", conn.MemberID, conn.OrgID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.orgConns[conn.OrgID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Dashboard %s disconnected from org %s", conn.MemberID, conn.OrgID)
				}
				if len(conns) == 0 {
					delete(h.orgConns, conn.OrgID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.orgConns[msg.OrgID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToOrg sends a message to every open dashboard of an org
// (implements service.Broadcaster)
func (h *Hub) BroadcastToOrg(orgID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		OrgID: orgID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectOrg closes every dashboard connection of an org (implements
// service.Broadcaster)
func (h *Hub) DisconnectOrg(orgID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.orgConns[orgID]; ok {
		for conn := range conns {
			close(conn.Send)
		}
		delete(h.orgConns, orgID)
		log.Printf("Disconnected all dashboards for org %s", orgID)
	}
}
