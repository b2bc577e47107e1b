package api

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketMessage is the envelope for every frame pushed to clients.
type WebSocketMessage struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// ProgressClient is one subscribed websocket connection. Frames are written
// by a single writer goroutine fed from the send channel.
type ProgressClient struct {
	conn *websocket.Conn
	send chan WebSocketMessage
}

func newProgressClient(conn *websocket.Conn) *ProgressClient {
	return &ProgressClient{
		conn: conn,
		send: make(chan WebSocketMessage, 32),
	}
}

// writePump drains the send channel onto the connection until the channel
// closes or a write fails.
func (c *ProgressClient) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteJSON(message); err != nil {
			return
		}
	}
}

// ConnectionManager tracks progress subscribers per generation job.
type ConnectionManager struct {
	connections map[string][]*ProgressClient
	mu          sync.RWMutex
}

// NewConnectionManager creates a new connection manager.
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string][]*ProgressClient),
	}
}

// AddConnection subscribes a client to a job's progress stream.
func (cm *ConnectionManager) AddConnection(jobID string, client *ProgressClient) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.connections[jobID] = append(cm.connections[jobID], client)
}

// RemoveConnection unsubscribes a client. Returns true when the client was
// still subscribed; the caller that gets true owns closing the send channel,
// so it is closed exactly once.
func (cm *ConnectionManager) RemoveConnection(jobID string, client *ProgressClient) bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	clients := cm.connections[jobID]
	for i, c := range clients {
		if c == client {
			cm.connections[jobID] = append(clients[:i], clients[i+1:]...)
			if len(cm.connections[jobID]) == 0 {
				delete(cm.connections, jobID)
			}
			return true
		}
	}
	return false
}

// BroadcastProgress pushes a pipeline stage transition to every subscriber of
// the job. Blocked connections are dropped instead of stalling the pipeline.
func (cm *ConnectionManager) BroadcastProgress(jobID, stage string, percent int, message string) {
	frame := WebSocketMessage{
		Type: "progress_update",
		Data: map[string]any{
			"jobId":     jobID,
			"stage":     stage,
			"percent":   percent,
			"message":   message,
			"timestamp": time.Now().Unix(),
		},
	}

	cm.mu.RLock()
	clients := make([]*ProgressClient, len(cm.connections[jobID]))
	copy(clients, cm.connections[jobID])
	cm.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- frame:
		default:
			if cm.RemoveConnection(jobID, client) {
				close(client.send)
			}
		}
	}
}

// CloseJob tells every subscriber the job is finished and releases them.
func (cm *ConnectionManager) CloseJob(jobID string) {
	cm.mu.Lock()
	clients := cm.connections[jobID]
	delete(cm.connections, jobID)
	cm.mu.Unlock()

	for _, client := range clients {
		close(client.send)
	}
}

// Stats reports subscriber counts for the diagnostics endpoint.
func (cm *ConnectionManager) Stats() map[string]any {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	total := 0
	for _, clients := range cm.connections {
		total += len(clients)
	}
	return map[string]any{
		"progress_connections": total,
		"active_jobs":          len(cm.connections),
	}
}
