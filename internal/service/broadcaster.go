package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToOrg(orgID string, msgType string, payload interface{})
	DisconnectOrg(orgID string)
}
