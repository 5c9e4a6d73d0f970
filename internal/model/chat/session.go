package chat

import "time"

// Session tracks one open connection's identity and metadata. It lives only
// in process memory: created when the connection opens, removed when it
// closes. Chat content is not part of this record; it is persisted per
// device, independent of the session's lifetime.
type Session struct {
	SessionID string    `json:"sessionId"`
	DeviceID  string    `json:"deviceId"`
	IPAddress string    `json:"ipAddress"`
	UserID    string    `json:"userId,omitempty"` // reserved for authenticated identity
	CreatedAt time.Time `json:"createdAt"`
}
