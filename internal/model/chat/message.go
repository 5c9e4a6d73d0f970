package chat

import "time"

// Message is one persisted chat turn, keyed by the submitting device so a
// reconnecting client gets its transcript back regardless of session churn.
type Message struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"deviceId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
