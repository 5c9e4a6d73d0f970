package chat

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Frame kinds accepted from clients. Anything outside this set is rejected
// by DecodeFrame, not by a dispatch catch-all.
const (
	KindChat      = "chat"
	KindSubscribe = "subscribe"
)

// Frame kinds sent to clients.
const (
	KindSessionInit = "session_init"
	KindConnection  = "connection"
	KindHistory     = "history"
	KindSubscribed  = "subscribed"
)

var (
	ErrMalformedFrame = errors.New("malformed frame")
	ErrUnknownKind    = errors.New("unknown frame kind")
)

// Frame is one decoded inbound client frame. Exactly one of Chat/Subscribe
// is non-nil, matching Kind.
type Frame struct {
	Kind      string
	SessionID string
	Chat      *ChatFrame
	Subscribe *SubscribeFrame
}

// ChatFrame asks the server to echo a message back to the named session and
// append it to the sending device's history.
type ChatFrame struct {
	SessionID string `json:"sessionId"`
	Content   string `json:"content"`
}

// SubscribeFrame requests a channel-subscription acknowledgment.
type SubscribeFrame struct {
	SessionID string `json:"sessionId"`
	Channel   string `json:"channel"`
}

// DecodeFrame parses an inbound text frame into the closed frame set.
func DecodeFrame(raw []byte) (Frame, error) {
	var envelope struct {
		Type      string `json:"type"`
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	switch envelope.Type {
	case KindChat:
		var msg ChatFrame
		if err := json.Unmarshal(raw, &msg); err != nil {
			return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		return Frame{Kind: KindChat, SessionID: envelope.SessionID, Chat: &msg}, nil
	case KindSubscribe:
		var msg SubscribeFrame
		if err := json.Unmarshal(raw, &msg); err != nil {
			return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		return Frame{Kind: KindSubscribe, SessionID: envelope.SessionID, Subscribe: &msg}, nil
	default:
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownKind, envelope.Type)
	}
}

// SessionInit announces the assigned identity, sent once immediately after
// the connection opens.
type SessionInit struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	DeviceID  string `json:"deviceId"`
	IPAddress string `json:"ipAddress"`
}

// ConnectionHello is the human-readable welcome, sent once after SessionInit.
type ConnectionHello struct {
	Type     string `json:"type"`
	DeviceID string `json:"deviceId"`
	Message  string `json:"message"`
}

// HistoryFrame replays the device's stored transcript to a fresh connection.
type HistoryFrame struct {
	Type     string    `json:"type"`
	Messages []Message `json:"messages"`
}

// ChatEcho is the server's reflection of a chat frame, augmented with the
// resolved session id and a server-assigned timestamp.
type ChatEcho struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Subscribed acknowledges a subscribe request for the named channel.
type Subscribed struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
}
