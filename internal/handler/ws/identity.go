package ws

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Identity is the derived device/session pair for a new connection.
type Identity struct {
	DeviceID  string
	SessionID string
	IPAddress string
}

// assignIdentity derives identity from handshake metadata and never fails.
// The device id falls through the per-connection websocket key, then the
// remote address, then a timestamp, so reconnecting tabs with the same
// negotiated key keep a stable identity without logging in. The session id
// is a fresh uuid, unique per connection attempt.
func assignIdentity(r *http.Request) Identity {
	deviceID := r.Header.Get("Sec-WebSocket-Key")
	if deviceID == "" {
		deviceID = r.RemoteAddr
	}
	if deviceID == "" {
		deviceID = time.Now().UTC().Format(time.RFC3339Nano)
	}

	return Identity{
		DeviceID:  deviceID,
		SessionID: uuid.NewString(),
		IPAddress: r.RemoteAddr,
	}
}
