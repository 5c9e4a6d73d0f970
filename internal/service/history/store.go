package history

import (
	"context"
	"errors"

	"github.com/harborchat/backend/internal/model/chat"
)

var ErrDeviceRequired = errors.New("device id is required")

// Store is the persistence collaborator consumed by the relay: append one
// turn for a device, fetch a device's transcript in submission order.
// Append failures are logged by callers, never surfaced to clients.
type Store interface {
	Append(ctx context.Context, deviceID, content string) (chat.Message, error)
	History(ctx context.Context, deviceID string) ([]chat.Message, error)
}
