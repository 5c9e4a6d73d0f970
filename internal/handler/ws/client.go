package ws

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var errClientClosed = errors.New("client closed")

// Client owns one live websocket. All writes serialize through Send, and
// Send refuses writes once the connection is closed, so a handler resuming
// after an asynchronous history fetch cannot write to a dead transport.
// Reads are not guarded: the connection's read loop is its only reader.
type Client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// Send writes v as a JSON text frame.
func (c *Client) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClientClosed
	}
	return c.conn.WriteJSON(v)
}

// Open reports whether the transport still accepts writes.
func (c *Client) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// closePolicy performs the application-level close used when a frame fails
// session validation: close frame with a policy-violation code and a
// human-readable reason, then the transport.
func (c *Client) closePolicy(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	if err := c.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		log.Printf("[ws] write close failed: %v", err)
	}

	c.closed = true
	_ = c.conn.Close()
}

// close tears the transport down without a close frame. Safe to call more
// than once.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	_ = c.conn.Close()
}

func (c *Client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClientClosed
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}
