// Package bidifacade is the one concrete Browser Facade Port adapter: it
// launches (or connects to) a browser and drives it over WebDriver BiDi
// carried on a WebSocket, the same transport and keepalive discipline the
// teacher's internal/bidi package used for its proxy.
package bidifacade

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// maxMessageSize caps a single BiDi message (screenshots/PDFs can be large).
const maxMessageSize = 32 * 1024 * 1024

// readDeadline must exceed pingInterval so pongs have time to arrive.
const readDeadline = 120 * time.Second

const pingInterval = 30 * time.Second

// connection is a raw WebSocket transport for BiDi messages.
type connection struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func connect(url string) (*connection, error) {
	return connectWithHeaders(url, nil)
}

func connectWithHeaders(url string, headers http.Header) (*connection, error) {
	dialer := websocket.Dialer{
		ReadBufferSize:   maxMessageSize,
		WriteBufferSize:  maxMessageSize,
		HandshakeTimeout: 30 * time.Second,
	}
	ws, _, err := dialer.Dial(url, headers)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}
	ws.SetReadLimit(maxMessageSize)
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	c := &connection{conn: ws, done: make(chan struct{})}
	go c.pingLoop()
	return c, nil
}

// pingLoop keeps the BiDi connection alive and detects a browser that has
// gone away (crashed, killed) faster than a per-command timeout would: a
// failed ping force-closes the connection so every command already
// blocked in sendCommandTimeout wakes up immediately on c.closed instead
// of waiting out its own timeout one by one.
func (c *connection) pingLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				return
			}
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
			c.mu.Unlock()
			if err != nil {
				c.close()
				return
			}
		}
	}
}

func (c *connection) send(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("connection closed")
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (c *connection) receive() (string, error) {
	if c.closed {
		return "", fmt.Errorf("connection closed")
	}
	c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	msgType, msg, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	if msgType != websocket.TextMessage {
		return "", fmt.Errorf("expected text message, got type %d", msgType)
	}
	return string(msg), nil
}

func (c *connection) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
