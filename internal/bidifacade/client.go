package bidifacade

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// message is a raw BiDi command or response/event envelope.
type message struct {
	ID     int             `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Type   string          `json:"type,omitempty"` // "success" | "error" | "event"
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

// client correlates BiDi command ids with responses and fans out events to
// a single subscriber, the same shape as the teacher's Router
// sendInternalCommand/routeBrowserToClient pairing.
type client struct {
	conn     *connection
	nextID   atomic.Int64
	mu       sync.Mutex
	pending  map[int]chan message
	onEvent  func(method string, params json.RawMessage)
	closed   chan struct{}
}

func newClient(conn *connection) *client {
	c := &client{
		conn:    conn,
		pending: make(map[int]chan message),
		closed:  make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *client) onEventFunc(fn func(method string, params json.RawMessage)) {
	c.mu.Lock()
	c.onEvent = fn
	c.mu.Unlock()
}

func (c *client) readLoop() {
	for {
		raw, err := c.conn.receive()
		if err != nil {
			close(c.closed)
			return
		}
		var msg message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			continue
		}
		if msg.ID != 0 {
			c.mu.Lock()
			ch, ok := c.pending[msg.ID]
			c.mu.Unlock()
			if ok {
				ch <- msg
			}
			continue
		}
		if msg.Method != "" {
			c.mu.Lock()
			fn := c.onEvent
			c.mu.Unlock()
			if fn != nil {
				fn(msg.Method, msg.Params)
			}
		}
	}
}

// sendCommand sends a BiDi command and blocks for its response.
func (c *client) sendCommand(method string, params map[string]interface{}) (json.RawMessage, error) {
	return c.sendCommandTimeout(method, params, 60*time.Second)
}

func (c *client) sendCommandTimeout(method string, params map[string]interface{}, timeout time.Duration) (json.RawMessage, error) {
	id := int(c.nextID.Add(1))
	ch := make(chan message, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	req := map[string]interface{}{"id": id, "method": method, "params": params}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if err := c.conn.send(string(data)); err != nil {
		return nil, err
	}

	select {
	case resp := <-ch:
		if resp.Type == "error" {
			return nil, fmt.Errorf("%s: %s", resp.Error, resp.Message)
		}
		return resp.Result, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("timeout waiting for response to %s", method)
	case <-c.closed:
		return nil, fmt.Errorf("browser connection closed")
	}
}

func (c *client) close() error {
	return c.conn.close()
}
