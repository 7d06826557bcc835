package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

const (
	writeWait        = 10 * time.Second
	readWait         = 90 * time.Second
	handshakeTimeout = 10 * time.Second
)

// Channel is a lazily connected client for the legacy RPC protocol. The
// websocket is dialed on the first Call and kept open until Close; in-flight
// calls are tracked by message id, so results may arrive in any order. After
// a connection loss the next Call dials anew.
type Channel struct {
	url    string
	logger *logger.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	pending map[string]chan callResult
	closed  bool

	writeMu sync.Mutex
}

type callResult struct {
	result gjson.Result
	err    error
}

// NewChannel constructs a Channel that will dial wsURL on first use.
func NewChannel(wsURL string, log *logger.Logger) *Channel {
	return &Channel{
		url:     wsURL,
		logger:  log,
		pending: make(map[string]chan callResult),
	}
}

// Call implements [MethodCaller].
func (c *Channel) Call(ctx context.Context, method string, params ...any) (gjson.Result, error) {
	call := newMethodCall(method, params)

	c.mu.Lock()
	if err := c.ensureConnLocked(ctx); err != nil {
		c.mu.Unlock()
		return gjson.Result{}, err
	}
	resultCh := make(chan callResult, 1)
	c.pending[call.ID] = resultCh
	conn := c.conn
	c.mu.Unlock()

	if err := c.writeJSON(conn, call); err != nil {
		c.forget(call.ID)
		return gjson.Result{}, fmt.Errorf("send method %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		c.forget(call.ID)
		return gjson.Result{}, ctx.Err()
	case res := <-resultCh:
		if res.err != nil {
			return gjson.Result{}, fmt.Errorf("method %s: %w", method, res.err)
		}
		return res.result, nil
	}
}

// Close tears down the connection and makes the channel permanently unusable.
// Safe to call multiple times and on a channel that never connected.
func (c *Channel) Close() {
	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.mu.Unlock()

	if conn != nil {
		deadline := time.Now().Add(writeWait)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = conn.Close()
	}
}

// ensureConnLocked dials and performs the protocol handshake if no connection
// is up. Callers must hold c.mu.
func (c *Channel) ensureConnLocked(ctx context.Context) error {
	if c.closed {
		return ErrChannelClosed
	}
	if c.conn != nil {
		return nil
	}

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}

	if err = c.writeJSON(conn, newConnectMessage()); err != nil {
		_ = conn.Close()
		return fmt.Errorf("send connect: %w", err)
	}

	// The server may interleave other traffic before acknowledging the
	// session.
	for {
		_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()
			return fmt.Errorf("%w: %w", ErrHandshakeFailed, err)
		}

		switch gjson.GetBytes(payload, "msg").String() {
		case msgConnected:
			c.conn = conn
			go c.readLoop(conn)
			return nil
		case msgFailed:
			_ = conn.Close()
			return fmt.Errorf("%w: server rejected protocol version %s", ErrHandshakeFailed, protocolVersion)
		}
	}
}

func (c *Channel) readLoop(conn *websocket.Conn) {
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			c.teardown(conn, err)
			return
		}

		switch gjson.GetBytes(payload, "msg").String() {
		case msgPing:
			pong := pongMessage{Msg: msgPong, ID: gjson.GetBytes(payload, "id").String()}
			if err = c.writeJSON(conn, pong); err != nil {
				c.teardown(conn, err)
				return
			}
		case msgResult:
			c.dispatchResult(payload)
		default:
			// changed/added notifications are not consumed by this client
		}
	}
}

func (c *Channel) dispatchResult(payload []byte) {
	id := gjson.GetBytes(payload, "id").String()

	c.mu.Lock()
	resultCh, ok := c.pending[id]
	delete(c.pending, id)
	c.mu.Unlock()

	if !ok {
		c.logger.Warn().Str("func", "Channel.dispatchResult").Str("id", id).Msg("result for unknown call id")
		return
	}

	if errField := gjson.GetBytes(payload, "error"); errField.Exists() {
		reason := errField.Get("message").String()
		if reason == "" {
			reason = errField.Raw
		}
		resultCh <- callResult{err: fmt.Errorf("%w: %s", ErrMethodFailed, reason)}
		return
	}

	resultCh <- callResult{result: gjson.GetBytes(payload, "result")}
}

// teardown closes the connection and fails every in-flight call. The channel
// itself stays usable: the next Call dials a fresh connection.
func (c *Channel) teardown(conn *websocket.Conn, cause error) {
	_ = conn.Close()

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	stale := c.pending
	c.pending = make(map[string]chan callResult)
	closed := c.closed
	c.mu.Unlock()

	for _, resultCh := range stale {
		resultCh <- callResult{err: fmt.Errorf("%w: %w", ErrChannelClosed, cause)}
	}

	if !closed {
		c.logger.Warn().Str("func", "Channel.teardown").Err(cause).Msg("realtime connection lost")
	}
}

func (c *Channel) forget(callID string) {
	c.mu.Lock()
	delete(c.pending, callID)
	c.mu.Unlock()
}

func (c *Channel) writeJSON(conn *websocket.Conn, v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}
