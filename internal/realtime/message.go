package realtime

import (
	"time"

	"github.com/google/uuid"
)

// Server method names of the legacy RPC protocol.
const (
	MethodGetSubscriptions = "subscriptions/get"
	MethodGetRooms         = "rooms/get"
)

// Message kinds of the legacy wire protocol.
const (
	msgConnect   = "connect"
	msgConnected = "connected"
	msgFailed    = "failed"
	msgPing      = "ping"
	msgPong      = "pong"
	msgMethod    = "method"
	msgResult    = "result"
)

const protocolVersion = "1"

type connectMessage struct {
	Msg     string   `json:"msg"`
	Version string   `json:"version"`
	Support []string `json:"support"`
}

func newConnectMessage() connectMessage {
	return connectMessage{
		Msg:     msgConnect,
		Version: protocolVersion,
		Support: []string{protocolVersion},
	}
}

type methodCall struct {
	Msg    string `json:"msg"`
	Method string `json:"method"`
	ID     string `json:"id"`
	Params []any  `json:"params"`
}

// newMethodCall assigns a fresh call id. Params marshal as an empty array,
// never null: legacy servers reject calls without a params field.
func newMethodCall(method string, params []any) methodCall {
	if params == nil {
		params = []any{}
	}

	return methodCall{
		Msg:    msgMethod,
		Method: method,
		ID:     uuid.NewString(),
		Params: params,
	}
}

type pongMessage struct {
	Msg string `json:"msg"`
	ID  string `json:"id,omitempty"`
}

// DateParam is the {"$date": millis} timestamp argument of legacy method
// calls.
type DateParam struct {
	Date int64 `json:"$date"`
}

// NewDateParam converts t to the millisecond form legacy servers expect.
func NewDateParam(t time.Time) DateParam {
	return DateParam{Date: t.UnixMilli()}
}
