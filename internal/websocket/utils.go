package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

// Feed connections are mostly idle between roll calls, so the read deadline
// is generous; clients keep it alive with pings. Writes are small JSON
// events and should never take long.
const (
	writeDeadline   = 10 * time.Second
	readIdleTimeout = 5 * time.Minute
)

// WriteTyped sends one typed feed payload with a write deadline applied.
func WriteTyped(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteJSON(v)
}

// ReadJSON decodes the next client message, bounding how long a silent
// connection is kept open.
func ReadJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetReadDeadline(time.Now().Add(readIdleTimeout))
	return conn.ReadJSON(v)
}
