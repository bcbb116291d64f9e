package types

import (
	"fmt"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// Watcher is one websocket client. The keys it holds are tracked so they can
// be released when it goes away; VizHockey guards them.
type Watcher struct {
	id      uuid.UUID
	conn    *websocket.Conn
	pressed map[string]bool
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:      uuid.NewV4(),
		conn:    conn,
		pressed: make(map[string]bool),
	}
}

func (w *Watcher) GetId() string {
	return w.id.String()
}

func (w *Watcher) GetConn() *websocket.Conn {
	return w.conn
}

func (w *Watcher) WriteFrame(frame []byte) error {
	return w.conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"frame\",\"data\":%s}", frame)))
}

// press reports whether code was not held yet.
func (w *Watcher) press(code string) bool {
	if w.pressed[code] {
		return false
	}

	w.pressed[code] = true
	return true
}

// release reports whether code was held.
func (w *Watcher) release(code string) bool {
	if !w.pressed[code] {
		return false
	}

	delete(w.pressed, code)
	return true
}

func (w *Watcher) heldKeys() []string {
	res := make([]string, 0, len(w.pressed))
	for code := range w.pressed {
		res = append(res, code)
	}
	return res
}
