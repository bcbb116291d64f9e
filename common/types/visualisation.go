package types

import (
	"github.com/wybiral/air-hockey/common/utils/vector"
)

// VizMessage is one frame as pushed to the viz clients; positions are in
// table pixels, velocities in pixels per tick.
type VizMessage struct {
	SessionID string
	Tick      int
	Episode   int
	Mode      string
	Width     float64
	Height    float64
	Objects   []VizMessageObject
}

type VizMessageObject struct {
	Id       string
	Type     string
	Side     string `json:",omitempty"`
	Position vector.Vector2
	Velocity vector.Vector2
	Radius   float64         `json:",omitempty"`
	Size     *vector.Vector2 `json:",omitempty"`
	Color    string
}
