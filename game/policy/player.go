package policy

import (
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/utils/vector"
)

type KeyReader interface {
	IsDown(code string) bool
}

// Player reads the bound keys and returns the movement force and the label
// recording which directions are held.
func Player(keys KeyReader, bindings config.KeyBindings, f0 float64) (vector.Vector2, Label) {
	var label Label

	for i, code := range [4]string{bindings.Up, bindings.Right, bindings.Down, bindings.Left} {
		if code != "" && keys.IsDown(code) {
			label[i] = 1
		}
	}

	return label.Force(f0), label
}
