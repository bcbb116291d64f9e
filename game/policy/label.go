// Package policy maps input or observations to paddle forces.
//
// Everything here is a pure function of its arguments; the game package is
// responsible for applying the resulting forces to physical bodies.
package policy

import "github.com/wybiral/air-hockey/common/utils/vector"

// Component order of a Label.
const (
	Up = iota
	Right
	Down
	Left
)

// Label is a 4-way movement intent, each component 0 or 1.
type Label [4]float64

func (l Label) IsZero() bool {
	return l[Up] == 0 && l[Right] == 0 && l[Down] == 0 && l[Left] == 0
}

func (l Label) Slice() []float64 {
	return []float64{l[Up], l[Right], l[Down], l[Left]}
}

// Force composes the label into a force of magnitude f0 per active axis.
// Diagonals are not normalized; opposite intents cancel.
func (l Label) Force(f0 float64) vector.Vector2 {
	x, y := 0.0, 0.0

	if l[Up] != 0 {
		y -= f0
	}
	if l[Right] != 0 {
		x += f0
	}
	if l[Down] != 0 {
		y += f0
	}
	if l[Left] != 0 {
		x -= f0
	}

	return vector.MakeVector2(x, y)
}

// Mirrored swaps the horizontal intents.
func (l Label) Mirrored() Label {
	l[Right], l[Left] = l[Left], l[Right]
	return l
}
