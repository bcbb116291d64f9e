package hockey

import (
	"github.com/pkg/errors"
	"github.com/wybiral/air-hockey/common/config"
)

type ResetKind int

const (
	ResetNone ResetKind = iota
	ResetSimple
	ResetRandomized
)

// modeProfile describes which systems run in a given iteration of the game.
type modeProfile struct {
	controllers [2]Controller // indexed by policy.Side
	boundary    bool
	reset       ResetKind
	learning    bool
}

var modeProfiles = map[string]modeProfile{
	config.ModeStatic: {
		controllers: [2]Controller{ControllerNone, ControllerNone},
	},
	config.ModeKeyboard: {
		controllers: [2]Controller{ControllerKeyboard, ControllerNone},
		boundary:    true,
		reset:       ResetSimple,
	},
	config.ModeVersus: {
		controllers: [2]Controller{ControllerKeyboard, ControllerKeyboard},
		boundary:    true,
		reset:       ResetSimple,
	},
	config.ModeLearning: {
		controllers: [2]Controller{ControllerKeyboard, ControllerAgent},
		boundary:    true,
		reset:       ResetRandomized,
		learning:    true,
	},
}

func profileForMode(mode string) (modeProfile, error) {
	profile, ok := modeProfiles[mode]
	if !ok {
		return modeProfile{}, errors.Errorf("unknown mode %q", mode)
	}

	return profile, nil
}
