package hockey

import (
	"github.com/wybiral/air-hockey/common/input"
	"github.com/wybiral/air-hockey/game/policy"
)

func systemPlayer(game *HockeyGame, keys input.Snapshot) {
	for _, entityresult := range game.paddlesView.Get() {
		paddleAspect := game.CastPaddle(entityresult.Components[game.paddleComponent])
		if paddleAspect.GetController() != ControllerKeyboard {
			continue
		}

		force, label := policy.Player(keys, paddleAspect.GetBindings(), game.conf.Control.Force)
		paddleAspect.
			SetLabel(label).
			AddForce(force)
	}
}
