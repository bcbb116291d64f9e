package hockey

import "github.com/wybiral/air-hockey/game/policy"

func systemAgent(game *HockeyGame) {
	if game.network == nil {
		return
	}

	var scene *policy.Scene

	for _, entityresult := range game.paddlesView.Get() {
		paddleAspect := game.CastPaddle(entityresult.Components[game.paddleComponent])
		if paddleAspect.GetController() != ControllerAgent {
			continue
		}

		if scene == nil {
			s := game.Scene()
			scene = &s
		}

		observation := policy.Observe(paddleAspect.GetSide(), *scene, game.geometry)
		force, label := policy.Agent(
			paddleAspect.GetSide(),
			game.network,
			observation,
			game.conf.Control.Force,
			game.conf.Control.AgentThreshold,
		)

		paddleAspect.
			SetLabel(label).
			AddForce(force)
	}
}
