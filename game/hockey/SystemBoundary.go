package hockey

import "github.com/wybiral/air-hockey/game/policy"

func systemBoundary(game *HockeyGame) {
	for _, entityresult := range game.paddlesView.Get() {
		paddleAspect := game.CastPaddle(entityresult.Components[game.paddleComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		paddleAspect.AddForce(policy.Boundary(
			paddleAspect.GetSide(),
			physicalAspect.GetPosition(),
			game.geometry,
			game.conf.Control.BoundaryGain,
		))
	}
}
