package hockey

func systemPhysics(game *HockeyGame, dt float64) {
	for _, entityresult := range game.paddlesView.Get() {
		paddleAspect := game.CastPaddle(entityresult.Components[game.paddleComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		physicalAspect.ApplyForce(paddleAspect.PopForce())
	}

	game.PhysicalWorld.Step(
		dt,
		game.conf.Physics.VelocityIterations,
		game.conf.Physics.PositionIterations,
	)
}
