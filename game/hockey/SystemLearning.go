package hockey

import "github.com/wybiral/air-hockey/game/policy"

// systemLearning records what the human did on paddle A this tick, seen from
// A, then runs one training step.
func systemLearning(game *HockeyGame) {
	qr := game.getEntity(game.paddles[policy.SideA].GetID(), game.paddleComponent)
	paddleAspect := game.CastPaddle(qr.Components[game.paddleComponent])

	if paddleAspect.GetController() == ControllerKeyboard {
		observation := policy.Observe(policy.SideA, game.Scene(), game.geometry)
		game.learner.Record(observation, paddleAspect.GetLabel())
	}

	game.learner.TrainStep()
}
