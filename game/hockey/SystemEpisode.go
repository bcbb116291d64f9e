package hockey

import (
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/policy"
)

// the puck must be this far past a side of the table before the episode resets
const outOfBoundsMargin = 30.0

type EpisodeState int

const (
	EpisodePlaying EpisodeState = iota
	EpisodeResetting
)

func (s EpisodeState) String() string {
	if s == EpisodeResetting {
		return "resetting"
	}

	return "playing"
}

func puckOutOfBounds(x float64, width float64) bool {
	return x < -outOfBoundsMargin || x > width+outOfBoundsMargin
}

func systemEpisode(game *HockeyGame) EpisodeState {
	if game.profile.reset == ResetNone {
		return EpisodePlaying
	}

	if !puckOutOfBounds(game.Puck().GetPosition().GetX(), game.geometry.Width) {
		return EpisodePlaying
	}

	resetEpisode(game, game.profile.reset)

	return EpisodeResetting
}

func resetEpisode(game *HockeyGame, kind ResetKind) {
	w, h := game.geometry.Width, game.geometry.Height
	puck := game.Puck()

	switch kind {
	case ResetSimple:
		puck.
			SetPosition(vector.MakeVector2(w/2, h/2)).
			SetVelocity(vector.MakeNullVector2())

	case ResetRandomized:
		game.Paddle(policy.SideA).
			SetPosition(vector.MakeVector2(game.rng.Float64()*w/2, game.rng.Float64()*h)).
			SetVelocity(vector.MakeNullVector2())

		game.Paddle(policy.SideB).
			SetPosition(vector.MakeVector2(w/2+game.rng.Float64()*w/2, game.rng.Float64()*h)).
			SetVelocity(vector.MakeNullVector2())

		puck.
			SetPosition(vector.MakeVector2(game.rng.Float64()*w, game.rng.Float64()*h)).
			SetVelocity(vector.MakeVector2(
				game.rng.Float64()*20-10,
				game.rng.Float64()*20-10,
			))

	default:
		return
	}

	game.episode++
	game.collisionListener.resetEpisode()
}
