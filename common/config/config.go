package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	ModeStatic   = "static"
	ModeKeyboard = "keyboard"
	ModeVersus   = "versus"
	ModeLearning = "learning"
)

type TableConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	WallThickness  float64 `toml:"wall_thickness"`
	GoalWallHeight float64 `toml:"goal_wall_height"`
}

type BodyConfig struct {
	Radius      float64 `toml:"radius"`
	Mass        float64 `toml:"mass"`
	FrictionAir float64 `toml:"friction_air"`
	Restitution float64 `toml:"restitution"`
}

type PhysicsConfig struct {
	PixelsPerMeter     float64 `toml:"pixels_per_meter"`
	ForceScale         float64 `toml:"force_scale"`
	VelocityIterations int     `toml:"velocity_iterations"`
	PositionIterations int     `toml:"position_iterations"`
}

type ControlConfig struct {
	Force          float64 `toml:"force"`
	BoundaryGain   float64 `toml:"boundary_gain"`
	AgentThreshold float64 `toml:"agent_threshold"`
}

type LearningConfig struct {
	Capacity   int     `toml:"capacity"`
	MinSamples int     `toml:"min_samples"`
	Batch      int     `toml:"batch"`
	Rate       float64 `toml:"rate"`
	Hidden     int     `toml:"hidden"`
}

type KeyBindings struct {
	Up    string `toml:"up"`
	Right string `toml:"right"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
}

type KeysConfig struct {
	A KeyBindings `toml:"a"`
	B KeyBindings `toml:"b"`
}

type ColorsConfig struct {
	Walls   string `toml:"walls"`
	Paddles string `toml:"paddles"`
	Puck    string `toml:"puck"`
}

type Config struct {
	Mode string `toml:"mode"`
	Tps  int    `toml:"tps"`
	Seed int64  `toml:"seed"`

	Table    TableConfig    `toml:"table"`
	Paddle   BodyConfig     `toml:"paddle"`
	Puck     BodyConfig     `toml:"puck"`
	Physics  PhysicsConfig  `toml:"physics"`
	Control  ControlConfig  `toml:"control"`
	Learning LearningConfig `toml:"learning"`
	Keys     KeysConfig     `toml:"keys"`
	Colors   ColorsConfig   `toml:"colors"`
}

func Default() Config {
	return Config{
		Mode: ModeLearning,
		Tps:  60,
		Seed: 0,

		Table: TableConfig{
			Width:          800,
			Height:         400,
			WallThickness:  10,
			GoalWallHeight: 110,
		},
		Paddle: BodyConfig{
			Radius:      40,
			Mass:        100,
			FrictionAir: 0.15,
			Restitution: 0.9,
		},
		Puck: BodyConfig{
			Radius:      20,
			Mass:        10,
			FrictionAir: 0.005,
			Restitution: 0.9,
		},
		Physics: PhysicsConfig{
			PixelsPerMeter:     100,
			ForceScale:         10000,
			VelocityIterations: 8, // default 8 in box2d testbed
			PositionIterations: 3, // default 3 in box2d testbed
		},
		Control: ControlConfig{
			Force:          0.5,
			BoundaryGain:   0.05,
			AgentThreshold: 0.9,
		},
		Learning: LearningConfig{
			Capacity:   1000000,
			MinSamples: 100,
			Batch:      100,
			Rate:       0.1,
			Hidden:     30,
		},
		Keys: KeysConfig{
			A: KeyBindings{Up: "KeyW", Right: "KeyD", Down: "KeyS", Left: "KeyA"},
			B: KeyBindings{Up: "ArrowUp", Right: "ArrowRight", Down: "ArrowDown", Left: "ArrowLeft"},
		},
		Colors: ColorsConfig{
			Walls:   "#888888",
			Paddles: "#3355ff",
			Puck:    "#ff3333",
		},
	}
}

// Load reads a TOML file on top of the defaults; keys absent from the file
// keep their default value.
func Load(filename string) (Config, error) {
	conf := Default()

	if _, err := toml.DecodeFile(filename, &conf); err != nil {
		return conf, errors.Wrapf(err, "Could not decode configuration (%s)", filename)
	}

	if err := conf.Validate(); err != nil {
		return conf, errors.Wrapf(err, "Invalid configuration (%s)", filename)
	}

	return conf, nil
}

func LoadOrDefault(filename string) (Config, error) {
	if filename == "" {
		return Default(), nil
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), errors.Errorf("Configuration file does not exist (%s)", filename)
	}

	return Load(filename)
}

func (conf Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(conf)
}

func (conf Config) Validate() error {
	switch conf.Mode {
	case ModeStatic, ModeKeyboard, ModeVersus, ModeLearning:
	default:
		return errors.Errorf("unknown mode %q", conf.Mode)
	}

	if err := assertPositiveInt(conf.Tps, "tps"); err != nil {
		return err
	}

	checks := []struct {
		value float64
		name  string
	}{
		{conf.Table.Width, "table.width"},
		{conf.Table.Height, "table.height"},
		{conf.Paddle.Radius, "paddle.radius"},
		{conf.Paddle.Mass, "paddle.mass"},
		{conf.Puck.Radius, "puck.radius"},
		{conf.Puck.Mass, "puck.mass"},
		{conf.Physics.PixelsPerMeter, "physics.pixels_per_meter"},
		{conf.Physics.ForceScale, "physics.force_scale"},
		{conf.Learning.Rate, "learning.rate"},
	}

	for _, check := range checks {
		if err := assertPositive(check.value, check.name); err != nil {
			return err
		}
	}

	if conf.Paddle.FrictionAir < 0 || conf.Paddle.FrictionAir >= 1 {
		return errors.Errorf("paddle.friction_air must be in [0, 1), got %v", conf.Paddle.FrictionAir)
	}

	if conf.Puck.FrictionAir < 0 || conf.Puck.FrictionAir >= 1 {
		return errors.Errorf("puck.friction_air must be in [0, 1), got %v", conf.Puck.FrictionAir)
	}

	if 2*conf.Table.GoalWallHeight+2*conf.Table.WallThickness >= conf.Table.Height {
		return errors.New("table.goal_wall_height leaves no goal mouth")
	}

	if 4*conf.Paddle.Radius > conf.Table.Width {
		return errors.New("paddle.radius does not fit twice in each half of the table")
	}

	intChecks := []struct {
		value int
		name  string
	}{
		{conf.Learning.Capacity, "learning.capacity"},
		{conf.Learning.Batch, "learning.batch"},
		{conf.Learning.Hidden, "learning.hidden"},
		{conf.Physics.VelocityIterations, "physics.velocity_iterations"},
		{conf.Physics.PositionIterations, "physics.position_iterations"},
	}

	for _, check := range intChecks {
		if err := assertPositiveInt(check.value, check.name); err != nil {
			return err
		}
	}

	if conf.Learning.MinSamples < 0 {
		return errors.Errorf("learning.min_samples must not be negative, got %d", conf.Learning.MinSamples)
	}

	return nil
}

func assertPositive(value float64, name string) error {
	if value <= 0 {
		return errors.Errorf("%s must be provided and positive, got %v", name, value)
	}

	return nil
}

func assertPositiveInt(value int, name string) error {
	if value <= 0 {
		return errors.Errorf("%s must be provided and positive, got %d", name, value)
	}

	return nil
}
