package utils

import (
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"slay/logging"
	"slay/world"
)

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Resolution ResolutionConfig
	Title      string
}

type MathConfig struct {
	Float64EqualityThreshold float64
}

type Config struct {
	UI    UIConfig
	World world.Config
	Log   logging.Config
	Math  MathConfig
}

// DefaultConfig is what ReadTOML decodes on top of, so absent keys keep these values.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Resolution: ResolutionConfig{X: 1920, Y: 1080},
			Title:      "Trade or Slay",
		},
		World: world.DefaultConfig(),
		Log:   logging.DefaultConfig(),
		Math: MathConfig{
			Float64EqualityThreshold: 1e-9,
		},
	}
}

func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return ParseTOML(file)
}

func ParseTOML(contents []byte) (*Config, error) {
	config := DefaultConfig()
	if err := toml.Unmarshal(contents, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Arena derives the wrap period from the window resolution.
func (c *Config) Arena() world.Arena {
	return world.NewArena(
		float64(c.UI.Resolution.X)*c.World.ScreenMultiplier,
		float64(c.UI.Resolution.Y)*c.World.ScreenMultiplier,
	)
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
