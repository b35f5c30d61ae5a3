package settings

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/servant/keybind"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("settings: invalid settings")

// Settings are the player's preferences. They are read once at startup and
// handed to the systems that need them; nothing writes them back.
type Settings struct {
	MouseSensitivity float64
	InvertY          bool
	FootstepVolume   float64
	Bindings         keybind.Bindings
}

type file struct {
	MouseSensitivity *float64         `yaml:"mouse_sensitivity"`
	InvertY          bool              `yaml:"invert_y"`
	FootstepVolume   *float64          `yaml:"footstep_volume"`
	Bindings         map[string]string `yaml:"bindings"`
}

func Default() Settings {
	return Settings{
		MouseSensitivity: 0.15,
		FootstepVolume:   0.6,
		Bindings:         keybind.Default(),
	}
}

// Parse decodes yaml settings. Missing fields keep their defaults.
func Parse(data []byte) (Settings, error) {
	var raw file
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("settings: unmarshal: %w", err)
	}

	s := Default()
	if raw.MouseSensitivity != nil {
		s.MouseSensitivity = *raw.MouseSensitivity
	}
	if raw.FootstepVolume != nil {
		s.FootstepVolume = *raw.FootstepVolume
	}
	s.InvertY = raw.InvertY

	bindings, err := keybind.Parse(raw.Bindings)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: bindings: %w", err)
	}
	s.Bindings = bindings

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads settings through load, falling back to defaults when it fails.
// A file that exists but does not parse is an error.
func Load(load func(string) ([]byte, error), name string) (Settings, error) {
	if load == nil {
		return Default(), nil
	}
	data, err := load(name)
	if err != nil {
		return Default(), nil
	}
	return Parse(data)
}

func (s Settings) Validate() error {
	if math.IsNaN(s.MouseSensitivity) || math.IsInf(s.MouseSensitivity, 0) || s.MouseSensitivity <= 0 {
		return fmt.Errorf("%w: mouse_sensitivity must be positive, got %v", ErrInvalidSettings, s.MouseSensitivity)
	}
	if math.IsNaN(s.FootstepVolume) || s.FootstepVolume < 0 || s.FootstepVolume > 1 {
		return fmt.Errorf("%w: footstep_volume must be in [0, 1], got %v", ErrInvalidSettings, s.FootstepVolume)
	}
	return nil
}

// LookSign is the vertical look multiplier.
func (s Settings) LookSign() float64 {
	if s.InvertY {
		return -1
	}
	return 1
}
