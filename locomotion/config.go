package locomotion

import (
	"errors"
	"fmt"

	"github.com/milk9111/servant/common"
)

// DefaultDeadZone is the axis magnitude below which input counts as idle.
const DefaultDeadZone = 0.01

var ErrInvalidConfig = errors.New("locomotion: invalid config")

// Config is the immutable tuning of a Controller.
type Config struct {
	MoveSpeed            float64 `yaml:"move_speed" cbor:"move_speed"`
	SprintSpeed          float64 `yaml:"sprint_speed" cbor:"sprint_speed"`
	SprintTransitionRate float64 `yaml:"sprint_transition_rate" cbor:"sprint_transition_rate"`
	TurnRate             float64 `yaml:"turn_rate" cbor:"turn_rate"`
	Gravity              float64 `yaml:"gravity" cbor:"gravity"`
	JumpHeight           float64 `yaml:"jump_height" cbor:"jump_height"`

	// CompanionDistance of zero disables companion tracking.
	CompanionDistance    float64 `yaml:"companion_distance" cbor:"companion_distance"`
	CompanionMaxAngleDeg float64 `yaml:"companion_max_angle_deg" cbor:"companion_max_angle_deg"`
	CompanionLerpRate    float64 `yaml:"companion_lerp_rate" cbor:"companion_lerp_rate"`

	// AlwaysTurn rotates the body toward the camera heading even without input.
	AlwaysTurn bool    `yaml:"always_turn" cbor:"always_turn"`
	DeadZone   float64 `yaml:"dead_zone" cbor:"dead_zone"`
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:            5,
		SprintSpeed:          10,
		SprintTransitionRate: 2,
		TurnRate:             2,
		Gravity:              9.81,
		JumpHeight:           2,
		CompanionDistance:    100,
		CompanionMaxAngleDeg: 20,
		CompanionLerpRate:    2,
		DeadZone:             DefaultDeadZone,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"move_speed", c.MoveSpeed},
		{"sprint_speed", c.SprintSpeed},
		{"sprint_transition_rate", c.SprintTransitionRate},
		{"turn_rate", c.TurnRate},
		{"gravity", c.Gravity},
		{"jump_height", c.JumpHeight},
		{"companion_lerp_rate", c.CompanionLerpRate},
	}
	for _, f := range positive {
		if !common.Finite(f.value) || f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	if !common.Finite(c.CompanionDistance) || c.CompanionDistance < 0 {
		return fmt.Errorf("%w: companion_distance must be non-negative and finite, got %v", ErrInvalidConfig, c.CompanionDistance)
	}
	if !common.Finite(c.CompanionMaxAngleDeg) || c.CompanionMaxAngleDeg < 0 || c.CompanionMaxAngleDeg > 180 {
		return fmt.Errorf("%w: companion_max_angle_deg must be within [0,180], got %v", ErrInvalidConfig, c.CompanionMaxAngleDeg)
	}
	if !common.Finite(c.DeadZone) || c.DeadZone < 0 || c.DeadZone >= 1 {
		return fmt.Errorf("%w: dead_zone must be within [0,1), got %v", ErrInvalidConfig, c.DeadZone)
	}
	return nil
}

func (c Config) deadZone() float64 {
	if c.DeadZone == 0 {
		return DefaultDeadZone
	}
	return c.DeadZone
}

func (c Config) topSpeed() float64 {
	if c.SprintSpeed > c.MoveSpeed {
		return c.SprintSpeed
	}
	return c.MoveSpeed
}
