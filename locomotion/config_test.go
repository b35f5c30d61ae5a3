package locomotion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative_move_speed", func(c *Config) { c.MoveSpeed = -1 }},
		{"zero_sprint_speed", func(c *Config) { c.SprintSpeed = 0 }},
		{"negative_transition_rate", func(c *Config) { c.SprintTransitionRate = -2 }},
		{"zero_turn_rate", func(c *Config) { c.TurnRate = 0 }},
		{"zero_gravity", func(c *Config) { c.Gravity = 0 }},
		{"negative_gravity", func(c *Config) { c.Gravity = -9.81 }},
		{"negative_jump_height", func(c *Config) { c.JumpHeight = -1 }},
		{"nan_jump_height", func(c *Config) { c.JumpHeight = math.NaN() }},
		{"inf_move_speed", func(c *Config) { c.MoveSpeed = math.Inf(1) }},
		{"negative_companion_distance", func(c *Config) { c.CompanionDistance = -1 }},
		{"cone_above_180", func(c *Config) { c.CompanionMaxAngleDeg = 181 }},
		{"cone_negative", func(c *Config) { c.CompanionMaxAngleDeg = -1 }},
		{"zero_companion_lerp", func(c *Config) { c.CompanionLerpRate = 0 }},
		{"dead_zone_one", func(c *Config) { c.DeadZone = 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			ctrl, err := NewController(cfg, Spawn{})
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Nil(t, ctrl)
		})
	}
}

func TestConfigAcceptsBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompanionDistance = 0
	cfg.CompanionMaxAngleDeg = 180
	require.NoError(t, cfg.Validate())

	cfg.CompanionMaxAngleDeg = 0
	require.NoError(t, cfg.Validate())
}
