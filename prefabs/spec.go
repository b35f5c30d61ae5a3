package prefabs

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/servant/locomotion"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile    = "player.yaml"
	CameraFile    = "camera.yaml"
	CompanionFile = "companion.yaml"
	WorldFile     = "world.yaml"
	SettingsFile  = "settings.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := LoadSpecInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// LoadSpecInto decodes filename over spec, so fields absent from the file
// keep whatever spec already held.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// PointSpec is a point on the ground plane.
type PointSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type SpawnSpec struct {
	Position Vec3Spec `yaml:"position"`
	// Heading is the initial yaw in degrees; 0 faces +Z, 90 faces +X.
	Heading float64 `yaml:"heading"`
}

// Facing returns the spawn heading as a rotation about the up axis.
func (s SpawnSpec) Facing() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(s.Heading), locomotion.Up)
}

type BodySpec struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	// StepHeight is how far below the feet a surface may be and still catch them.
	StepHeight float64 `yaml:"step_height"`
}

type FootstepsSpec struct {
	Clips  int     `yaml:"clips"`
	Volume float64 `yaml:"volume"`
}

type AnimationSpec struct {
	Script string `yaml:"script"`
}

type PlayerSpec struct {
	Name       string            `yaml:"name"`
	Locomotion locomotion.Config `yaml:"locomotion"`
	Spawn      SpawnSpec         `yaml:"spawn"`
	Body       BodySpec          `yaml:"body"`
	Footsteps  FootstepsSpec     `yaml:"footsteps"`
	Animation  AnimationSpec     `yaml:"animation"`
}

// LoadPlayerSpec reads player.yaml over the default tuning and validates it.
func LoadPlayerSpec() (PlayerSpec, error) {
	spec := PlayerSpec{
		Name:       "player",
		Locomotion: locomotion.DefaultConfig(),
		Body:       BodySpec{Radius: 0.5, Mass: 1, StepHeight: 0.3},
	}
	if err := LoadSpecInto(PlayerFile, &spec); err != nil {
		return PlayerSpec{}, err
	}
	if err := spec.Locomotion.Validate(); err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	if spec.Body.Radius <= 0 || spec.Body.Mass <= 0 || spec.Body.StepHeight < 0 {
		return PlayerSpec{}, fmt.Errorf("%w: %s body needs positive radius and mass", ErrInvalidSpec, PlayerFile)
	}
	return spec, nil
}

type CameraSpec struct {
	Name     string  `yaml:"name"`
	Distance float64 `yaml:"distance"`
	Height   float64 `yaml:"height"`
	Yaw      float64 `yaml:"yaw"`
	Pitch    float64 `yaml:"pitch"`
	MinPitch float64 `yaml:"min_pitch"`
	MaxPitch float64 `yaml:"max_pitch"`
}

func LoadCameraSpec() (CameraSpec, error) {
	spec := CameraSpec{Name: "camera", Distance: 6, Height: 1.5, Pitch: 15, MinPitch: -30, MaxPitch: 70}
	if err := LoadSpecInto(CameraFile, &spec); err != nil {
		return CameraSpec{}, err
	}
	if spec.Distance <= 0 || spec.MinPitch > spec.MaxPitch || spec.MinPitch < -89 || spec.MaxPitch > 89 {
		return CameraSpec{}, fmt.Errorf("%w: %s needs positive distance and pitch limits within [-89, 89]", ErrInvalidSpec, CameraFile)
	}
	return spec, nil
}

type CompanionSpec struct {
	Name        string  `yaml:"name"`
	Radius      float64 `yaml:"radius"`
	HoverHeight float64 `yaml:"hover_height"`
	BobSpeed    float64 `yaml:"bob_speed"`
	BobHeight   float64 `yaml:"bob_height"`
	Color       string  `yaml:"color"`
}

func LoadCompanionSpec() (CompanionSpec, error) {
	spec := CompanionSpec{Name: "companion", Radius: 0.25, HoverHeight: 1.5, BobSpeed: 2, BobHeight: 0.25, Color: "gold"}
	if err := LoadSpecInto(CompanionFile, &spec); err != nil {
		return CompanionSpec{}, err
	}
	if spec.Radius <= 0 || spec.BobSpeed < 0 || spec.BobHeight < 0 {
		return CompanionSpec{}, fmt.Errorf("%w: %s", ErrInvalidSpec, CompanionFile)
	}
	return spec, nil
}

type WallSpec struct {
	From   PointSpec `yaml:"from"`
	To     PointSpec `yaml:"to"`
	Radius float64   `yaml:"radius"`
}

// PlatformSpec is a raised rectangle whose top is at Height.
type PlatformSpec struct {
	Min    PointSpec `yaml:"min"`
	Max    PointSpec `yaml:"max"`
	Height float64   `yaml:"height"`
}

type WorldSpec struct {
	Name      string         `yaml:"name"`
	Floor     float64        `yaml:"floor"`
	Walls     []WallSpec     `yaml:"walls"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

func LoadWorldSpec() (WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return WorldSpec{}, err
	}
	for i, p := range spec.Platforms {
		if p.Max.X <= p.Min.X || p.Max.Z <= p.Min.Z {
			return WorldSpec{}, fmt.Errorf("%w: %s platform %d has an empty footprint", ErrInvalidSpec, WorldFile, i)
		}
	}
	return spec, nil
}
