package locomotion

import "github.com/go-gl/mathgl/mgl64"

// Phase is the vertical motion state.
type Phase uint8

const (
	PhaseGrounded Phase = iota
	PhaseAirborne
)

func (p Phase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// State is owned by a single Controller and only mutated by Tick.
type State struct {
	CurrentSpeed     float64
	VerticalVelocity float64
	Phase            Phase

	Facing mgl64.Quat

	CompanionPosition mgl64.Vec3
	// CompanionPlaced is false until the companion has a position. The first
	// tracked tick places it directly on its target.
	CompanionPlaced bool
}

// Spawn seeds a new State.
type Spawn struct {
	Facing    mgl64.Quat  `cbor:"facing"`
	Companion *mgl64.Vec3 `cbor:"companion,omitempty"`
}

// TickInput is supplied fresh for every call to Tick.
type TickInput struct {
	MoveAxis    float64 `cbor:"move"`
	TurnAxis    float64 `cbor:"turn"`
	SprintHeld  bool    `cbor:"sprint"`
	JumpPressed bool    `cbor:"jump"`
	Grounded    bool    `cbor:"grounded"`

	CameraForward  mgl64.Vec3 `cbor:"camera_forward"`
	CameraPosition mgl64.Vec3 `cbor:"camera_position"`
	BodyForward    mgl64.Vec3 `cbor:"body_forward"`
	BodyPosition   mgl64.Vec3 `cbor:"body_position"`

	DeltaTime float64 `cbor:"dt"`
}

// TickOutput is what one tick hands to the mover, renderer and animation driver.
type TickOutput struct {
	Horizontal mgl64.Vec3
	Vertical   float64
	// Velocity is Horizontal with Vertical as its Y component.
	Velocity mgl64.Vec3
	// Displacement is Velocity scaled by the tick's delta time.
	Displacement mgl64.Vec3

	Facing            mgl64.Quat
	CompanionPosition mgl64.Vec3
	CompanionTarget   mgl64.Vec3
	CompanionTracked  bool

	Moving          bool
	NormalizedSpeed float64
	Jumped          bool
	Phase           Phase
}
