package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveAxis    float64
	TurnAxis    float64
	Sprint      bool
	JumpPressed bool

	// LookX and LookY are the frame's camera look deltas in pixels.
	LookX float64
	LookY float64

	ReleaseCursor bool
}

var InputComponent = NewComponent[Input]()
