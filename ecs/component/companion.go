package component

// Companion floats at its owner's tracked companion point and bobs above it.
type Companion struct {
	Owner     uint64
	Radius    float64
	BobSpeed  float64
	BobHeight float64
	BobPhase  float64
	// HoverHeight lifts the companion above the tracked point.
	HoverHeight float64
}

var CompanionComponent = NewComponent[Companion]()
