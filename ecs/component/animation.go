package component

// Animation is the clip chosen for an entity by the animation system.
type Animation struct {
	Current  string
	Previous string
	// Frames counts ticks spent in Current.
	Frames int
	// Walking mirrors the original animator's isWalking flag.
	Walking bool
	Speed   float64
}

var AnimationComponent = NewComponent[Animation]()
