package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Mover is the physics-side half of a character. The horizontal plane is
// simulated by a Chipmunk body (cp X = world X, cp Y = world Z); height is
// integrated by the physics system against platform surfaces.
type Mover struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
	Mass   float64
	// StepHeight is how far above the feet a platform top may be and still
	// catch the body.
	StepHeight float64

	// Velocity is the world velocity requested for the next physics step.
	Velocity mgl64.Vec3
	// Grounded is the contact result of the last physics step.
	Grounded bool
	// GroundHeight is the surface height under the body after the last step.
	GroundHeight float64
}

var MoverComponent = NewComponent[Mover]()
