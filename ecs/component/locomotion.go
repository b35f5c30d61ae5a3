package component

import "github.com/milk9111/servant/locomotion"

// Locomotion binds a motion controller to an entity. Only the locomotion
// system ticks the controller; Last is the most recent tick's result.
type Locomotion struct {
	Controller *locomotion.Controller
	Last       locomotion.TickOutput
}

var LocomotionComponent = NewComponent[Locomotion]()
