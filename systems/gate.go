package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// WhileFighting runs system only on fully simulated fighting ticks.
func WhileFighting(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsFighting(e) {
			return
		}
		system(e)
	}
}
