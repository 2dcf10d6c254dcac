package sim

// Entity sizes in world units.
const (
	FoodRadius     = 5.0
	PlayerRadius   = 10.0
	CreatureRadius = 8.0
)

// Starting speeds in world units per second.
const (
	PlayerSpeed   = 80.0
	CreatureSpeed = 65.0
)

// CreatureCount is the number of creatures a fresh world starts with.
const CreatureCount = 99

// growthCostFactor scales absorption growth into a speed change.
const growthCostFactor = 0.1

// DefaultWorldSize is the square world edge used by the hosts.
const DefaultWorldSize = 2048.0
