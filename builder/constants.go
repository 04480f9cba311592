package builder

// Constructor names, used to prefix errors.
const (
	MethodPath            = "Path"
	MethodCycle           = "Cycle"
	MethodStar            = "Star"
	MethodWheel           = "Wheel"
	MethodComplete        = "Complete"
	MethodGrid            = "Grid"
	MethodRandomConnected = "RandomConnected"
)

// Minimum sizes per topology.
const (
	// MinPathNodes: a path with fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: a ring needs 3 nodes to avoid parallel edges.
	MinCycleNodes = 3
	// MinStarNodes: hub plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-ring plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 has no edges.
	MinCompleteNodes = 2
	// MinGridDim is the smallest rows or cols value; rows*cols must still be ≥ 2.
	MinGridDim = 1
	// MinRandomNodes: a random connected graph needs at least one edge.
	MinRandomNodes = 2
)

// hubVertex is the centre of Star and Wheel.
const hubVertex = 0
