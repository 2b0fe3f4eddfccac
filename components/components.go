// Package components defines ECS components shared across the simulation.
package components

// Position represents a world position. Only X and Y participate in grid
// indexing; Z carries terrain height.
type Position struct {
	X, Y, Z float32
}

// Explorer tags an entity driven by the exploration engine.
type Explorer struct {
	ID uint32

	// Accumulated planar distance traveled, for telemetry.
	DistanceTraveled float32
}

// Kinematics holds the movement capabilities of an agent body.
type Kinematics struct {
	MaxSpeed float32 // world units per second
}
