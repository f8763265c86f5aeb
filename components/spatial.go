package components

// Position represents a ship's world position.
type Position struct {
	X, Y float32
}

// Velocity represents a ship's velocity.
type Velocity struct {
	X, Y float32
}

// Rotation represents a ship's heading.
type Rotation struct {
	Heading float32 // degrees, 0 = +X, counter-clockwise
}
