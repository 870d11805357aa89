package parameter

// Ball
const (
	// BallRadius is the collision and draw radius
	BallRadius = 15.0

	// BallFriction multiplies ball velocity every tick
	BallFriction = 0.98

	// BallMinSpeed is the stall threshold and lower relaunch bound
	BallMinSpeed = 2.0

	// BallMaxSpeed is the upper relaunch bound
	BallMaxSpeed = 8.0

	// BallWallRestitution scales ball velocity after a rim reflection
	BallWallRestitution = 0.8
)

// Collision
const (
	// KickPowerMultiplier scales player speed into ball speed on contact
	KickPowerMultiplier = 2.0

	// PlayerWallDamping scales player velocity when clamped at the rim
	PlayerWallDamping = 0.5
)
