package parameter

// Player Body
const (
	// PlayerSize is the disc diameter; collision radius is half of it
	PlayerSize = 40.0

	// PlayerFriction multiplies velocity every tick
	PlayerFriction = 0.98

	// PlayerAcceleration is the steering acceleration magnitude
	PlayerAcceleration = 0.5
)

// Player Controller
const (
	// SlowBallSpeed: below this ball speed the controller pre-positions behind the ball
	SlowBallSpeed = 0.5

	// ChaseDistance: strictly beyond this distance the controller chases, otherwise intercepts
	ChaseDistance = 100.0

	// State hold durations in ticks
	PositionHoldTicks  = 60
	ChaseHoldTicks     = 30
	InterceptHoldTicks = 15

	// PredictionTicks is how far ahead intercept extrapolates the ball
	PredictionTicks = 10

	// PositionOffset is the distance behind the ball (away from goal) the controller aims for
	PositionOffset = 80.0
)
