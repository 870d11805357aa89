package parameter

// Arena Geometry (world units)
const (
	// ArenaWidth/ArenaHeight are the playfield extents; the arena is centered in them
	ArenaWidth  = 800.0
	ArenaHeight = 800.0

	// ArenaRadius is the radius of the circular boundary
	ArenaRadius = 350.0

	// GoalWidth is the chord length of the goal mouth along the rim
	GoalWidth = 80.0

	// GoalHeight is the depth of the scoring band measured from the rim
	GoalHeight = 20.0

	// GoalRotationSpeed is radians added to the goal angle every tick
	GoalRotationSpeed = 0.015

	// GoalPostWidth is the drawn thickness of each goal post
	GoalPostWidth = 4.0
)

// Scoring
const (
	// ScoreCooldownMs is the wall-clock debounce between two goals
	ScoreCooldownMs = 1000
)
