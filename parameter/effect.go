package parameter

// Screen Shake & Flash
const (
	// ShakeDecay multiplies shake intensity every tick
	ShakeDecay = 0.9

	// FlashDecay multiplies flash intensity every tick
	FlashDecay = 0.95

	// CollisionShake is the shake set on player-ball contact
	CollisionShake = 5.0

	// GoalShake is the shake set on a goal
	GoalShake = 10.0

	// GoalFlash is the flash intensity set on a goal
	GoalFlash = 1.0

	// EffectVisibleThreshold: shake/flash below this are not drawn
	EffectVisibleThreshold = 0.01

	// FlashAlpha scales flash intensity into tint strength
	FlashAlpha = 0.3
)

// Rim Glow
const (
	GlowMin   = 5.0
	GlowMax   = 20.0
	GlowSpeed = 0.5
)
