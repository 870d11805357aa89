package parameter

// Particles
const (
	// ParticleDamping multiplies particle velocity after each integration step
	ParticleDamping = 0.98

	// ParticleSpeedSpread: initial velocity components are uniform in [-Spread/2, Spread/2]
	ParticleSpeedSpread = 4.0

	// ParticleDecayMin/Max bound the per-tick life decrement
	ParticleDecayMin = 0.01
	ParticleDecayMax = 0.03

	// ParticleSizeMin/Max bound the draw radius
	ParticleSizeMin = 2.0
	ParticleSizeMax = 5.0

	// Burst sizes
	CollisionParticleCount = 20
	GoalParticleCount      = 50
	TrailParticleCount     = 1

	// TrailInterval is the ball travel distance between trail samples
	TrailInterval = 2.0
)
