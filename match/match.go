// Package match owns one arena session: ball, player, rotating goal, effects and score
//
// Only the scheduler goroutine may call Tick or SetPointer; Snapshot values it returns are detached copies
package match

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/ringball/controller"
	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/particle"
	"github.com/lixenwraith/ringball/physics"
	"github.com/lixenwraith/ringball/score"
	"github.com/lixenwraith/ringball/status"
	"github.com/lixenwraith/ringball/theme"
	"github.com/lixenwraith/ringball/vmath"
)

// Scoreboard folds the live score into persisted bests
type Scoreboard interface {
	Bests() score.Bests
	Update(score int, now time.Time) score.Bests
}

// Options configures a match; zero fields take parameter defaults
type Options struct {
	Center            vmath.Vec2
	Radius            float64
	GoalWidth         float64
	GoalHeight        float64
	GoalRotationSpeed float64
	ScoreCooldown     time.Duration

	Rng     engine.Random
	Board   Scoreboard
	Theme   theme.Source
	Metrics *status.Registry
	Logger  *slog.Logger
}

// Match is the arena simulation
type Match struct {
	id     string
	center vmath.Vec2
	radius float64
	goal   Goal

	player *controller.Player
	ball   *physics.Ball

	sparks *particle.System // player-ball contact
	trail  *particle.System
	burst  *particle.System // goal

	shake      float64
	flash      float64
	flashColor string

	trailAnchor    vmath.Vec2
	hasTrailAnchor bool

	score     int
	bests     score.Bests
	lastScore time.Time
	hasScored bool
	cooldown  time.Duration

	pointer    vmath.Vec2
	hasPointer bool

	events []Event

	rng    engine.Random
	board  Scoreboard
	theme  theme.Source
	logger *slog.Logger

	ticks      *atomic.Int64
	collisions *atomic.Int64
	goals      *atomic.Int64
	bounces    *atomic.Int64
	relaunches *atomic.Int64
	ballSpeed  *status.Gauge
	mode       *status.Label
}

// New places player and ball at rest at the arena center
func New(opts Options) *Match {
	opts = withDefaults(opts)

	m := &Match{
		id:     uuid.NewString(),
		center: opts.Center,
		radius: opts.Radius,
		goal: Goal{
			Width:         opts.GoalWidth,
			Height:        opts.GoalHeight,
			RotationSpeed: opts.GoalRotationSpeed,
		},
		player:   controller.NewPlayer(opts.Center),
		ball:     physics.NewBall(opts.Center),
		sparks:   particle.NewSystem(opts.Rng),
		trail:    particle.NewSystem(opts.Rng),
		burst:    particle.NewSystem(opts.Rng),
		cooldown: opts.ScoreCooldown,
		rng:      opts.Rng,
		board:    opts.Board,
		theme:    opts.Theme,
		logger:   opts.Logger,

		ticks:      opts.Metrics.Counter(status.MetricTicks),
		collisions: opts.Metrics.Counter(status.MetricCollisions),
		goals:      opts.Metrics.Counter(status.MetricGoals),
		bounces:    opts.Metrics.Counter(status.MetricBounces),
		relaunches: opts.Metrics.Counter(status.MetricRelaunches),
		ballSpeed:  opts.Metrics.Gauge(status.MetricBallSpeed),
		mode:       opts.Metrics.Label(status.MetricPlayerMode),
	}
	if m.board != nil {
		m.bests = m.board.Bests()
	}
	m.logger = m.logger.With("match", m.id)
	m.logger.Info("match created", "center", m.center, "radius", m.radius)
	return m
}

func withDefaults(o Options) Options {
	if o.Center.IsZero() {
		o.Center = vmath.V2(parameter.ArenaWidth/2, parameter.ArenaHeight/2)
	}
	if o.Radius <= 0 {
		o.Radius = parameter.ArenaRadius
	}
	if o.GoalWidth <= 0 {
		o.GoalWidth = parameter.GoalWidth
	}
	if o.GoalHeight <= 0 {
		o.GoalHeight = parameter.GoalHeight
	}
	if o.GoalRotationSpeed == 0 {
		o.GoalRotationSpeed = parameter.GoalRotationSpeed
	}
	if o.ScoreCooldown <= 0 {
		o.ScoreCooldown = parameter.ScoreCooldownMs * time.Millisecond
	}
	if o.Rng == nil {
		o.Rng = engine.NewRandom(0)
	}
	if o.Theme == nil {
		o.Theme = theme.NewSelector(nil, parameter.DefaultThemeColor, o.Logger)
	}
	if o.Metrics == nil {
		o.Metrics = status.NewRegistry()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// ID returns the match identifier used in logs
func (m *Match) ID() string {
	return m.id
}

// Score returns the live score
func (m *Match) Score() int {
	return m.score
}

// SetPointer records the last pointer position in world coordinates
func (m *Match) SetPointer(x, y float64) {
	m.pointer = vmath.V2(x, y)
	m.hasPointer = true
}

// Tick advances the simulation one frame
func (m *Match) Tick(ctx engine.TickContext) Snapshot {
	m.events = nil
	m.ticks.Add(1)
	color := m.theme.Current().Primary

	m.updateEffects()
	m.updateTrail(color)

	m.goal.Angle += m.goal.RotationSpeed

	m.player.Update(controller.Observation{
		BallPos:     m.ball.Pos,
		BallVel:     m.ball.Vel,
		Center:      m.center,
		ArenaRadius: m.radius,
		GoalAngle:   m.goal.Angle,
	})
	m.ball.Update()

	m.checkCollision(color)
	m.checkGoal(ctx.Now, color)
	m.checkBounds()

	if m.board != nil {
		m.bests = m.board.Update(m.score, ctx.Now)
	}

	if m.ball.Stalled() {
		m.ball.RandomizeVelocity(m.rng)
		m.relaunches.Add(1)
		m.emit(EventRelaunch, m.ball.Speed())
	}

	m.ballSpeed.Set(m.ball.Speed())
	m.mode.Set(m.player.State.Mode.String())

	return m.snapshot(ctx)
}

func (m *Match) updateEffects() {
	m.sparks.Update()
	m.trail.Update()
	m.burst.Update()
	m.shake *= parameter.ShakeDecay
	m.flash *= parameter.FlashDecay
}

func (m *Match) updateTrail(color string) {
	if !m.hasTrailAnchor {
		m.trailAnchor = m.ball.Pos
		m.hasTrailAnchor = true
	}
	if m.ball.Pos.Dist(m.trailAnchor) > parameter.TrailInterval {
		m.trail.Emit(m.ball.Pos, parameter.TrailParticleCount, color)
		m.trailAnchor = m.ball.Pos
	}
}

func (m *Match) checkCollision(color string) {
	c, ok := physics.Overlap(m.player.Pos, m.player.Radius(), m.ball.Pos, m.ball.Radius)
	if !ok {
		return
	}
	m.shake = parameter.CollisionShake
	m.sparks.Emit(m.ball.Pos, parameter.CollisionParticleCount, color)

	power := m.player.Vel.Len() * parameter.KickPowerMultiplier
	m.ball.Vel = c.Normal.Scale(power)
	m.ball.Pos = physics.PushOut(m.ball.Pos, c)

	m.collisions.Add(1)
	m.emit(EventCollision, power)
}

func (m *Match) checkGoal(now time.Time, color string) {
	if !m.goal.Contains(m.center, m.radius, m.ball.Pos) {
		return
	}
	if m.hasScored && now.Sub(m.lastScore) <= m.cooldown {
		return
	}

	m.score++
	m.shake = parameter.GoalShake
	m.flash = parameter.GoalFlash
	m.flashColor = color
	m.burst.Emit(m.ball.Pos, parameter.GoalParticleCount, color)
	m.lastScore = now
	m.hasScored = true

	m.emit(EventGoal, m.ball.Speed())
	m.goals.Add(1)
	m.logger.Info("goal", "score", m.score, "goal_angle", vmath.WrapAngle(m.goal.Angle))

	m.ball.Reset(m.center)
}

func (m *Match) checkBounds() {
	speed := m.ball.Speed()
	pos, vel, hit := physics.ConfineReflect(m.ball.Pos, m.ball.Vel, m.center,
		m.radius-m.ball.Radius, parameter.BallWallRestitution)
	m.ball.Pos, m.ball.Vel = pos, vel
	if hit {
		m.bounces.Add(1)
		m.emit(EventBounce, speed)
	}

	m.player.Pos, m.player.Vel, _ = physics.ConfineDamp(m.player.Pos, m.player.Vel, m.center,
		m.radius-m.player.Radius(), parameter.PlayerWallDamping)
}

func (m *Match) emit(kind EventKind, strength float64) {
	m.events = append(m.events, Event{Kind: kind, Pos: m.ball.Pos, Strength: strength})
}

func (m *Match) snapshot(ctx engine.TickContext) Snapshot {
	return Snapshot{
		MatchID: m.id,
		Frame:   ctx.Frame,
		Now:     ctx.Now,

		Center: m.center,
		Radius: m.radius,
		Goal:   m.goal,

		Player:     Body{Pos: m.player.Pos, Vel: m.player.Vel, Radius: m.player.Radius()},
		PlayerMode: m.player.State.Mode,
		Target:     m.player.Target,
		Ball:       Body{Pos: m.ball.Pos, Vel: m.ball.Vel, Radius: m.ball.Radius},

		Trail:  m.trail.Particles(),
		Sparks: m.sparks.Particles(),
		Burst:  m.burst.Particles(),

		Shake:      m.shake,
		Flash:      m.flash,
		FlashColor: m.flashColor,
		Theme:      m.theme.Current(),

		Score: m.score,
		Bests: m.bests,

		Pointer:    m.pointer,
		HasPointer: m.hasPointer,

		Events: m.events,
	}
}
