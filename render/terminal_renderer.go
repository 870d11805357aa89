// Package render draws match snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/match"
	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/particle"
	"github.com/lixenwraith/ringball/status"
	"github.com/lixenwraith/ringball/vmath"
)

// TerminalRenderer composites a snapshot into a RenderBuffer and flushes it to the screen
// It keeps only presentation state (glow phase, viewport) and never touches the match
type TerminalRenderer struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	view    Viewport
	width   int
	height  int
	glow    float64
	glowDir float64
	rng     engine.Random // shake jitter
	metrics *status.Registry
}

// NewTerminalRenderer creates a renderer sized to screen; metrics may be nil
func NewTerminalRenderer(screen tcell.Screen, rng engine.Random, metrics *status.Registry) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:  screen,
		buf:     NewRenderBuffer(0, 0),
		glow:    parameter.GlowMin,
		glowDir: 1,
		rng:     rng,
		metrics: metrics,
	}
	if rng == nil {
		r.rng = engine.NewRandom(0)
	}
	if screen != nil {
		r.Resize()
	}
	return r
}

// Resize re-reads the screen size and refits the viewport
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.width, r.height = w, h
	r.buf.Resize(w, h)
	r.view = FitViewport(w, h, parameter.ArenaWidth, parameter.ArenaHeight)
}

// Viewport returns the current world to cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// Glow returns the current rim glow intensity
func (r *TerminalRenderer) Glow() float64 {
	return r.glow
}

// Render draws one frame
func (r *TerminalRenderer) Render(s match.Snapshot) error {
	if r.screen == nil {
		return errors.New("render: no screen")
	}
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.Resize()
	}
	r.stepGlow()

	primary := ParseHex(s.Theme.Primary, ParseHex(parameter.DefaultThemeColor, RGBWhite))

	bg := RGBBlack
	if s.Flash > parameter.EffectVisibleThreshold {
		bg = Blend(bg, ParseHex(s.FlashColor, primary), s.Flash*parameter.FlashAlpha)
	}
	r.buf.Clear(bg)

	view := r.view
	if s.Shake > parameter.EffectVisibleThreshold {
		view.OffsetX += view.CellsX((r.rng.Float64() - 0.5) * s.Shake)
		view.OffsetY += view.CellsY((r.rng.Float64() - 0.5) * s.Shake)
	}

	r.drawArena(view, s, primary)
	r.drawGoal(view, s)
	r.drawParticles(view, s.Trail, primary)
	r.drawParticles(view, s.Sparks, primary)
	r.drawDisc(view, s.Player.Pos, s.Player.Radius, primary)
	r.drawDisc(view, s.Ball.Pos, s.Ball.Radius, primary)
	r.drawParticles(view, s.Burst, primary)
	if s.HasPointer {
		x, y := view.ToCell(s.Pointer)
		r.buf.SetFg(x, y, '+', RGBWhite, BlendAlpha, 0.5)
	}
	r.drawHUD(s, primary)

	r.buf.Flush(r.screen)
	return nil
}

func (r *TerminalRenderer) stepGlow() {
	r.glow += r.glowDir * parameter.GlowSpeed
	if r.glow >= parameter.GlowMax || r.glow <= parameter.GlowMin {
		r.glowDir = -r.glowDir
	}
	r.glow = vmath.Clamp(r.glow, parameter.GlowMin, parameter.GlowMax)
}

// rimSamples picks enough angular samples to hit every cell on a circle of radius
func rimSamples(view Viewport, radius float64) int {
	return max(64, int(vmath.TwoPi*view.CellsX(radius)*2))
}

func (r *TerminalRenderer) drawArena(view Viewport, s match.Snapshot, primary RGB) {
	halo := r.glow / parameter.GlowMax * 0.5
	n := rimSamples(view, s.Radius)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * vmath.TwoPi

		x, y := view.ToCell(s.Center.Add(vmath.FromAngle(angle, s.Radius)))
		r.buf.SetBg(x, y, primary, BlendAlpha, halo)
		r.buf.SetFg(x, y, '•', RGBWhite, BlendReplace, 1)

		ix, iy := view.ToCell(s.Center.Add(vmath.FromAngle(angle, s.Radius-5)))
		if ix != x || iy != y {
			r.buf.SetFg(ix, iy, '·', primary, BlendReplace, 1)
		}
	}
}

func (r *TerminalRenderer) drawGoal(view Viewport, s match.Snapshot) {
	color := ParseHex(parameter.GoalColor, RGBWhite)
	g := s.Goal
	along := vmath.FromAngle(g.Angle, 1)
	across := vmath.FromAngle(g.Angle+math.Pi/2, 1)
	lateral := g.Width/2 + parameter.GoalPostWidth/2

	steps := max(4, int(math.Ceil(view.CellsX(g.Height)))*2)
	for i := 0; i <= steps; i++ {
		depth := s.Radius - g.Height + g.Height*float64(i)/float64(steps)
		for _, side := range [2]float64{-1, 1} {
			p := s.Center.Add(along.Scale(depth)).Add(across.Scale(side * lateral))
			x, y := view.ToCell(p)
			r.buf.SetFg(x, y, '█', color, BlendReplace, 1)
		}
	}

	// mouth between the posts
	mouth := max(4, int(math.Ceil(view.CellsX(g.Width)))*2)
	for i := 0; i <= mouth; i++ {
		off := -g.Width/2 + g.Width*float64(i)/float64(mouth)
		p := s.Center.Add(along.Scale(s.Radius - g.Height/2)).Add(across.Scale(off))
		x, y := view.ToCell(p)
		r.buf.SetBg(x, y, color, BlendAlpha, r.glow/parameter.GlowMax*0.4)
	}
}

func (r *TerminalRenderer) drawParticles(view Viewport, ps []particle.Particle, fallback RGB) {
	for _, p := range ps {
		ch := '·'
		if p.Size >= (parameter.ParticleSizeMin+parameter.ParticleSizeMax)/2 {
			ch = '•'
		}
		x, y := view.ToCell(p.Pos)
		r.buf.SetFg(x, y, ch, ParseHex(p.Color, fallback), BlendAlpha, vmath.Clamp(p.Alpha, 0, 1))
	}
}

// drawDisc fills a body in color with a white core of half its radius
func (r *TerminalRenderer) drawDisc(view Viewport, center vmath.Vec2, radius float64, color RGB) {
	cx, cy := view.ToCell(center)
	rx := int(math.Ceil(view.CellsX(radius)))
	ry := int(math.Ceil(view.CellsY(radius)))

	drawn := false
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			d := view.ToWorld(x, y).Dist(center)
			switch {
			case d <= radius/2:
				r.buf.SetFg(x, y, '█', RGBWhite, BlendReplace, 1)
			case d <= radius:
				r.buf.SetFg(x, y, '█', color, BlendReplace, 1)
			default:
				continue
			}
			drawn = true
		}
	}
	if !drawn {
		r.buf.SetFg(cx, cy, '●', color, BlendReplace, 1)
	}
}

func (r *TerminalRenderer) drawHUD(s match.Snapshot, primary RGB) {
	var sb strings.Builder
	fmt.Fprintf(&sb, " SCORE %d  BEST %d  TODAY %d  %s  %s",
		s.Score, s.Bests.Personal, s.Bests.Daily, s.PlayerMode, s.Theme.Primary)
	if r.metrics != nil {
		for _, m := range r.metrics.Samples() {
			if m.Name == status.MetricPlayerMode {
				continue
			}
			fmt.Fprintf(&sb, "  %s=%s", m.Name, m.Value)
		}
	}
	for x := 0; x < r.width; x++ {
		r.buf.SetBg(x, 0, RGBBlack, BlendReplace, 1)
	}
	r.buf.SetText(0, 0, sb.String(), primary)
}
