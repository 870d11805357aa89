package physics

import "github.com/lixenwraith/ringball/vmath"

// ConfineReflect keeps a body within limit of center
// On contact the position snaps to the limit along the same angle and velocity is reflected
// about the outward normal, then scaled by restitution
func ConfineReflect(pos, vel, center vmath.Vec2, limit, restitution float64) (vmath.Vec2, vmath.Vec2, bool) {
	n, snapped, hit := snapToCircle(pos, center, limit)
	if !hit {
		return pos, vel, false
	}
	return snapped, vel.Reflect(n).Scale(restitution), true
}

// ConfineDamp keeps a body within limit of center, scaling velocity by damping on contact
func ConfineDamp(pos, vel, center vmath.Vec2, limit, damping float64) (vmath.Vec2, vmath.Vec2, bool) {
	_, snapped, hit := snapToCircle(pos, center, limit)
	if !hit {
		return pos, vel, false
	}
	return snapped, vel.Scale(damping), true
}

func snapToCircle(pos, center vmath.Vec2, limit float64) (normal, snapped vmath.Vec2, hit bool) {
	rel := pos.Sub(center)
	if rel.Len() <= limit {
		return vmath.Vec2{}, pos, false
	}
	normal = vmath.FromAngle(rel.Angle(), 1)
	return normal, center.Add(normal.Scale(limit)), true
}
