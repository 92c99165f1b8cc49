package loop

import (
	"math"

	"astrovoid/internal/draw"
	"astrovoid/internal/entity"
	"astrovoid/internal/game"
	"astrovoid/internal/geom"
)

func pt(v geom.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

func rotated(v geom.Vec2, angle float64) geom.Vec2 {
	sin, cos := math.Sincos(angle)
	return geom.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// renderBackdrop draws the asteroids drifting behind the menu.
func (s *session) renderBackdrop() {
	for _, a := range s.backdrop {
		s.renderAsteroid(a)
	}
}

// renderRound draws the whole field, ship last so it stays visible.
func (s *session) renderRound() {
	r := s.round
	for _, h := range r.BlackHoles {
		s.renderBlackHole(h)
	}
	for _, a := range r.Asteroids {
		s.renderAsteroid(a)
	}
	for _, m := range r.Missiles {
		s.canvas.DrawLine(pt(m.Pos), pt(m.End()))
	}
	s.renderShip(r.Ship)
}

const asteroidVertices = 7

// renderAsteroid draws a heptagon rotated by the asteroid's spin angle, so
// the accelerating rotation is visible.
func (s *session) renderAsteroid(a *entity.Asteroid) {
	pts := s.canvas.BorrowPoints(asteroidVertices)
	for i := range pts {
		angle := a.Rotation + 2*math.Pi*float64(i)/asteroidVertices
		pts[i] = pt(a.Pos.Add(geom.FromAngle(angle).Scale(a.Size)))
	}
	s.canvas.DrawPolygon(pts, false)
}

// renderBlackHole draws the event horizon with three rotating spokes.
func (s *session) renderBlackHole(h *entity.BlackHole) {
	s.canvas.DrawCircle(pt(h.Pos), h.Size)
	for k := 0; k < 3; k++ {
		dir := geom.FromAngle(h.Rotation + float64(k)*2*math.Pi/3)
		s.canvas.DrawLine(
			pt(h.Pos.Add(dir.Scale(h.Size*0.3))),
			pt(h.Pos.Add(dir.Scale(h.Size*0.9))),
		)
	}
}

// shieldFlashWindow mirrors the ship's post-hit invulnerability window.
const shieldFlashWindow = 2.0

// renderShip draws the ship as a filled triangle pointing along its facing,
// blinking while the shield is recharging after a hit.
func (s *session) renderShip(ship *entity.Ship) {
	if s.elapsed-ship.LastCollision < shieldFlashWindow && int(s.elapsed*8)%2 == 0 {
		return
	}

	facing := ship.Facing()
	if s.mode == game.ModeModern {
		facing = ship.AimAt(s.pointer)
	}

	pts := s.canvas.BorrowPoints(3)
	pts[0] = pt(ship.Pos.Add(facing.Scale(ship.Size)))
	pts[1] = pt(ship.Pos.Add(rotated(facing, 2.5).Scale(ship.Size * 0.8)))
	pts[2] = pt(ship.Pos.Add(rotated(facing, -2.5).Scale(ship.Size * 0.8)))
	s.canvas.DrawPolygon(pts, true)
}
