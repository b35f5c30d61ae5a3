package system

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/locomotion"
	"github.com/milk9111/servant/prefabs"
	"golang.org/x/image/colornames"
)

const defaultPixelsPerUnit = 16.0

// RenderSystem draws a top-down view of the world centered on the player,
// with +Z pointing up the screen, and a text HUD.
type RenderSystem struct {
	world          prefabs.WorldSpec
	companionColor color.Color

	// PixelsPerUnit is the map zoom.
	PixelsPerUnit float64
	// Debug adds the companion cone and camera ray.
	Debug bool

	playerEntity ecs.Entity
}

func NewRenderSystem(world prefabs.WorldSpec, companionColor string) *RenderSystem {
	return &RenderSystem{
		world:          world,
		companionColor: NamedColor(companionColor, colornames.Gold),
		PixelsPerUnit:  defaultPixelsPerUnit,
	}
}

// NamedColor resolves an SVG color name, falling back to def.
func NamedColor(name string, def color.Color) color.Color {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return def
}

// mapView projects world X/Z onto the screen around a center point.
type mapView struct {
	center  mgl64.Vec3
	scale   float64
	originX float64
	originY float64
}

func (v mapView) project(p mgl64.Vec3) (float32, float32) {
	x := v.originX + (p.X()-v.center.X())*v.scale
	y := v.originY - (p.Z()-v.center.Z())*v.scale
	return float32(x), float32(y)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Darkslategray)

	if !r.playerEntity.Valid() || !w.IsAlive(r.playerEntity) {
		if e, ok := w.First(component.PlayerTagComponent.Kind().ID()); ok {
			r.playerEntity = e
		}
	}

	bounds := screen.Bounds()
	view := mapView{
		scale:   r.PixelsPerUnit,
		originX: float64(bounds.Dx()) / 2,
		originY: float64(bounds.Dy()) / 2,
	}
	if t, ok := ecs.Get(w, r.playerEntity, component.TransformComponent.Kind()); ok {
		view.center = t.Position
	}
	scale := float32(view.scale)

	for _, p := range r.world.Platforms {
		x0, y0 := view.project(mgl64.Vec3{p.Min.X, 0, p.Max.Z})
		x1, y1 := view.project(mgl64.Vec3{p.Max.X, 0, p.Min.Z})
		shade := uint8(math.Min(255, 90+p.Height*60))
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, color.RGBA{R: shade, G: shade / 2, B: 40, A: 255}, false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Sandybrown, false)
	}

	for _, wall := range r.world.Walls {
		x0, y0 := view.project(mgl64.Vec3{wall.From.X, 0, wall.From.Z})
		x1, y1 := view.project(mgl64.Vec3{wall.To.X, 0, wall.To.Z})
		width := float32(math.Max(wall.Radius*2, 0.1)) * scale
		vector.StrokeLine(screen, x0, y0, x1, y1, width, colornames.Lightgrey, true)
	}

	ecs.ForEach2(w, component.CompanionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Companion, t *component.Transform) {
		x, y := view.project(t.Position)
		vector.FillCircle(screen, x, y, float32(math.Max(c.Radius, 0.1))*scale, r.companionColor, true)
	})

	ecs.ForEach2(w, component.MoverComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mover *component.Mover, t *component.Transform) {
		x, y := view.project(t.Position)
		body := colornames.Skyblue
		if !mover.Grounded {
			body = colornames.Lightskyblue
		}
		vector.FillCircle(screen, x, y, float32(mover.Radius)*scale, body, true)

		nose := t.Position.Add(t.Forward().Mul(mover.Radius * 1.6))
		nx, ny := view.project(nose)
		vector.StrokeLine(screen, x, y, nx, ny, 2, colornames.White, true)

		if r.Debug {
			r.drawCone(screen, view, w, e, t)
		}
	})

	if r.Debug {
		ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
			x, y := view.project(cam.Position)
			tip := cam.Position.Add(cam.Forward.Mul(cam.Distance))
			tx, ty := view.project(tip)
			vector.StrokeLine(screen, x, y, tx, ty, 1, colornames.Tomato, true)
			vector.FillCircle(screen, x, y, 3, colornames.Tomato, true)
		})
	}

	ebitenutil.DebugPrint(screen, r.hud(w))
}

// drawCone outlines the arc the companion may be placed in.
func (r *RenderSystem) drawCone(screen *ebiten.Image, view mapView, w *ecs.World, e ecs.Entity, t *component.Transform) {
	loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind())
	if !ok || loco.Controller == nil {
		return
	}
	cfg := loco.Controller.Config()
	if cfg.CompanionDistance <= 0 {
		return
	}
	forward, ok := locomotion.FlattenDirection(t.Forward())
	if !ok {
		return
	}
	x, y := view.project(t.Position)
	for _, sign := range []float64{-1, 1} {
		edge := mgl64.QuatRotate(mgl64.DegToRad(sign*cfg.CompanionMaxAngleDeg), locomotion.Up).Rotate(forward)
		ex, ey := view.project(t.Position.Add(edge.Mul(cfg.CompanionDistance)))
		vector.StrokeLine(screen, x, y, ex, ey, 1, colornames.Khaki, true)
	}
	if loco.Last.CompanionTracked {
		tx, ty := view.project(loco.Last.CompanionTarget)
		vector.StrokeCircle(screen, tx, ty, 4, 1, colornames.Khaki, true)
	}
}

func (r *RenderSystem) hud(w *ecs.World) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %0.1f  FPS %0.1f\n", ebiten.ActualTPS(), ebiten.ActualFPS())

	loco, ok := ecs.Get(w, r.playerEntity, component.LocomotionComponent.Kind())
	if !ok || loco.Controller == nil {
		return b.String()
	}
	st := loco.Controller.State()
	fmt.Fprintf(&b, "speed %5.2f  vertical %6.2f  %s\n", st.CurrentSpeed, st.VerticalVelocity, st.Phase)
	if anim, ok := ecs.Get(w, r.playerEntity, component.AnimationComponent.Kind()); ok {
		fmt.Fprintf(&b, "clip %s  walking %t\n", anim.Current, anim.Walking)
	}
	if r.Debug {
		if t, ok := ecs.Get(w, r.playerEntity, component.TransformComponent.Kind()); ok {
			p := t.Position
			fmt.Fprintf(&b, "pos %6.2f %6.2f %6.2f\n", p.X(), p.Y(), p.Z())
		}
	}
	return b.String()
}
