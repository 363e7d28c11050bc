// pkg/render/scene_renderer.go
package render

import (
	"image/color"
	"math"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	orbRadius        = 5
	lightningWidth   = 3
	aimLineLength    = 28
	enemyStrokeWidth = 1
)

// SceneRenderer рисует мир со смещением камеры.
type SceneRenderer struct {
	colors     SceneColors
	worldImage *ebiten.Image // предрендеренный фон всего мира
}

func NewSceneRenderer(colors SceneColors) *SceneRenderer {
	r := &SceneRenderer{
		colors:     colors,
		worldImage: ebiten.NewImage(config.WorldWidth, config.WorldHeight),
	}
	r.RenderWorldImage()
	return r
}

// DefaultSceneColors - цвета из config.
func DefaultSceneColors() SceneColors {
	return SceneColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		BorderColor:     config.BorderColor,
		GridStep:        64,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

// RenderWorldImage рисует фон один раз: заливка, сетка и граница мира.
func (r *SceneRenderer) RenderWorldImage() {
	img := r.worldImage
	img.Fill(r.colors.BackgroundColor)

	w, h := float32(config.WorldWidth), float32(config.WorldHeight)
	for x := r.colors.GridStep; x < w; x += r.colors.GridStep {
		vector.StrokeLine(img, x, 0, x, h, 1, r.colors.GridColor, false)
	}
	for y := r.colors.GridStep; y < h; y += r.colors.GridStep {
		vector.StrokeLine(img, 0, y, w, y, 1, r.colors.GridColor, false)
	}

	b := float32(config.BorderThickness)
	vector.DrawFilledRect(img, 0, 0, w, b, r.colors.BorderColor, false)
	vector.DrawFilledRect(img, 0, h-b, w, b, r.colors.BorderColor, false)
	vector.DrawFilledRect(img, 0, 0, b, h, r.colors.BorderColor, false)
	vector.DrawFilledRect(img, w-b, 0, b, h, r.colors.BorderColor, false)
	vector.StrokeRect(img, b, b, w-2*b, h-2*b, r.colors.StrokeWidth, DarkenColor(r.colors.BorderColor), false)
}

// Draw рисует сцену. Порядок: фон, след, круг, сферы, враги, снаряды, игрок, эффекты.
func (r *SceneRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	cam := g.Camera
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cam.X, -cam.Y)
	screen.DrawImage(r.worldImage, op)

	r.drawTrail(screen, g)
	r.drawMagicCircle(screen, g)
	r.drawOrbs(screen, g)
	r.drawEnemies(screen, g)
	r.drawProjectiles(screen, g)
	r.drawPlayer(screen, g)
	r.drawEffects(screen, g)
}

func (r *SceneRenderer) toScreen(cam *entity.Camera, x, y float64) (float32, float32) {
	sx, sy := cam.WorldToScreen(x, y)
	return float32(sx), float32(sy)
}

func (r *SceneRenderer) drawTrail(screen *ebiten.Image, g *app.Game) {
	for _, c := range g.Player.TrailCircles() {
		fade := float32(1)
		if c.Life > 0 {
			fade = float32(1 - c.Age/c.Life)
		}
		x, y := r.toScreen(g.Camera, c.X, c.Y)
		vector.DrawFilledCircle(screen, x, y, float32(c.Radius), WithAlpha(config.TrailColor, fade), true)
	}
}

func (r *SceneRenderer) drawMagicCircle(screen *ebiten.Image, g *app.Game) {
	if !g.MagicCircle.IsActive() {
		return
	}
	px, py := g.Player.Pos()
	x, y := r.toScreen(g.Camera, px, py)
	vector.StrokeCircle(screen, x, y, float32(g.MagicCircle.Radius()), 2, config.MagicCircleColor, true)
	for _, el := range g.MagicCircle.Elements() {
		ex, ey := r.toScreen(g.Camera, el.X, el.Y)
		vector.DrawFilledCircle(screen, ex, ey, 4, config.MagicElementColor, true)
	}
}

func (r *SceneRenderer) drawOrbs(screen *ebiten.Image, g *app.Game) {
	g.Experience.ForEachActive(func(orb *component.ExperienceOrb) {
		if !g.Camera.Contains(orb.Position.X, orb.Position.Y, orbRadius) {
			return
		}
		x, y := r.toScreen(g.Camera, orb.Position.X, orb.Position.Y)
		vector.DrawFilledCircle(screen, x, y, orbRadius, config.OrbColor, true)
	})
}

func (r *SceneRenderer) drawEnemies(screen *ebiten.Image, g *app.Game) {
	for _, idx := range g.Enemies.AppendVisible(nil) {
		e := g.Enemies.Enemy(idx)
		if e == nil || !e.Active {
			continue
		}
		x, y := r.toScreen(g.Camera, e.Position.X, e.Position.Y)
		fill := e.Renderable.Color
		if e.Tinted {
			fill = config.DamageTintColor
		}
		fill = WithAlpha(fill, e.Renderable.Alpha)
		vector.DrawFilledCircle(screen, x, y, e.Renderable.Radius, fill, true)
		vector.StrokeCircle(screen, x, y, e.Renderable.Radius, enemyStrokeWidth, DarkenColor(e.Renderable.Color), true)
		if e.Health.Value < e.Health.Max {
			drawHealthBar(screen, x, y-e.Renderable.Radius-config.HealthBarOffset, e.Health.Percent())
		}
	}
}

func drawHealthBar(screen *ebiten.Image, cx, top float32, percent float64) {
	left := cx - config.HealthBarWidth/2
	vector.DrawFilledRect(screen, left, top, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBgColor, false)
	fill := config.HealthBarColor
	if percent < 0.3 {
		fill = config.HealthBarLowColor
	}
	vector.DrawFilledRect(screen, left, top, float32(config.HealthBarWidth*percent), config.HealthBarHeight, fill, false)
}

func (r *SceneRenderer) drawProjectiles(screen *ebiten.Image, g *app.Game) {
	g.Projectiles.ForEachActive(func(p *component.Projectile) {
		x, y := r.toScreen(g.Camera, p.Position.X, p.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius*p.Scale), g.Projectiles.PoolColor(p.Kind), true)
	})
}

// SkinColor - цвет игрока для скина.
func SkinColor(skin entity.Skin) color.RGBA {
	switch skin {
	case entity.SkinWizard:
		return config.WizardColor
	case entity.SkinMesmer:
		return config.MesmerColor
	}
	return config.PlayerColor
}

func (r *SceneRenderer) drawPlayer(screen *ebiten.Image, g *app.Game) {
	p := g.Player
	alpha := p.Alpha()
	if alpha <= 0 {
		return
	}
	px, py := p.Pos()
	hw, hh := p.HalfSize()
	x, y := r.toScreen(g.Camera, px-hw, py-hh)
	fill := WithAlpha(SkinColor(p.Skin()), alpha)
	vector.DrawFilledRect(screen, x, y, float32(hw*2), float32(hh*2), fill, true)
	vector.StrokeRect(screen, x, y, float32(hw*2), float32(hh*2), float32(config.StrokeWidth), WithAlpha(config.TextLightColor, alpha), true)

	// направление прицела
	ax, ay := p.Aim()
	dx, dy := ax-px, ay-py
	if l := dx*dx + dy*dy; l > 0 {
		cx, cy := r.toScreen(g.Camera, px, py)
		k := aimLineLength / math.Sqrt(l)
		vector.StrokeLine(screen, cx, cy, cx+float32(dx*k), cy+float32(dy*k), 2, WithAlpha(config.TextLightColor, alpha), true)
	}
}

func (r *SceneRenderer) drawEffects(screen *ebiten.Image, g *app.Game) {
	for _, ex := range g.Effects.Explosions() {
		p := ex.Progress()
		x, y := r.toScreen(g.Camera, ex.X, ex.Y)
		vector.StrokeCircle(screen, x, y, float32(ex.MaxRadius*p), 3, WithAlpha(config.ExplosionColor, float32(1-p)), true)
	}
	for _, s := range g.Effects.Strikes() {
		fade := float32(1)
		if s.Duration > 0 {
			fade = float32(1 - s.Timer/s.Duration)
		}
		clr := WithAlpha(config.LightningColor, fade)
		for i := 1; i < len(s.Points); i++ {
			x0, y0 := r.toScreen(g.Camera, s.Points[i-1].X, s.Points[i-1].Y)
			x1, y1 := r.toScreen(g.Camera, s.Points[i].X, s.Points[i].Y)
			vector.StrokeLine(screen, x0, y0, x1, y1, lightningWidth, clr, true)
		}
	}
}
