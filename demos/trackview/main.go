// trackview plays a looping compound-track animation: a position track, a
// radius track, and a color track drive a circle around the screen.
package main

import (
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/keyline"
)

const (
	screenW = 960
	screenH = 540
	loopDur = 6.0
)

type game struct {
	position *keyline.CompoundTrack
	radius   *keyline.CompoundTrack
	tint     *keyline.CompoundTrack
	elapsed  float64
}

func newGame() *game {
	g := &game{
		position: keyline.NewPositionTrack(),
		radius:   keyline.NewFloatTrack(keyline.ParamGeneric),
		tint:     keyline.NewColorTrack(),
	}

	waypoints := []struct {
		time float64
		pos  mgl64.Vec3
	}{
		{0, mgl64.Vec3{120, 420, 0}},
		{1.5, mgl64.Vec3{480, 90, 0}},
		{3, mgl64.Vec3{840, 420, 0}},
		{4.5, mgl64.Vec3{480, 270, 0}},
		{6, mgl64.Vec3{120, 420, 0}},
	}
	for _, w := range waypoints {
		if err := g.position.SetVec3(w.time, w.pos, false, false); err != nil {
			log.Fatal(err)
		}
	}

	for _, k := range []struct{ time, r float64 }{{0, 20}, {3, 70}, {6, 20}} {
		if err := g.radius.SetFloat(k.time, k.r, false, false); err != nil {
			log.Fatal(err)
		}
	}

	colors := []struct {
		time float64
		c    keyline.Color
	}{
		{0, keyline.Color{R: 0.95, G: 0.35, B: 0.2, A: 1}},
		{2, keyline.Color{R: 0.2, G: 0.8, B: 0.95, A: 1}},
		{4, keyline.Color{R: 0.6, G: 0.95, B: 0.3, A: 1}},
		{6, keyline.Color{R: 0.95, G: 0.35, B: 0.2, A: 1}},
	}
	for _, k := range colors {
		if err := g.tint.SetColor(k.time, k.c, false); err != nil {
			log.Fatal(err)
		}
	}
	return g
}

func (g *game) Update() error {
	g.elapsed += 1.0 / float64(ebiten.TPS())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t := math.Mod(g.elapsed, loopDur)

	pos, err := g.position.GetVec3(t, mgl64.Vec3{}, false)
	if err != nil {
		log.Fatal(err)
	}
	r, err := g.radius.GetFloat(t, false)
	if err != nil {
		log.Fatal(err)
	}
	c, err := g.tint.GetColor(t, 1)
	if err != nil {
		log.Fatal(err)
	}

	vector.DrawFilledCircle(screen,
		float32(pos[0]), float32(pos[1]), float32(r),
		color.RGBA{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
			A: 255,
		}, true)
}

func (g *game) Layout(_, _ int) (int, int) { return screenW, screenH }

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("keyline trackview")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
