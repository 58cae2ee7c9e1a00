package client

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"slay/resource"
	"slay/world"
)

var (
	backgroundColor = color.RGBA{24, 26, 33, 255}
	gridColor       = color.RGBA{70, 76, 92, 255}
	outlineColor    = color.RGBA{80, 220, 120, 255}
)

// Game drives a world from ebiten's fixed-rate update loop.
type Game struct {
	*Assets
	world    *world.World
	renderer *Renderer
	log      *zap.Logger

	start  time.Time
	cursor cp.Vector
	debug  bool
	width  int
	height int
}

func NewGame(w *world.World, assets *Assets, log *zap.Logger, debug bool) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		Assets:   assets,
		world:    w,
		renderer: NewRenderer(),
		log:      log.Named("client"),
		start:    time.Now(),
		debug:    debug,
	}
}

func (g *Game) camera() Camera {
	target, _ := g.world.Camera()
	return NewCamera(target, g.width, g.height)
}

func (g *Game) Update() error {
	g.world.Step(1 / float64(ebiten.TPS()))

	in, err := ReadInput(g.camera(), time.Since(g.start).Seconds())
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.log.Info("quit", zap.Int("entities", g.world.Len()))
		}
		return err
	}
	g.cursor = in.Cursor
	g.world.Update(in)
	return nil
}

func (g *Game) debugString() string {
	stats := g.world.Stats()
	return strings.Join([]string{
		fmt.Sprintf("Version: %s, TPS: %0.02f, FPS: %0.02f", strings.TrimSpace(Version), ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("Entities: %d, Projectiles: %d", stats.Entities, stats.Projectiles),
		fmt.Sprintf("Dropped contacts: %d", stats.DroppedContacts),
	}, "\n")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	camera := g.camera()

	for _, line := range g.world.GridLines() {
		g.renderer.RenderLine(screen, camera, line, gridColor)
	}

	// Everything is drawn once per neighbouring copy of the arena so crossing an edge is seamless.
	offsets := g.world.Arena().Offsets()
	g.world.Draw(g.debug, func(req world.DrawRequest) {
		for _, offset := range offsets {
			if req.Mesh != nil {
				g.renderer.RenderMesh(screen, camera, req.Mesh, req.Transform, offset)
			}
			if len(req.Outline) > 0 {
				g.renderer.RenderOutline(screen, camera, req.Outline, offset, outlineColor)
			}
		}
	})

	g.renderer.RenderMesh(screen, camera, g.Mesh(resource.Cursor), world.Transform{Position: g.cursor}, cp.Vector{})
	g.drawInfo(screen, camera)
}

func (g *Game) drawInfo(screen *ebiten.Image, camera Camera) {
	ebitenutil.DebugPrint(screen, g.debugString())

	arena := g.world.Arena()
	labels := []struct {
		text string
		at   cp.Vector
	}{
		{"+", cp.Vector{}},
		{"UL", cp.Vector{X: arena.Min().X, Y: arena.Max().Y}},
		{"DR", cp.Vector{X: arena.Max().X, Y: arena.Min().Y}},
	}
	for _, label := range labels {
		p := camera.WorldToScreen(label.at)
		ebitenutil.DebugPrintAt(screen, label.text, int(p.X), int(p.Y))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
