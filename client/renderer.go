package client

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"slay/resource"
	"slay/world"
)

// Renderer turns template meshes into triangles on screen.
type Renderer struct {
	pixel    *ebiten.Image
	vertices []ebiten.Vertex
}

func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		pixel: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// meshVertices appends mesh placed by t, shifted by offset, in screen space.
func meshVertices(dst []ebiten.Vertex, camera Camera, mesh *resource.Mesh, t world.Transform, offset cp.Vector) []ebiten.Vertex {
	r, g, b, a := colorComponents(mesh.Color)
	for _, v := range mesh.Vertices {
		p := camera.WorldToScreen(t.Apply(v).Add(offset))
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	return dst
}

func colorComponents(c [4]uint8) (r, g, b, a float32) {
	return float32(c[0]) / 0xff, float32(c[1]) / 0xff, float32(c[2]) / 0xff, float32(c[3]) / 0xff
}

func (r *Renderer) RenderMesh(screen *ebiten.Image, camera Camera, mesh *resource.Mesh, t world.Transform, offset cp.Vector) {
	if len(mesh.Indices) == 0 {
		return
	}
	r.vertices = meshVertices(r.vertices[:0], camera, mesh, t, offset)
	screen.DrawTriangles(r.vertices, mesh.Indices, r.pixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// RenderOutline draws a closed polygon through points, which are in world space.
func (r *Renderer) RenderOutline(screen *ebiten.Image, camera Camera, points []cp.Vector, offset cp.Vector, clr color.Color) {
	for i := range points {
		a := camera.WorldToScreen(points[i].Add(offset))
		b := camera.WorldToScreen(points[(i+1)%len(points)].Add(offset))
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
	}
}

func (r *Renderer) RenderLine(screen *ebiten.Image, camera Camera, line world.Line, clr color.Color) {
	a := camera.WorldToScreen(line.A)
	b := camera.WorldToScreen(line.B)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
}
