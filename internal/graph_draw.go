package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/DoesntSuck/2DVoronoi-sub000/internal/dbg"
)

// Padding around the drawing so the outermost edges are visible
const drawPadding = 40

// Above this many triangles, names are too small to read
const maxLabeledTriangles = 64

// Fill colors cycle through this palette, one per graph
var drawPalette = [][3]float64{
	{0.3, 0.2, 1},
	{1, 0.8, 0},
	{0.2, 0.8, 0.4},
	{1, 0.3, 0.3},
	{0.3, 0.8, 1},
	{0.9, 0.4, 0.9},
}

// A Drawing renders graphs and polygons into a PNG. Graphs are filled (one
// palette color each) and stroked; polygons are only stroked, in white, so
// Voronoi cells can be overlaid on the fragments they cut.
type Drawing struct {
	Scale    float64
	Graphs   []*Graph
	Polygons []Polygon
	Points   []Point
}

func (d *Drawing) bounds() Bounds {
	bounds := BoundsOf()
	for _, g := range d.Graphs {
		for _, node := range g.nodes {
			bounds = bounds.Extend(node.Point)
		}
	}
	for _, poly := range d.Polygons {
		for _, p := range poly.Points {
			bounds = bounds.Extend(p)
		}
	}
	for _, p := range d.Points {
		bounds = bounds.Extend(p)
	}
	if bounds.Empty() {
		return Bounds{Max: Point{1, 1}}
	}
	return bounds
}

func (d *Drawing) render() *gg.Context {
	scale := d.Scale
	if scale <= 0 {
		scale = 100
	}
	bounds := d.bounds()
	width := int(math.Ceil(scale*(bounds.Max.X-bounds.Min.X))) + drawPadding*2
	height := int(math.Ceil(scale*(bounds.Max.Y-bounds.Min.Y))) + drawPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale,
	// and move the minimum to the origin
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	c.SetLineWidth(1.5)
	for i, g := range d.Graphs {
		color := drawPalette[i%len(drawPalette)]
		g.draw(c, color)
	}

	c.SetRGB(1, 1, 1)
	for _, poly := range d.Polygons {
		for i, p := range poly.Points {
			if i == 0 {
				c.MoveTo(p.X, p.Y)
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
		c.ClosePath()
		c.Stroke()
	}

	c.SetRGB(1, 0.2, 0.2)
	for _, p := range d.Points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	return c
}

// SavePNG renders the drawing to path.
func (d *Drawing) SavePNG(path string) error {
	return d.render().SavePNG(path)
}

func (g *Graph) draw(c *gg.Context, color [3]float64) {
	for _, id := range g.TriangleIDs() {
		a, b, tc := g.TrianglePoints(id)
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(tc.X, tc.Y)
		c.ClosePath()
		c.SetRGBA(color[0], color[1], color[2], 0.5)
		c.FillPreserve()
		c.SetRGB(color[0], color[1], color[2])
		c.Stroke()
	}

	if g.TriangleCount() > maxLabeledTriangles {
		return
	}
	c.SetRGB(1, 1, 1)
	for _, id := range g.TriangleIDs() {
		center := g.triangles[id].Incircle.Center
		// Text has to be drawn in native coordinates, or it comes out flipped
		x, y := c.TransformPoint(center.X, center.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(id), x, y, 0.5, 0.5)
		c.Pop()
	}
}

// PrintPNG writes an image file to the terminal (iTerm only).
func PrintPNG(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Helper to draw a graph and print it in the terminal for debugging.
func (g *Graph) dbgDraw(scale float64) {
	d := &Drawing{Scale: scale, Graphs: []*Graph{g}}
	if err := d.SavePNG("/tmp/graph.png"); err != nil {
		panic(err)
	}
	PrintPNG("/tmp/graph.png")
}
