package triangulation

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/pkg/errors"
)

// Padding around the sites so that points on the hull aren't cut off
const drawPadding = 40

type DrawOptions struct {
	// Pixels per unit
	Scale float64
	// Edges for which this returns true are drawn in red instead of cyan
	Highlight func(advanced.Edge) bool
	// Extra points to mark, e.g. queries
	Marks []Point
}

// Render draws the triangulation to a PNG file.
func (t *Triangulation) Render(path string, opts DrawOptions) error {
	c := t.Draw(opts)
	return errors.Wrap(c.SavePNG(path), "saving triangulation image")
}

// Draw the finite part of the triangulation onto a new context, with the
// origin at the bottom left.
func (t *Triangulation) Draw(opts DrawOptions) *gg.Context {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	points := append(append([]Point(nil), t.sites[1:]...), opts.Marks...)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(opts.Scale*(maxX-minX)) + drawPadding*2
	height := int(opts.Scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-minX, -minY)

	// Line widths and radii are in pixels, so undo the scale for them
	pixel := 1 / opts.Scale

	c.SetLineWidth(2 * pixel)
	for _, e := range t.FiniteEdges() {
		a, b := advanced.EdgeVertices(t, e)
		from, to := t.sites[a.Handle()], t.sites[b.Handle()]
		c.MoveTo(from.X, from.Y)
		c.LineTo(to.X, to.Y)
		if opts.Highlight != nil && opts.Highlight(e) {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(0, 1, 1)
		}
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for _, p := range t.sites[1:] {
		c.DrawCircle(p.X, p.Y, 4*pixel)
		c.Fill()
	}

	c.SetRGB(1, 1, 0)
	for _, p := range opts.Marks {
		c.DrawCircle(p.X, p.Y, 3*pixel)
		c.Fill()
	}

	return c
}
