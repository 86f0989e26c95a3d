package devour

import (
	"image"
	"image/color"
	"image/draw"

	xvector "golang.org/x/image/vector"
)

// Scene colors. The task's visual vocabulary is fixed: white canvas, red
// targets, black eater.
var (
	colorBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorTarget     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorEater      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// Renderer rasterizes scene snapshots to images. A Renderer reuses its
// rasterizer across calls and is not safe for concurrent use.
type Renderer struct {
	width  int
	height int
	raster *xvector.Rasterizer
}

// NewRenderer creates a renderer for the given canvas size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		raster: xvector.NewRasterizer(width, height),
	}
}

// Render draws the scene: background first, then visible targets, then the
// eater on top (matching its role as the moving foreground disc).
func (r *Renderer) Render(s Scene) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	for _, t := range s.Targets {
		if !t.Visible {
			continue
		}
		r.fillDisc(img, t.Center, t.Radius, colorTarget)
	}
	if s.Eater.Visible {
		r.fillDisc(img, s.Eater.Center, s.Eater.Radius, colorEater)
	}
	return img
}

// kappa is the cubic Bezier control offset approximating a quarter circle.
const kappa = 0.552284749831

// fillDisc rasterizes an anti-aliased filled circle onto dst.
func (r *Renderer) fillDisc(dst *image.NRGBA, center Vec2, radius float64, c color.NRGBA) {
	z := r.raster
	z.Reset(r.width, r.height)
	z.DrawOp = draw.Over

	cx, cy := float32(center.X), float32(center.Y)
	rad := float32(radius)
	k := float32(kappa) * rad

	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()

	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
