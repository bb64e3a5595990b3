package tegaki

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/tegaki/imop"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// PreviewOptions controls how strokes are rasterized.
type PreviewOptions struct {
	Size        int     // side length of the output image in pixels
	Supersample int     // factor of the intermediate canvas used for antialiasing
	StrokeWidth float64 // pen width in canvas units
	Summary     bool    // overlay the start-mid-end summary of every stroke
}

var defaultPreviewOptions = PreviewOptions{
	Size:        128,
	Supersample: 4,
	StrokeWidth: 6,
}

var summaryColor = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

func (opt PreviewOptions) withDefaults() PreviewOptions {
	if opt.Size <= 0 {
		opt.Size = defaultPreviewOptions.Size
	}
	if opt.Supersample <= 0 {
		opt.Supersample = defaultPreviewOptions.Supersample
	}
	if opt.StrokeWidth <= 0 {
		opt.StrokeWidth = defaultPreviewOptions.StrokeWidth
	}
	return opt
}

// RenderStrokes draws the strokes on a white square, every stroke in its own hue.
// The strokes are expected in the 200x200 canvas coordinate system.
func RenderStrokes(strokes []Stroke, opt PreviewOptions) *image.NRGBA {
	opt = opt.withDefaults()

	side := opt.Size * opt.Supersample
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	// Every stroke is drawn on its own layer and multiplied onto the canvas,
	// which keeps crossing strokes visible.
	layer := image.NewNRGBA(canvas.Bounds())
	pen := &pen{
		dst:   layer,
		ras:   vector.NewRasterizer(side, side),
		scale: float64(side) / canvasSize,
	}
	flush := func(c imop.Composite) {
		c.Draw(canvas, layer)
		draw.Draw(layer, layer.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}

	for i, s := range strokes {
		hue := 360 * float64(i) / float64(len(strokes))
		col := colorful.Hsv(hue, 0.75, 0.85).Clamped()
		pen.polyline(s, opt.StrokeWidth, col)
		flush(imop.Composite{Op: imop.SrcOver, Blend: imop.Multiply})
	}
	if opt.Summary {
		for _, s := range strokes {
			if len(s) == 0 {
				continue
			}
			start, mid, end := s.Summary()
			pen.polyline(Stroke{start, mid, end}, opt.StrokeWidth/3, summaryColor)
		}
		flush(imop.Composite{Op: imop.SrcOver})
	}

	return imaging.Resize(canvas, opt.Size, opt.Size, imaging.Lanczos)
}

// EncodePreview writes the image as PNG.
func EncodePreview(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// pen strokes paths onto an image. Every segment and joint is rasterized on its
// own, since overlapping paths of opposite orientation would cancel out.
type pen struct {
	dst   draw.Image
	ras   *vector.Rasterizer
	scale float64
}

func (p *pen) polyline(s Stroke, width float64, col color.Color) {
	src := image.NewUniform(col)
	r := width * p.scale / 2
	for i, pt := range s {
		p.dot(pt, r, src)
		if i > 0 {
			p.segment(s[i-1], pt, r, src)
		}
	}
}

// segment fills the rectangle of half width r around the line a-b.
func (p *pen) segment(a, b Point, r float64, src image.Image) {
	a, b = a.Mul(p.scale), b.Mul(p.scale)
	d := b.Sub(a)
	if d.Norm() == 0 {
		return
	}
	n := d.Ortho().Normalize().Mul(r)

	p.ras.Reset(p.dst.Bounds().Dx(), p.dst.Bounds().Dy())
	p.moveTo(a.Add(n))
	p.lineTo(b.Add(n))
	p.lineTo(b.Sub(n))
	p.lineTo(a.Sub(n))
	p.ras.ClosePath()
	p.ras.Draw(p.dst, p.dst.Bounds(), src, image.Point{})
}

// dot fills a regular polygon approximating a disc of radius r around c.
func (p *pen) dot(c Point, r float64, src image.Image) {
	const sides = 12

	c = c.Mul(p.scale)
	p.ras.Reset(p.dst.Bounds().Dx(), p.dst.Bounds().Dy())
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / sides
		v := c.Add(Point{X: math.Cos(theta), Y: math.Sin(theta)}.Mul(r))
		if i == 0 {
			p.moveTo(v)
		} else {
			p.lineTo(v)
		}
	}
	p.ras.ClosePath()
	p.ras.Draw(p.dst, p.dst.Bounds(), src, image.Point{})
}

func (p *pen) moveTo(v Point) { p.ras.MoveTo(float32(v.X), float32(v.Y)) }
func (p *pen) lineTo(v Point) { p.ras.LineTo(float32(v.X), float32(v.Y)) }
