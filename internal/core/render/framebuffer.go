package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/zeusync/arena/internal/core/systems/physics"
	"github.com/zeusync/arena/pkg/concurrent"
	"github.com/zeusync/arena/pkg/sequence"
)

// Background is the color of pixels covered by no particle.
var Background = physics.Color{R: 255, G: 225, B: 255}

// Framebuffer is a packed 0x00RRGGBB pixel grid.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pix: make([]uint32, width*height)}
}

// bandRows is the number of rows splatted by one goroutine.
const bandRows = 64

// Splat paints every pixel with the color of the first particle containing
// it. A non-nil phantom is painted on top in pink. Row bands are painted in
// parallel; s must not be mutated while Splat runs.
func (f *Framebuffer) Splat(s physics.Snapshot, phantom *physics.Particle) {
	var bands []int
	for y := 0; y < f.Height; y += bandRows {
		bands = append(bands, y)
	}
	concurrent.ParallelMust(sequence.From(bands), func(y0 int) {
		f.splatRows(s, phantom, y0, min(y0+bandRows, f.Height))
	})
}

func (f *Framebuffer) splatRows(s physics.Snapshot, phantom *physics.Particle, y0, y1 int) {
	bg := Background.Packed()
	pink := physics.Pink.Packed()

	for y := y0; y < y1; y++ {
		for x := 0; x < f.Width; x++ {
			pt := physics.V(float32(x), float32(y))

			px := bg
			for i, p := range s.Particles {
				if p.Contains(pt) {
					px = s.Colors[i].Packed()
					break
				}
			}
			if phantom != nil && phantom.Contains(pt) {
				px = pink
			}
			f.Pix[y*f.Width+x] = px
		}
	}
}

// At returns the packed pixel at (x, y).
func (f *Framebuffer) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// Image converts the framebuffer to an RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for idx, px := range f.Pix {
		img.SetRGBA(idx%f.Width, idx/f.Width, color.RGBA{
			R: uint8(px >> 16),
			G: uint8(px >> 8),
			B: uint8(px),
			A: 0xff,
		})
	}
	return img
}

// WritePNG encodes the framebuffer as PNG.
func (f *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// Scaled resamples the framebuffer to width x height with nearest-neighbor
// sampling so particle edges stay hard. Non-positive sizes keep the native size.
func (f *Framebuffer) Scaled(width, height int) *image.RGBA {
	src := f.Image()
	if width <= 0 || height <= 0 || (width == f.Width && height == f.Height) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WriteScaledPNG encodes the framebuffer resampled to width x height.
func (f *Framebuffer) WriteScaledPNG(w io.Writer, width, height int) error {
	return png.Encode(w, f.Scaled(width, height))
}
