// Package bitmap holds grayscale intensity grids for image-driven
// generators and maps page positions onto them.
package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/lineart"
)

// Bitmap is a row-major grid of intensities in [0, 1]: 0 is black, 1 is
// white.
type Bitmap struct {
	Width, Height int
	Data          []float64
}

// New returns a bitmap of the given size filled with v.
func New(width, height int, v float64) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, &lineart.ParamError{Field: "size", Value: float64(min(width, height)), Reason: "must be positive"}
	}
	data := make([]float64, width*height)
	for i := range data {
		data[i] = v
	}
	return &Bitmap{Width: width, Height: height, Data: data}, nil
}

// Validate checks the dimensions against the data length and that every
// intensity is finite and within [0, 1].
func (b *Bitmap) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return &lineart.ParamError{Field: "size", Value: float64(min(b.Width, b.Height)), Reason: "must be positive"}
	}
	if len(b.Data) != b.Width*b.Height {
		return fmt.Errorf("%w: bitmap data has %d entries, want %d", lineart.ErrInvalidParam, len(b.Data), b.Width*b.Height)
	}
	for i, v := range b.Data {
		if err := lineart.CheckRange(fmt.Sprintf("data[%d]", i), v, 0, 1); err != nil {
			return err
		}
	}
	return nil
}

// At returns the intensity at pixel (x, y). Coordinates are clamped to the
// bitmap.
func (b *Bitmap) At(x, y int) float64 {
	x = lineart.ClampInt(x, 0, b.Width-1)
	y = lineart.ClampInt(y, 0, b.Height-1)
	return b.Data[y*b.Width+x]
}

// Set stores v at pixel (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Data[y*b.Width+x] = v
}

// Darkness returns 1 - At(x, y).
func (b *Bitmap) Darkness(x, y int) float64 {
	return 1 - b.At(x, y)
}

// FromImage converts img to a bitmap no larger than maxW x maxH, keeping
// the aspect ratio. Images larger than the limit are scaled down with
// Catmull-Rom; smaller ones are converted at their own size. Intensity is
// luminance with alpha composited over white.
func FromImage(img image.Image, maxW, maxH int) (*Bitmap, error) {
	src := img.Bounds()
	if src.Empty() {
		return nil, fmt.Errorf("%w: empty image", lineart.ErrInvalidParam)
	}
	if maxW < 1 || maxH < 1 {
		return nil, &lineart.ParamError{Field: "maxSize", Value: float64(min(maxW, maxH)), Reason: "must be positive"}
	}

	w, h := src.Dx(), src.Dy()
	if w > maxW || h > maxH {
		scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
		w = max(1, int(float64(w)*scale))
		h = max(1, int(float64(h)*scale))
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)

	b := &Bitmap{Width: w, Height: h, Data: make([]float64, w*h)}
	for y := range h {
		for x := range w {
			b.Data[y*w+x] = float64(dst.GrayAt(x, y).Y) / 255
		}
	}
	return b, nil
}

// ToImage renders b as an 8-bit grayscale image.
func (b *Bitmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		for x := range b.Width {
			v := lineart.Clamp(b.Data[y*b.Width+x], 0, 1)
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}
