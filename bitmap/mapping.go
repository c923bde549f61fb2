package bitmap

import (
	"math"

	"github.com/gogpu/lineart"
)

// Mapping places a bitmap inside a page rectangle.
type Mapping struct {
	bitmap *Bitmap
	// Image is the rectangle the bitmap covers, in page units.
	Image lineart.Rect
	// Pixel is the page size of one bitmap pixel on each axis.
	Pixel lineart.Point
}

// Fit maps b onto target. With letterbox set the aspect ratio is kept and
// the image is centered, leaving empty bands on two sides; otherwise the
// bitmap is stretched to fill target.
func Fit(b *Bitmap, target lineart.Rect, letterbox bool) Mapping {
	img := target
	if letterbox {
		scale := math.Min(target.Width()/float64(b.Width), target.Height()/float64(b.Height))
		w, h := float64(b.Width)*scale, float64(b.Height)*scale
		c := target.Center()
		img = lineart.NewRect(lineart.Pt(c.X-w/2, c.Y-h/2), lineart.Pt(c.X+w/2, c.Y+h/2))
	}
	return Mapping{
		bitmap: b,
		Image:  img,
		Pixel: lineart.Pt(
			lineart.AtLeastEpsilon(img.Width()/float64(b.Width)),
			lineart.AtLeastEpsilon(img.Height()/float64(b.Height)),
		),
	}
}

// PixelAt returns the bitmap pixel under page position p and whether p lies
// on the image.
func (m Mapping) PixelAt(p lineart.Point) (x, y int, ok bool) {
	if !m.Image.Contains(p) {
		return 0, 0, false
	}
	x = int((p.X - m.Image.Min.X) / m.Pixel.X)
	y = int((p.Y - m.Image.Min.Y) / m.Pixel.Y)
	return min(x, m.bitmap.Width-1), min(y, m.bitmap.Height-1), true
}

// Sample returns the nearest-neighbor intensity at p, or outside for
// positions off the image (the letterbox bands).
func (m Mapping) Sample(p lineart.Point, outside float64) float64 {
	x, y, ok := m.PixelAt(p)
	if !ok {
		return outside
	}
	return m.bitmap.At(x, y)
}
