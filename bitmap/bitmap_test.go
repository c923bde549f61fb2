package bitmap

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/lineart"
)

func TestNew(t *testing.T) {
	b, err := New(3, 2, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(b.Data) != 6 || b.At(2, 1) != 0.5 {
		t.Errorf("New() = %+v", b)
	}
	if _, err := New(0, 2, 0); !errors.Is(err, lineart.ErrInvalidParam) {
		t.Errorf("New(0, 2) error = %v, want ErrInvalidParam", err)
	}
}

func TestAt_Clamps(t *testing.T) {
	b := &Bitmap{Width: 2, Height: 2, Data: []float64{0, 0.25, 0.5, 1}}
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0},
		{1, 0, 0.25},
		{0, 1, 0.5},
		{1, 1, 1},
		{-5, -5, 0},
		{9, 9, 1},
		{9, 0, 0.25},
	}
	for _, tt := range tests {
		if got := b.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got := b.Darkness(1, 0); got != 0.75 {
		t.Errorf("Darkness(1, 0) = %v, want 0.75", got)
	}
	b.Set(5, 5, 0.1)
	b.Set(0, 0, 0.9)
	if b.At(0, 0) != 0.9 {
		t.Errorf("Set(0, 0) not stored")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		b    Bitmap
		ok   bool
	}{
		{"valid", Bitmap{Width: 2, Height: 1, Data: []float64{0, 1}}, true},
		{"short data", Bitmap{Width: 2, Height: 2, Data: []float64{0, 1}}, false},
		{"out of range", Bitmap{Width: 1, Height: 1, Data: []float64{1.5}}, false},
		{"NaN", Bitmap{Width: 1, Height: 1, Data: []float64{math.NaN()}}, false},
		{"zero size", Bitmap{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, lineart.ErrInvalidParam) {
				t.Errorf("Validate() error = %v, want ErrInvalidParam", err)
			}
		})
	}
}

func TestFromImage_Uniform(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 51
	}
	b, err := FromImage(img, 100, 100)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if b.Width != 8 || b.Height != 4 {
		t.Fatalf("FromImage() size = %dx%d, want 8x4", b.Width, b.Height)
	}
	for i, v := range b.Data {
		if math.Abs(v-0.2) > 0.01 {
			t.Fatalf("Data[%d] = %v, want 0.2", i, v)
		}
	}
}

func TestFromImage_Downscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := range 100 {
		for x := range 200 {
			v := uint8(x * 255 / 199)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	b, err := FromImage(img, 50, 50)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if b.Width != 50 || b.Height != 25 {
		t.Fatalf("FromImage() size = %dx%d, want 50x25", b.Width, b.Height)
	}
	if left, right := b.At(0, 10), b.At(49, 10); left >= right {
		t.Errorf("gradient lost: left %v >= right %v", left, right)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestFromImage_TransparentIsWhite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b, err := FromImage(img, 10, 10)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	for i, v := range b.Data {
		if v < 0.99 {
			t.Errorf("Data[%d] = %v, want white", i, v)
		}
	}
}

func TestFromImage_Invalid(t *testing.T) {
	if _, err := FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), 10, 10); !errors.Is(err, lineart.ErrInvalidParam) {
		t.Errorf("FromImage(empty) error = %v, want ErrInvalidParam", err)
	}
	if _, err := FromImage(image.NewGray(image.Rect(0, 0, 2, 2)), 0, 10); !errors.Is(err, lineart.ErrInvalidParam) {
		t.Errorf("FromImage(maxW=0) error = %v, want ErrInvalidParam", err)
	}
}

func TestToImage(t *testing.T) {
	b := &Bitmap{Width: 2, Height: 1, Data: []float64{0, 1}}
	img := b.ToImage()
	if img.GrayAt(0, 0).Y != 0 || img.GrayAt(1, 0).Y != 255 {
		t.Errorf("ToImage() = %v", img.Pix)
	}
}

func TestFit_Letterbox(t *testing.T) {
	b := &Bitmap{Width: 2, Height: 1, Data: []float64{0.1, 0.9}}
	m := Fit(b, lineart.NewRect(lineart.Pt(0, 0), lineart.Pt(100, 100)), true)

	want := lineart.NewRect(lineart.Pt(0, 25), lineart.Pt(100, 75))
	if m.Image != want {
		t.Fatalf("Image = %v, want %v", m.Image, want)
	}
	tests := []struct {
		p    lineart.Point
		want float64
	}{
		{lineart.Pt(10, 50), 0.1},
		{lineart.Pt(60, 30), 0.9},
		{lineart.Pt(100, 75), 0.9},
		{lineart.Pt(50, 10), -1},
		{lineart.Pt(50, 90), -1},
	}
	for _, tt := range tests {
		if got := m.Sample(tt.p, -1); got != tt.want {
			t.Errorf("Sample(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFit_Stretch(t *testing.T) {
	b := &Bitmap{Width: 2, Height: 2, Data: []float64{0, 0.25, 0.5, 1}}
	m := Fit(b, lineart.NewRect(lineart.Pt(10, 10), lineart.Pt(110, 210)), false)
	if m.Pixel != lineart.Pt(50, 100) {
		t.Errorf("Pixel = %v, want (50, 100)", m.Pixel)
	}
	if x, y, ok := m.PixelAt(lineart.Pt(70, 150)); !ok || x != 1 || y != 1 {
		t.Errorf("PixelAt() = %d, %d, %v, want 1, 1, true", x, y, ok)
	}
}
