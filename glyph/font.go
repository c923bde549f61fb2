// Package glyph draws text as sampled glyph outlines.
//
// Text is shaped with the HarfBuzz port from go-text/typesetting and the
// outlines are loaded with golang.org/x/image/font/sfnt, converted to path
// descriptions and sampled with pathsample. Outline coordinates are y-down
// with the origin on the baseline, which matches page coordinates.
package glyph

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/pathsample"
)

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Font holds one parsed font for shaping and outline extraction.
// A Font is safe for concurrent use.
type Font struct {
	shape   *font.Font
	outline *sfnt.Font

	shapers sync.Pool
}

// ParseFont parses TrueType or OpenType data.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse outlines: %w", err)
	}
	f := &Font{shape: face.Font, outline: outline}
	f.shapers.New = func() any {
		return &shaping.HarfbuzzShaper{}
	}
	return f, nil
}

var (
	goRegularOnce sync.Once
	goRegular     *Font
	goRegularErr  error
)

// GoRegular returns the embedded Go Regular font, parsed once.
func GoRegular() (*Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = ParseFont(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// Positioned is a shaped glyph with its pen position relative to the start
// of the line.
type Positioned struct {
	ID      GlyphID
	X, Y    float64
	Advance float64
}

// Shape lays out one line of left-to-right text at size page units per em.
func (f *Font) Shape(text string, size float64) []Positioned {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shape),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.shapers.Put(hb)

	glyphs := make([]Positioned, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Positioned{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit in uint16
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return glyphs
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r != ' ' {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

// Outline returns the outline of id at size as absolute path segments with
// every contour explicitly closed. Blank glyphs yield no segments.
func (f *Font) Outline(id GlyphID, size float64) ([]pathsample.Segment, error) {
	var buf sfnt.Buffer
	segs, err := f.outline.LoadGlyph(&buf, sfnt.GlyphIndex(id), toFixed(size), nil)
	if err != nil {
		return nil, fmt.Errorf("glyph: load glyph %d: %w", id, err)
	}

	var out []pathsample.Segment
	var start lineart.Point
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out = append(out, pathsample.Close{To: start})
			}
			start = toPoint(s.Args[0])
			open = true
			out = append(out, pathsample.MoveTo{To: start})
		case sfnt.SegmentOpLineTo:
			out = append(out, pathsample.LineTo{To: toPoint(s.Args[0])})
		case sfnt.SegmentOpQuadTo:
			out = append(out, pathsample.QuadTo{C: toPoint(s.Args[0]), To: toPoint(s.Args[1])})
		case sfnt.SegmentOpCubeTo:
			out = append(out, pathsample.CubicTo{C1: toPoint(s.Args[0]), C2: toPoint(s.Args[1]), To: toPoint(s.Args[2])})
		}
	}
	if open {
		out = append(out, pathsample.Close{To: start})
	}
	return out, nil
}

// Description returns the outline of id at size as a path description.
func (f *Font) Description(id GlyphID, size float64) (string, error) {
	segs, err := f.Outline(id, size)
	if err != nil {
		return "", err
	}
	return pathsample.Format(segs), nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toPoint(p fixed.Point26_6) lineart.Point {
	return lineart.Pt(fromFixed(p.X), fromFixed(p.Y))
}
