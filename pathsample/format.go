package pathsample

import (
	"strconv"
	"strings"

	"github.com/gogpu/lineart"
)

// formatFloat renders v with the shortest representation that parses back
// to the same float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Format renders segments back into an absolute path description.
// Parsing the result yields the same segments.
func Format(segments []Segment) string {
	var sb strings.Builder
	pt := func(p lineart.Point) {
		sb.WriteString(formatFloat(p.X))
		sb.WriteByte(',')
		sb.WriteString(formatFloat(p.Y))
	}
	flag := func(b bool) {
		if b {
			sb.WriteString(" 1")
		} else {
			sb.WriteString(" 0")
		}
	}
	for i, seg := range segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s := seg.(type) {
		case MoveTo:
			sb.WriteByte('M')
			pt(s.To)
		case LineTo:
			sb.WriteByte('L')
			pt(s.To)
		case CubicTo:
			sb.WriteByte('C')
			pt(s.C1)
			sb.WriteByte(' ')
			pt(s.C2)
			sb.WriteByte(' ')
			pt(s.To)
		case QuadTo:
			sb.WriteByte('Q')
			pt(s.C)
			sb.WriteByte(' ')
			pt(s.To)
		case ArcTo:
			sb.WriteByte('A')
			sb.WriteString(formatFloat(s.RX))
			sb.WriteByte(',')
			sb.WriteString(formatFloat(s.RY))
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(s.Rotation))
			flag(s.LargeArc)
			flag(s.Sweep)
			sb.WriteByte(' ')
			pt(s.To)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}
