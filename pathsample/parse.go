package pathsample

import (
	"errors"
	"fmt"

	"github.com/gogpu/lineart"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrMalformed is wrapped by every error returned from Parse.
var ErrMalformed = errors.New("pathsample: malformed path description")

// arity is the number of arguments each command consumes (uppercase key).
var arity = [128]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// skipSeparators returns the index of the next byte that is neither
// whitespace nor a comma.
func skipSeparators(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			i++
		default:
			return i
		}
	}
	return i
}

// curveKind tracks which family the previous command belonged to so
// smooth commands know whether to reflect the stored control point.
type curveKind uint8

const (
	curveNone curveKind = iota
	curveCubic
	curveQuad
)

// parser holds the running state of one Parse call.
type parser struct {
	b        []byte
	i        int
	cur      lineart.Point
	start    lineart.Point
	ctrl     lineart.Point
	kind     curveKind
	args     [7]float64
	segments []Segment
}

// Parse resolves a path description into absolute segments.
//
// The grammar is the SVG path data mini-language: commands M L H V C S Q T
// A Z in absolute (uppercase) and relative (lowercase) form, numbers
// separated by optional whitespace or commas, implicit repetition of the
// previous command, and packed arc flags.
//
// Parse is forgiving. Unknown letters are skipped together with any numbers
// that follow them. A description that does not start with a move command
// yields no segments. On a truncated argument list Parse returns the
// segments resolved so far together with an error wrapping ErrMalformed.
func Parse(desc string) ([]Segment, error) {
	p := &parser{b: []byte(desc)}
	err := p.run()
	return p.segments, err
}

func (p *parser) run() error {
	var cmd byte
	started := false
	for {
		p.i = skipSeparators(p.b, p.i)
		if p.i >= len(p.b) {
			return nil
		}
		c := p.b[p.i]
		switch {
		case isCommand(c):
			cmd = c
			p.i++
		case isLetter(c):
			// Unknown command: skip it and discard its arguments.
			cmd = 0
			p.i++
			continue
		case isNumberStart(c) && cmd != 0 && upper(cmd) != 'Z':
			// Implicit repetition of the previous command.
		default:
			p.i++
			continue
		}

		if !started {
			if upper(cmd) != 'M' {
				return fmt.Errorf("%w: must start with a move command, got %q", ErrMalformed, cmd)
			}
			started = true
		}

		if err := p.readArgs(cmd); err != nil {
			return err
		}
		p.apply(cmd)

		// Extra coordinate pairs after a move are line commands.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

// readArgs consumes the arguments of cmd into p.args.
func (p *parser) readArgs(cmd byte) error {
	n := arity[upper(cmd)]
	for j := range n {
		p.i = skipSeparators(p.b, p.i)
		if upper(cmd) == 'A' && (j == 3 || j == 4) {
			if p.i >= len(p.b) || (p.b[p.i] != '0' && p.b[p.i] != '1') {
				return fmt.Errorf("%w: arc flag expected at offset %d", ErrMalformed, p.i)
			}
			p.args[j] = float64(p.b[p.i] - '0')
			p.i++
			continue
		}
		if p.i >= len(p.b) {
			return fmt.Errorf("%w: command %q needs %d numbers", ErrMalformed, cmd, n)
		}
		v, m := strconv.ParseFloat(p.b[p.i:])
		if m == 0 {
			return fmt.Errorf("%w: number expected at offset %d", ErrMalformed, p.i)
		}
		p.args[j] = v
		p.i += m
	}
	return nil
}

// abs resolves the coordinate pair at args[k], args[k+1].
func (p *parser) abs(relative bool, k int) lineart.Point {
	pt := lineart.Pt(p.args[k], p.args[k+1])
	if relative {
		pt = pt.Add(p.cur)
	}
	return pt
}

// reflect returns the reflection of the stored control point through the
// current point, or the current point itself when the previous command was
// not of the wanted family.
func (p *parser) reflect(want curveKind) lineart.Point {
	if p.kind != want {
		return p.cur
	}
	return p.cur.Mul(2).Sub(p.ctrl)
}

func (p *parser) apply(cmd byte) {
	rel := cmd >= 'a'
	var seg Segment
	kind := curveNone

	switch upper(cmd) {
	case 'M':
		to := p.abs(rel, 0)
		seg = MoveTo{To: to}
		p.start = to
	case 'L':
		seg = LineTo{To: p.abs(rel, 0)}
	case 'H':
		x := p.args[0]
		if rel {
			x += p.cur.X
		}
		seg = LineTo{To: lineart.Pt(x, p.cur.Y)}
	case 'V':
		y := p.args[0]
		if rel {
			y += p.cur.Y
		}
		seg = LineTo{To: lineart.Pt(p.cur.X, y)}
	case 'C':
		c := CubicTo{C1: p.abs(rel, 0), C2: p.abs(rel, 2), To: p.abs(rel, 4)}
		seg, kind, p.ctrl = c, curveCubic, c.C2
	case 'S':
		c := CubicTo{C1: p.reflect(curveCubic), C2: p.abs(rel, 0), To: p.abs(rel, 2)}
		seg, kind, p.ctrl = c, curveCubic, c.C2
	case 'Q':
		q := QuadTo{C: p.abs(rel, 0), To: p.abs(rel, 2)}
		seg, kind, p.ctrl = q, curveQuad, q.C
	case 'T':
		q := QuadTo{C: p.reflect(curveQuad), To: p.abs(rel, 0)}
		seg, kind, p.ctrl = q, curveQuad, q.C
	case 'A':
		seg = ArcTo{
			RX:       p.args[0],
			RY:       p.args[1],
			Rotation: p.args[2],
			LargeArc: p.args[3] != 0,
			Sweep:    p.args[4] != 0,
			To:       p.abs(rel, 5),
		}
	case 'Z':
		seg = Close{To: p.start}
	}

	p.segments = append(p.segments, seg)
	p.cur = seg.End()
	p.kind = kind
}
