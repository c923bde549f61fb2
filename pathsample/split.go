package pathsample

import (
	"strings"

	"github.com/gogpu/lineart"
	"github.com/tdewolff/parse/v2/strconv"
)

// SplitSubpaths splits a path description at every move command so that
// each returned description starts with its own move.
//
// A relative move that opens a later sub-path is rewritten as an absolute
// move resolved against the end of the preceding sub-path, which keeps each
// piece meaningful when parsed on its own. Anything before the first move
// is dropped.
func SplitSubpaths(desc string) []string {
	var pieces []string
	start := -1
	for i := 0; i < len(desc); i++ {
		if desc[i] != 'M' && desc[i] != 'm' {
			continue
		}
		if start >= 0 {
			pieces = appendPiece(pieces, desc[start:i])
		}
		start = i
	}
	if start >= 0 {
		pieces = appendPiece(pieces, desc[start:])
	}

	var cur lineart.Point
	for k, piece := range pieces {
		if k > 0 && piece[0] == 'm' {
			piece = absolutizeMove(piece, cur)
			pieces[k] = piece
		}
		segs, _ := Parse(piece)
		if len(segs) > 0 {
			cur = segs[len(segs)-1].End()
		}
	}
	return pieces
}

func appendPiece(pieces []string, piece string) []string {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return pieces
	}
	return append(pieces, piece)
}

// absolutizeMove rewrites a leading "m dx,dy ..." relative to cur into
// "M x,y l ...". Pieces whose move arguments cannot be read are returned
// unchanged; Parse will reject them later.
func absolutizeMove(piece string, cur lineart.Point) string {
	b := []byte(piece)
	i := 1
	var args [2]float64
	for j := range args {
		i = skipSeparators(b, i)
		if i >= len(b) {
			return piece
		}
		v, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return piece
		}
		args[j] = v
		i += n
	}
	abs := cur.Add(lineart.Pt(args[0], args[1]))

	var sb strings.Builder
	sb.WriteString("M")
	sb.WriteString(formatFloat(abs.X))
	sb.WriteString(",")
	sb.WriteString(formatFloat(abs.Y))
	rest := piece[i:]
	if r := skipSeparators(b, i); r < len(b) && isNumberStart(b[r]) {
		// Implicit pairs after a relative move are relative lines.
		sb.WriteString(" l")
	}
	sb.WriteString(rest)
	return sb.String()
}
