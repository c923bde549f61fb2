// Package icon places small line drawings on the page.
//
// Icons are path descriptions in a 24x24 box. Scatter samples each distinct
// description once per budget through a shared pathsample.Sampler and
// transforms the cached polylines into place.
package icon

import "github.com/gogpu/lineart"

// Box is the edge length of the square every icon is drawn in.
const Box = 24

type entry struct {
	name string
	desc string
}

var builtin = []entry{
	{"circle", "M22,12 A10,10 0 1 1 2,12 A10,10 0 1 1 22,12 Z"},
	{"square", "M3,3 H21 V21 H3 Z"},
	{"triangle", "M12,2.5 L22,20.5 H2 Z"},
	{"star", "M12,2 L14.9,8.6 L22,9.3 L16.6,14 L18.2,21 L12,17.3 L5.8,21 L7.4,14 L2,9.3 L9.1,8.6 Z"},
	{"heart", "M12,21 C5,15.5 2,12 2,8 C2,5 4.5,3 7,3 C9,3 11,4.2 12,6 C13,4.2 15,3 17,3 C19.5,3 22,5 22,8 C22,12 19,15.5 12,21 Z"},
	{"drop", "M12,2 C12,2 5,10 5,14.5 A7,7 0 0 0 19,14.5 C19,10 12,2 12,2 Z"},
	{"leaf", "M4,20 Q4,4 20,4 Q20,20 4,20 Z M4,20 L14,10"},
	{"moon", "M15,2.5 A10,10 0 1 0 21.5,15 A8,8 0 0 1 15,2.5 Z"},
	{"bolt", "M13,2 L4,14 H11 L10,22 L20,9 H13 Z"},
	{"cross", "M4,4 L20,20 M20,4 L4,20"},
	{"plus", "M12,3 V21 M3,12 H21"},
	{"arrow", "M3,12 H20 M14,6 L20,12 L14,18"},
	{"house", "M3,11 L12,3 L21,11 M5,9.5 V21 H19 V9.5 M10,21 V15 H14 V21"},
	{"flower", "M12,12 m0,-3 a3,3 0 1 1 0,6 a3,3 0 1 1 0,-6 Z M12,9 Q9,2 12,2 Q15,2 12,9 M15,12 Q22,9 22,12 Q22,15 15,12 M12,15 Q15,22 12,22 Q9,22 12,15 M9,12 Q2,15 2,12 Q2,9 9,12"},
	{"wave", "M2,12 Q4.5,7 7,12 T12,12 T17,12 T22,12"},
	{"spiral", "M12,12 a1,1 0 0 1 2,0 a2,2 0 0 1 -4,0 a3,3 0 0 1 6,0 a4,4 0 0 1 -8,0 a5,5 0 0 1 10,0 a6,6 0 0 1 -12,0"},
}

// Names returns the built-in icon names in index order.
func Names() []string {
	names := make([]string, len(builtin))
	for i, e := range builtin {
		names[i] = e.name
	}
	return names
}

// Count returns the number of built-in icons.
func Count() int {
	return len(builtin)
}

// Path returns the name and description of the icon at index. The index is
// clamped to the valid range.
func Path(index int) (name, desc string) {
	e := builtin[lineart.ClampInt(index, 0, len(builtin)-1)]
	return e.name, e.desc
}

// Lookup returns the description of the named icon.
func Lookup(name string) (string, bool) {
	for _, e := range builtin {
		if e.name == name {
			return e.desc, true
		}
	}
	return "", false
}
