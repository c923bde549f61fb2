package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/lineart"
)

func TestToUnits(t *testing.T) {
	pl := lineart.Polyline{{X: 0, Y: 0}, {X: 0.001, Y: 0}, {X: 1.5, Y: 2.25}}
	xs, ys := toUnits(pl)
	if diff := cmp.Diff([]int{0, 150}, xs); diff != "" {
		t.Errorf("xs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 225}, ys); diff != "" {
		t.Errorf("ys mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSVG(t *testing.T) {
	page := lineart.Page{Width: 100, Height: 50}
	set := lineart.PolylineSet{
		{{X: 10, Y: 10}, {X: 20, Y: 10}},
		{{X: 5, Y: 5}, {X: 5.001, Y: 5}}, // collapses to one point
	}
	var buf bytes.Buffer
	if err := writeSVG(&buf, page, set, 0.3); err != nil {
		t.Fatalf("writeSVG() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`width="100mm"`, `height="50mm"`, `viewBox="0 0 10000 5000"`, "stroke-width:30", "<polyline"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<polyline"); n != 1 {
		t.Errorf("output has %d polylines, want 1", n)
	}
}

func TestNewJob(t *testing.T) {
	page := lineart.Page{Width: 100, Height: 100, Margin: 5}
	for _, name := range generators {
		if _, err := newJob(name, "s", page, "x", newSharedSampler()); err != nil {
			t.Errorf("newJob(%q) error = %v", name, err)
		}
	}
	if _, err := newJob("nope", "s", page, "x", newSharedSampler()); err == nil {
		t.Error(`newJob("nope") error = nil`)
	}
}
