package pathsample

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/cache"
)

const tol = 1e-6

func near(a, b lineart.Point) bool {
	return a.Distance(b) < tol
}

func TestSampleSingle_Line(t *testing.T) {
	s := NewSampler()
	for _, budget := range []int{2, 3, 5, 17, 100} {
		pl := s.SampleSingle("M0,0 L10,0", budget)
		if len(pl) != budget {
			t.Errorf("budget %d: got %d points", budget, len(pl))
		}
		if !near(pl[0], pt(0, 0)) || !near(pl[len(pl)-1], pt(10, 0)) {
			t.Fatalf("budget %d: endpoints %v .. %v", budget, pl[0], pl[len(pl)-1])
		}
		for i := 1; i < len(pl); i++ {
			if pl[i].Y != 0 {
				t.Errorf("point %d off the segment: %v", i, pl[i])
			}
			if pl[i].X <= pl[i-1].X {
				t.Errorf("x not increasing at %d: %v <= %v", i, pl[i].X, pl[i-1].X)
			}
		}
	}
}

func TestSampleSingle_ClosedShape(t *testing.T) {
	s := NewSampler()
	tests := []string{
		"M0,0 L10,0 L10,10 Z",
		"M5,5 h10 v10 h-10 z",
		"M0,0 L10,0 L0,0 Z",
		"M0,0 C0,10 10,10 10,0 Z",
	}
	for _, desc := range tests {
		pl := s.SampleSingle(desc, 50)
		if len(pl) < 2 {
			t.Fatalf("%q: too few points", desc)
		}
		if !near(pl[0], pl[len(pl)-1]) {
			t.Errorf("%q: last point %v, want start %v", desc, pl[len(pl)-1], pl[0])
		}
	}
}

func TestSampleSingle_BudgetClamp(t *testing.T) {
	s := NewSampler()
	if pl := s.SampleSingle("M0,0 L10,0", 0); len(pl) != MinBudget {
		t.Errorf("budget 0: got %d points, want %d", len(pl), MinBudget)
	}
	if pl := s.SampleSingle("M0,0 L10,0", 100000); len(pl) != MaxBudget {
		t.Errorf("budget 100000: got %d points, want %d", len(pl), MaxBudget)
	}
}

func TestSampleSingle_ProportionalBudget(t *testing.T) {
	s := NewSampler()
	// First segment is 9x longer than the second.
	pl := s.SampleSingle("M0,0 L90,0 L90,10", 101)
	onFirst := 0
	for _, p := range pl {
		if p.Y == 0 && p.X > 0 {
			onFirst++
		}
	}
	if onFirst < 85 || onFirst > 95 {
		t.Errorf("first segment got %d points, want ~90", onFirst)
	}
}

func TestSampleSingle_MinimumOneStepPerSegment(t *testing.T) {
	s := NewSampler()
	pl := s.SampleSingle("M0,0 L1000,0 L1000,0.001", 10)
	if !near(pl[len(pl)-1], pt(1000, 0.001)) {
		t.Errorf("short segment dropped: last point %v", pl[len(pl)-1])
	}
}

func TestSampleSingle_Dedupe(t *testing.T) {
	s := NewSampler()
	pl := s.SampleSingle("M0,0 L0,0 L5,0 L5,0 L10,0", 20)
	for i := 1; i < len(pl); i++ {
		if pl[i].Distance(pl[i-1]) < dedupeEpsilon {
			t.Fatalf("duplicate consecutive points at %d: %v", i, pl[i])
		}
	}
}

func TestSampleSingle_Cubic(t *testing.T) {
	s := NewSampler()
	pl := s.SampleSingle("M0,0 C0,10 10,10 10,0", 41)
	if !near(pl[0], pt(0, 0)) || !near(pl[len(pl)-1], pt(10, 0)) {
		t.Fatalf("endpoints %v .. %v", pl[0], pl[len(pl)-1])
	}
	// The midpoint of this symmetric cubic is (5, 7.5).
	mid := pl[len(pl)/2]
	if math.Abs(mid.X-5) > 0.5 || math.Abs(mid.Y-7.5) > 0.2 {
		t.Errorf("midpoint %v, want ~(5, 7.5)", mid)
	}
}

func TestSampleSingle_Quadratic(t *testing.T) {
	s := NewSampler()
	pl := s.SampleSingle("M0,0 Q5,10 10,0", 21)
	mid := pl[len(pl)/2]
	if math.Abs(mid.X-5) > 0.5 || math.Abs(mid.Y-5) > 0.2 {
		t.Errorf("midpoint %v, want ~(5, 5)", mid)
	}
}

func TestSampleSingle_Semicircle(t *testing.T) {
	s := NewSampler()
	center := pt(5, 0)
	pl := s.SampleSingle("M0,0 A5,5 0 0 1 10,0", 33)
	if !near(pl[0], pt(0, 0)) || !near(pl[len(pl)-1], pt(10, 0)) {
		t.Fatalf("endpoints %v .. %v", pl[0], pl[len(pl)-1])
	}
	for i, p := range pl {
		if d := p.Distance(center); math.Abs(d-5) > tol {
			t.Errorf("point %d at distance %v from center, want 5", i, d)
		}
		if p.Y > tol {
			t.Errorf("point %d on the wrong side: %v", i, p)
		}
	}
	if mid := pl[16]; !near(mid, pt(5, -5)) {
		t.Errorf("midpoint %v, want (5, -5)", mid)
	}
}

func TestSampleSingle_ArcSweepFlag(t *testing.T) {
	s := NewSampler()
	pl := s.SampleSingle("M0,0 A5,5 0 0 0 10,0", 33)
	if mid := pl[16]; !near(mid, pt(5, 5)) {
		t.Errorf("midpoint %v, want (5, 5)", mid)
	}
}

func TestSampleSingle_ArcRadiusScaleUp(t *testing.T) {
	s := NewSampler()
	// Radius 1 cannot span a chord of 10; it is scaled to 5.
	pl := s.SampleSingle("M0,0 A1,1 0 0 1 10,0", 33)
	for i, p := range pl {
		if d := p.Distance(pt(5, 0)); math.Abs(d-5) > tol {
			t.Fatalf("point %d at distance %v, want 5", i, d)
		}
	}
}

func TestSampleSingle_LargeArc(t *testing.T) {
	s := NewSampler()
	// Quarter chord of a radius-10 circle: the large arc sweeps 270 degrees.
	small := s.SampleSingle("M10,0 A10,10 0 0 1 0,10", 100)
	large := s.SampleSingle("M10,0 A10,10 0 1 1 0,10", 100)
	ls, ll := small.Length(), large.Length()
	if math.Abs(ls-10*math.Pi/2) > 0.05 {
		t.Errorf("small arc length %v, want %v", ls, 10*math.Pi/2)
	}
	if math.Abs(ll-10*3*math.Pi/2) > 0.1 {
		t.Errorf("large arc length %v, want %v", ll, 10*3*math.Pi/2)
	}
}

func TestSampleSingle_ZeroRadiusArcIsLine(t *testing.T) {
	s := NewSampler()
	pl := s.SampleSingle("M0,0 A0,5 0 0 1 10,0", 11)
	for _, p := range pl {
		if p.Y != 0 {
			t.Fatalf("zero-radius arc left the chord: %v", p)
		}
	}
}

func TestSampleSingle_Malformed(t *testing.T) {
	s := NewSampler()
	for _, desc := range []string{"", "garbage", "L1,1", "M5,5", "M0,0 L0,0"} {
		if pl := s.SampleSingle(desc, 50); len(pl) != 0 {
			t.Errorf("%q: got %d points, want none", desc, len(pl))
		}
	}
	// Truncated input keeps what was parsed.
	if pl := s.SampleSingle("M0,0 L10,0 C1", 10); len(pl) != 10 {
		t.Errorf("partial parse: got %d points, want 10", len(pl))
	}
}

func TestSampleSingle_CacheReturnsCopies(t *testing.T) {
	s := NewSampler()
	a := s.SampleSingle("M0,0 L10,10", 5)
	a[0] = pt(99, 99)
	b := s.SampleSingle("M0,0 L10,10", 5)
	if !near(b[0], pt(0, 0)) {
		t.Errorf("cached result was mutated through a returned copy: %v", b[0])
	}
	st, ok := s.Stats()
	if !ok {
		t.Fatal("default cache should expose stats")
	}
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 1/1", st.Hits, st.Misses)
	}
}

func TestSampler_SharedCache(t *testing.T) {
	shared := cache.NewSharded[CacheKey, lineart.Polyline](32, HashKey)
	a := NewSampler(WithCache(shared))
	b := NewSampler(WithCache(shared))
	a.SampleSingle("M0,0 L1,1", 4)
	b.SampleSingle("M0,0 L1,1", 4)
	if st := shared.Stats(); st.Hits != 1 {
		t.Errorf("shared cache hits = %d, want 1", st.Hits)
	}
}

func TestSampler_Concurrent(t *testing.T) {
	s := NewSampler(WithCache(cache.NewSharded[CacheKey, lineart.Polyline](32, HashKey)))
	want := s.SampleSingle("M0,0 C0,10 10,10 10,0", 30)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				got := s.SampleSingle("M0,0 C0,10 10,10 10,0", 30)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("concurrent sample differs:\n%s", diff)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSampleMulti(t *testing.T) {
	s := NewSampler()
	set := s.SampleMulti("M0,0 L30,0 M0,10 L10,10", 42)
	if len(set) != 2 {
		t.Fatalf("got %d polylines, want 2", len(set))
	}
	if len(set[0]) <= len(set[1]) {
		t.Errorf("longer sub-path got %d points, shorter %d", len(set[0]), len(set[1]))
	}
	if !near(set[1][0], pt(0, 10)) || !near(set[1][len(set[1])-1], pt(10, 10)) {
		t.Errorf("second sub-path endpoints %v .. %v", set[1][0], set[1][len(set[1])-1])
	}
}

func TestSampleMulti_MinimumPoints(t *testing.T) {
	s := NewSampler()
	set := s.SampleMulti("M0,0 L1000,0 M0,5 L0.01,5", 10)
	if len(set) != 2 {
		t.Fatalf("got %d polylines, want 2", len(set))
	}
	if len(set[1]) < 2 {
		t.Errorf("short sub-path has %d points, want >= 2", len(set[1]))
	}
}

func TestSampleMulti_Empty(t *testing.T) {
	s := NewSampler()
	for _, desc := range []string{"", "nonsense", "L1,1 L2,2"} {
		if set := s.SampleMulti(desc, 100); len(set) != 0 {
			t.Errorf("%q: got %d polylines, want none", desc, len(set))
		}
	}
}

func TestSampleMulti_Deterministic(t *testing.T) {
	desc := "M10,10 C20,0 30,20 40,10 S60,0 70,10 M10,40 A15,10 30 1 1 50,40 Z m5,5 l10,0"
	a := NewSampler().SampleMulti(desc, 200)
	b := NewSampler().SampleMulti(desc, 200)
	if diff := cmp.Diff(a, b, cmpopts.EquateApprox(0, 0)); diff != "" {
		t.Errorf("SampleMulti not deterministic:\n%s", diff)
	}
	if len(a) != 3 {
		t.Errorf("got %d polylines, want 3", len(a))
	}
}

func TestSplitSubpaths(t *testing.T) {
	got := SplitSubpaths("M0,0 L1,1 M2,2 L3,3")
	want := []string{"M0,0 L1,1", "M2,2 L3,3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitSubpaths mismatch (-want +got):\n%s", diff)
	}
	for _, s := range got {
		if !strings.HasPrefix(s, "M") {
			t.Errorf("sub-path %q does not start with M", s)
		}
	}
}

func TestSplitSubpaths_RelativeMove(t *testing.T) {
	got := SplitSubpaths("M1,1 L5,1 m0,4 1,0")
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2: %q", len(got), got)
	}
	segs, err := Parse(got[1])
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{MoveTo{pt(5, 5)}, LineTo{pt(6, 5)}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("relative move resolved wrong (-want +got):\n%s", diff)
	}
}

func TestSplitSubpaths_RelativeMoveAfterClose(t *testing.T) {
	got := SplitSubpaths("M10,10 h5 v5 z m1,1 h2")
	segs, _ := Parse(got[1])
	if len(segs) == 0 || !near(segs[0].End(), pt(11, 11)) {
		t.Errorf("move after close resolved to %v, want (11, 11)", segs)
	}
}

func TestSplitSubpaths_Edge(t *testing.T) {
	if got := SplitSubpaths(""); len(got) != 0 {
		t.Errorf("empty description: %q", got)
	}
	if got := SplitSubpaths("L1,1 M0,0 L2,2"); len(got) != 1 || got[0] != "M0,0 L2,2" {
		t.Errorf("leading garbage not dropped: %q", got)
	}
}

func BenchmarkSampleSingle_Uncached(b *testing.B) {
	segs, _ := Parse("M10,10 C20,0 30,20 40,10 S60,0 70,10 A15,10 30 1 1 50,40 Q60,60 70,40 Z")
	for b.Loop() {
		Sample(segs, 200)
	}
}
