// Package lineart provides deterministic, seedable procedural pattern
// generators that turn numeric parameters into vector line-art: sets of
// polylines suitable for pen plotters or SVG output.
//
// # Overview
//
// Every generator is a pure function of its parameter record and seed.
// Two calls with the same inputs return identical [PolylineSet] values,
// point for point and in the same order.
//
// The root package holds the shared data model ([Point], [Polyline],
// [PolylineSet], [Rect], [Page]), parameter validation helpers, progress
// reporting and logging. The computational core lives in sub-packages:
//
//   - rng: seeded uniform random source and 2D simplex noise
//   - pathsample: parser and flattener for SVG-style path descriptions
//   - flow: field tracing with occupancy-grid spacing, plus the flow-field,
//     streamline and ribbon generators built on it
//
// Supporting generators and collaborators:
//
//   - icon: icon scattering over a jittered lattice
//   - glyph: text lettering from font outlines
//   - bitmap: intensity bitmaps for image-based generators
//   - batch: concurrent execution of independent generator calls
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/lineart/flow"
//	)
//
//	cfg := flow.DefaultFlowFieldConfig()
//	cfg.Seed = "plotter"
//	set, err := flow.FlowField(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(set), "polylines")
//
// # Errors
//
// Generators fail fast with a [*ParamError] when a parameter is not finite
// or lies outside its documented domain. Everything else degrades to
// partial or empty output: a malformed path description samples to
// nothing, degenerate spacings are clamped to [Epsilon].
//
// # Logging
//
// lineart is silent by default. Use [SetLogger] to receive diagnostics.
//
// # Concurrency
//
// Generator calls share no mutable state. Each call builds its own random
// engine and occupancy grid, so independent calls may run on separate
// goroutines without locking.
package lineart
