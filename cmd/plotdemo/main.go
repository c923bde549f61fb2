// Command plotdemo renders the lineart generators to SVG files for a pen
// plotter.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/batch"
	"github.com/gogpu/lineart/cache"
	"github.com/gogpu/lineart/flow"
	"github.com/gogpu/lineart/glyph"
	"github.com/gogpu/lineart/icon"
	"github.com/gogpu/lineart/pathsample"
)

var generators = []string{"flowfield", "streamlines", "ribbons", "icons", "lettering"}

func main() {
	var (
		gens    = flag.String("gen", strings.Join(generators, ","), "comma-separated generators to run")
		seed    = flag.String("seed", "plotdemo", "random seed")
		width   = flag.Float64("width", 210, "page width in mm")
		height  = flag.Float64("height", 297, "page height in mm")
		margin  = flag.Float64("margin", 15, "page margin in mm")
		text    = flag.String("text", "lineart", "text for the lettering generator")
		outDir  = flag.String("out", ".", "output directory")
		workers = flag.Int("workers", 0, "concurrent generators (0 = GOMAXPROCS)")
		stroke  = flag.Float64("stroke", 0.3, "pen width in mm")
		verbose = flag.Bool("v", false, "log generator details to stderr")
	)
	flag.Parse()

	if *verbose {
		lineart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	page := lineart.Page{Width: *width, Height: *height, Margin: *margin}
	if err := page.Validate(); err != nil {
		log.Fatalf("Invalid page: %v", err)
	}

	// Icon and lettering jobs run concurrently and sample the same
	// descriptions, so they share one sharded cache.
	sampler := newSharedSampler()

	var jobs []batch.Job
	for _, name := range strings.Split(*gens, ",") {
		job, err := newJob(strings.TrimSpace(name), *seed, page, *text, sampler)
		if err != nil {
			log.Fatal(err)
		}
		jobs = append(jobs, job)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, jobs,
		batch.WithWorkers(*workers),
		batch.WithProgress(func(f float64) { fmt.Fprintf(os.Stderr, "\r%3.0f%%", f*100) }),
	)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Printf("Interrupted: %v", err)
	}

	failed := false
	for _, r := range results {
		switch {
		case r.Skipped:
			log.Printf("%s: skipped", r.Name)
		case r.Err != nil:
			log.Printf("%s: %v", r.Name, r.Err)
			failed = true
		default:
			path := filepath.Join(*outDir, r.Name+".svg")
			if err := writeFile(path, page, r.Set, *stroke); err != nil {
				log.Printf("%s: %v", r.Name, err)
				failed = true
				continue
			}
			log.Printf("%s: %d polylines, %d points in %v -> %s", r.Name, len(r.Set), r.Set.PointCount(), r.Elapsed, path)
		}
	}
	if st, ok := sampler.Stats(); ok {
		lineart.Logger().Debug("plotdemo: sampler cache",
			slog.Int("entries", st.Len),
			slog.Uint64("hits", st.Hits),
			slog.Uint64("misses", st.Misses),
			slog.Float64("hitRate", st.HitRate()))
	}
	if failed {
		os.Exit(1)
	}
}

// sharedCacheShardCapacity is the per-shard capacity of the demo's sampler
// cache.
const sharedCacheShardCapacity = 256

func newSharedSampler() *pathsample.Sampler {
	return pathsample.NewSampler(pathsample.WithCache(
		cache.NewSharded[pathsample.CacheKey, lineart.Polyline](sharedCacheShardCapacity, pathsample.HashKey)))
}

func newJob(name, seed string, page lineart.Page, text string, sampler *pathsample.Sampler) (batch.Job, error) {
	switch name {
	case "flowfield":
		cfg := flow.DefaultFlowFieldConfig()
		cfg.Seed, cfg.Page = seed, page
		return batch.Generator(name, cfg, flow.FlowField), nil
	case "streamlines":
		cfg := flow.DefaultStreamlinesConfig()
		cfg.Seed, cfg.Page = seed, page
		return batch.Generator(name, cfg, flow.Streamlines), nil
	case "ribbons":
		cfg := flow.DefaultRibbonsConfig()
		cfg.Seed, cfg.Page = seed, page
		return batch.Generator(name, cfg, flow.Ribbons), nil
	case "icons":
		cfg := icon.DefaultScatterConfig()
		cfg.Seed, cfg.Page = seed, page
		return batch.Generator(name, cfg, func(cfg icon.ScatterConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
			return icon.ScatterWith(sampler, cfg, opts...)
		}), nil
	case "lettering":
		cfg := glyph.DefaultLetteringConfig()
		cfg.Seed, cfg.Page, cfg.Text = seed, page, text
		return batch.Generator(name, cfg, func(cfg glyph.LetteringConfig, opts ...lineart.Option) (lineart.PolylineSet, error) {
			f, err := glyph.GoRegular()
			if err != nil {
				return nil, err
			}
			return f.Lettering(sampler, cfg, opts...)
		}), nil
	}
	return batch.Job{}, fmt.Errorf("unknown generator %q (available: %s)", name, strings.Join(generators, ", "))
}

func writeFile(path string, page lineart.Page, set lineart.PolylineSet, stroke float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeSVG(f, page, set, stroke); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
