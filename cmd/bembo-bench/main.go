// bembo-bench measures render throughput and allocation behavior of the
// bembo renderer against a handful of synthetic document shapes: deep
// nesting, wide concatenation, and long separator-joined lists.
package main

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/phroun/bembo"
	"github.com/phroun/bembo/internal/config"
)

const (
	deepNestDepth   = 2000
	wideConcatWidth = 100000
	longListLength  = 50000
	renderIterations = 50
)

// BenchResult is one reported row; String renders it in the same
// fixed-width tabular style used by the pack's other benchmark tools.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	cfg, err := config.Parse(nil)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}
	if level, lerr := log.ParseLevel(cfg.LogLevel); lerr == nil {
		log.SetLevel(level)
	}

	fmt.Println("bembo Benchmark")
	fmt.Println("===============")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Printf("Page width: %d\n", cfg.Width)
	fmt.Println()

	var results []BenchResult

	runBench := func(name string, fn func() BenchResult) {
		fmt.Printf("  %-40s ", name+"...")
		result := fn()
		fmt.Printf("%v\n", result.Duration.Round(time.Millisecond))
		results = append(results, result)
	}

	fmt.Println("Construction:")
	var deep, wide, list bembo.Doc
	runBench("Build deeply nested document", func() BenchResult {
		start := time.Now()
		deep = buildDeepNest(deepNestDepth)
		return BenchResult{Name: "Build deeply nested document", Duration: time.Since(start), Extra: fmt.Sprintf("depth=%d", deepNestDepth)}
	})
	runBench("Build wide concatenation", func() BenchResult {
		start := time.Now()
		wide = buildWideConcat(wideConcatWidth)
		return BenchResult{Name: "Build wide concatenation", Duration: time.Since(start), Extra: fmt.Sprintf("width=%d", wideConcatWidth)}
	})
	runBench("Build long sep-joined list", func() BenchResult {
		start := time.Now()
		list = buildLongList(longListLength)
		return BenchResult{Name: "Build long sep-joined list", Duration: time.Since(start), Extra: fmt.Sprintf("items=%d", longListLength)}
	})

	fmt.Println("\nRendering:")
	runBench("Render deeply nested document", func() BenchResult { return benchRender("Render deeply nested document", deep, cfg.Width) })
	runBench("Render wide concatenation", func() BenchResult { return benchRender("Render wide concatenation", wide, cfg.Width) })
	runBench("Render long sep-joined list", func() BenchResult { return benchRender("Render long sep-joined list", list, cfg.Width) })
	runBench("Render long sep-joined list (narrow)", func() BenchResult { return benchRender("Render long sep-joined list (narrow)", list, 40) })

	fmt.Println("\nSUMMARY")
	fmt.Println("=======")
	for _, r := range results {
		fmt.Println(r)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println()
	fmt.Printf("Peak heap allocation: %d MB\n", m.HeapSys/(1024*1024))
	fmt.Printf("Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
}

// buildDeepNest builds a right-leaning chain of Group(Nest(...)) levels,
// each adding one SoftLine, around a single Text leaf, stressing the
// renderer's work-stack depth.
func buildDeepNest(depth int) bembo.Doc {
	d := bembo.Text("leaf")
	for i := 0; i < depth; i++ {
		d = bembo.Group(bembo.Nest(2, bembo.SoftLine().Append(d)))
	}
	return d
}

// buildWideConcat builds a single flat Concat of many small Text nodes,
// stressing the renderer's per-node dispatch overhead rather than its
// recursion depth.
func buildWideConcat(n int) bembo.Doc {
	docs := make([]bembo.Doc, n)
	for i := range docs {
		docs[i] = bembo.Textf("%d", i)
	}
	return bembo.Concat(docs...)
}

// buildLongList builds a Sep-joined list of words, stressing the
// fit-predicate's lookahead into the renderer's pending stack across many
// consecutive Group choices.
func buildLongList(n int) bembo.Doc {
	docs := make([]bembo.Doc, n)
	for i := range docs {
		docs[i] = bembo.Textf("item%d", i)
	}
	sep := bembo.Char(',').Append(bembo.SoftLine())
	return bembo.Sep(sep, docs...)
}

func benchRender(name string, d bembo.Doc, width int) BenchResult {
	start := time.Now()
	var size int
	for i := 0; i < renderIterations; i++ {
		size = len(d.Pretty(width))
	}
	return BenchResult{
		Name:     name,
		Duration: time.Since(start),
		Ops:      renderIterations,
		Extra:    fmt.Sprintf("%d bytes/render, width=%d", size, width),
	}
}
