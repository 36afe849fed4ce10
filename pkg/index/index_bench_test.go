package index

import (
	"testing"

	"github.com/beetlebugorg/intgeom/pkg/geom"
)

// Benchmark R-tree spatial index vs linear scan for region queries.
// This demonstrates the performance improvement from O(n) to O(log n).

// buildLargeIndex creates an index of n unit-16 chunks laid out on a grid.
func buildLargeIndex(n int) *Index {
	idx := New()
	side := int32(1)
	for int(side*side*side) < n {
		side++
	}
	count := 0
	for x := int32(0); x < side && count < n; x++ {
		for y := int32(0); y < side && count < n; y++ {
			for z := int32(0); z < side && count < n; z++ {
				idx.Insert(Entry{
					ID:  "chunk",
					Box: geom.New(geom.Vec3{X: x * 16, Y: y * 16, Z: z * 16}, geom.Vec3{X: x*16 + 15, Y: y*16 + 15, Z: z*16 + 15}),
				})
				count++
			}
		}
	}
	return idx
}

// BenchmarkQuery_Rtree benchmarks region queries with the R-tree index.
func BenchmarkQuery_Rtree(b *testing.B) {
	idx := buildLargeIndex(10000)

	// Small region (typical viewport - a few chunks).
	region := geom.New(geom.Vec3{X: 40, Y: 40, Z: 40}, geom.Vec3{X: 80, Y: 80, Z: 80})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Query(region, QueryOptions{})
	}
}

// BenchmarkQuery_Linear benchmarks the same region query as a linear scan
// over Entries - what callers would do without the index.
func BenchmarkQuery_Linear(b *testing.B) {
	idx := buildLargeIndex(10000)
	entries := idx.Entries()

	region := geom.New(geom.Vec3{X: 40, Y: 40, Z: 40}, geom.Vec3{X: 80, Y: 80, Z: 80})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var hits []Entry
		for _, e := range entries {
			if region.Intersects(e.Box) {
				hits = append(hits, e)
			}
		}
		_ = hits
	}
}
