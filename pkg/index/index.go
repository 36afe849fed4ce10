// Package index provides fast spatial queries over collections of labeled
// integer bounding boxes.
package index

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/intgeom/pkg/geom"
)

// Index stores labeled boxes and answers region queries through an R-tree
// spatial index.
//
// Spatial queries are O(log N) with the R-tree, compared to O(N) with a
// linear scan over Entries.
//
// An Index is not safe for concurrent mutation; build it, then query it
// from as many goroutines as you like.
//
// Example:
//
//	idx := index.New()
//	idx.Insert(index.Entry{ID: "chunk-0-0", Box: geom.New(geom.Vec3{0, 0, 0}, geom.Vec3{15, 15, 15})})
//	idx.Insert(index.Entry{ID: "chunk-1-0", Box: geom.New(geom.Vec3{16, 0, 0}, geom.Vec3{31, 15, 15})})
//
//	hits := idx.Query(geom.New(geom.Vec3{10, 0, 0}, geom.Vec3{20, 5, 5}), index.QueryOptions{})
//	for _, e := range hits {
//	    fmt.Println(e.ID)
//	}
type Index struct {
	entries []*Entry
	rtree   *rtreego.Rtree
}

// Entry is a single labeled box in the index.
type Entry struct {
	ID  string
	Box geom.Box
}

// indexedEntry adapts an Entry to the rtreego.Spatial interface.
type indexedEntry struct {
	entry *Entry
}

// Bounds implements rtreego.Spatial.
//
// An integer box with inclusive corners covers max-min+1 lattice cells per
// axis, so a point-box still maps to a unit-volume R-tree rectangle.
func (ie indexedEntry) Bounds() rtreego.Rect {
	b := ie.entry.Box
	point := rtreego.Point{float64(b.Min.X), float64(b.Min.Y), float64(b.Min.Z)}
	lengths := []float64{
		float64(b.Max.X) - float64(b.Min.X) + 1,
		float64(b.Max.Y) - float64(b.Min.Y) + 1,
		float64(b.Max.Z) - float64(b.Min.Z) + 1,
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// QueryOptions controls spatial query behavior.
type QueryOptions struct {
	// FullyContained restricts results to entries whose boxes lie entirely
	// inside the query region (inclusive bounds). When false, any entry
	// intersecting the region is returned.
	FullyContained bool
}

// New creates an empty 3-dimensional index.
func New() *Index {
	return &Index{
		rtree: rtreego.NewTree(3, 25, 50),
	}
}

// Insert adds an entry to the index.
//
// Inverted and empty boxes are rejected: an R-tree rectangle cannot
// represent a box with negative span. Accumulate such boxes with
// geom.Box.MergeBox before indexing the result.
func (idx *Index) Insert(e Entry) error {
	if e.Box.IsEmpty() {
		return fmt.Errorf("index entry %q: cannot index an empty or inverted box", e.ID)
	}
	stored := e
	idx.entries = append(idx.entries, &stored)
	idx.rtree.Insert(indexedEntry{entry: &stored})
	return nil
}

// Query returns entries matching the region, in no particular order.
//
// Candidates come from the R-tree, then each is verified with the exact
// integer queries from pkg/geom: the R-tree works on float rectangles and
// is treated as a pre-filter only.
func (idx *Index) Query(region geom.Box, opts QueryOptions) []Entry {
	if region.IsEmpty() {
		return nil
	}
	regionRect := regionToRect(region)

	var results []Entry
	for _, spatial := range idx.rtree.SearchIntersect(regionRect) {
		e := spatial.(indexedEntry).entry
		if opts.FullyContained {
			if region.ContainsBox(e.Box) != geom.ContainmentContains {
				continue
			}
		} else if !region.Intersects(e.Box) {
			continue
		}
		results = append(results, *e)
	}
	return results
}

// Nearest returns the k entries whose boxes are closest to p, nearest
// first. Fewer than k entries are returned when the index is smaller
// than k.
func (idx *Index) Nearest(k int, p geom.Vec3) []Entry {
	point := rtreego.Point{float64(p.X), float64(p.Y), float64(p.Z)}
	neighbors := idx.rtree.NearestNeighbors(k, point)

	results := make([]Entry, 0, len(neighbors))
	for _, spatial := range neighbors {
		if spatial == nil {
			break
		}
		results = append(results, *spatial.(indexedEntry).entry)
	}
	return results
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns all indexed entries in insertion order. The returned
// slice is a copy; mutating it does not affect the index.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = *e
	}
	return out
}

func regionToRect(region geom.Box) rtreego.Rect {
	point := rtreego.Point{float64(region.Min.X), float64(region.Min.Y), float64(region.Min.Z)}
	lengths := []float64{
		float64(region.Max.X) - float64(region.Min.X) + 1,
		float64(region.Max.Y) - float64(region.Min.Y) + 1,
		float64(region.Max.Z) - float64(region.Min.Z) + 1,
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}
