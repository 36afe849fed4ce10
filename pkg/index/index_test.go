package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/intgeom/pkg/geom"
)

func box(minX, minY, minZ, maxX, maxY, maxZ int32) geom.Box {
	return geom.New(geom.Vec3{X: minX, Y: minY, Z: minZ}, geom.Vec3{X: maxX, Y: maxY, Z: maxZ})
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestInsertAndLen(t *testing.T) {
	idx := New()
	assert.Equal(t, 0, idx.Len())

	require.NoError(t, idx.Insert(Entry{ID: "a", Box: box(0, 0, 0, 4, 4, 4)}))
	require.NoError(t, idx.Insert(Entry{ID: "b", Box: box(10, 10, 10, 14, 14, 14)}))
	assert.Equal(t, 2, idx.Len())
	assert.Len(t, idx.Entries(), 2)
}

func TestInsertRejectsEmptyBox(t *testing.T) {
	idx := New()
	err := idx.Insert(Entry{ID: "bad", Box: geom.Empty()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")

	err = idx.Insert(Entry{ID: "inverted", Box: box(5, 0, 0, 0, 4, 4)})
	require.Error(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestQueryIntersecting(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Insert(Entry{ID: "origin", Box: box(0, 0, 0, 4, 4, 4)}))
	require.NoError(t, idx.Insert(Entry{ID: "far", Box: box(100, 100, 100, 104, 104, 104)}))
	require.NoError(t, idx.Insert(Entry{ID: "touching", Box: box(4, 0, 0, 8, 4, 4)}))
	require.NoError(t, idx.Insert(Entry{ID: "adjacent", Box: box(5, 0, 0, 9, 4, 4)}))

	// Region overlapping the first box and touching the third at x=4.
	hits := idx.Query(box(0, 0, 0, 4, 4, 4), QueryOptions{})
	assert.ElementsMatch(t, []string{"origin", "touching"}, ids(hits))

	// "adjacent" starts one cell past the region: closed-interval semantics
	// must exclude it.
	assert.NotContains(t, ids(hits), "adjacent")

	// A region out beyond everything finds nothing.
	assert.Empty(t, idx.Query(box(500, 500, 500, 510, 510, 510), QueryOptions{}))
}

func TestQueryFullyContained(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Insert(Entry{ID: "inside", Box: box(2, 2, 2, 4, 4, 4)}))
	require.NoError(t, idx.Insert(Entry{ID: "flush", Box: box(0, 0, 0, 4, 4, 4)}))
	require.NoError(t, idx.Insert(Entry{ID: "poking", Box: box(8, 8, 8, 12, 12, 12)}))

	region := box(0, 0, 0, 10, 10, 10)

	all := idx.Query(region, QueryOptions{})
	assert.ElementsMatch(t, []string{"inside", "flush", "poking"}, ids(all))

	contained := idx.Query(region, QueryOptions{FullyContained: true})
	assert.ElementsMatch(t, []string{"inside", "flush"}, ids(contained))
}

func TestQueryEmptyRegion(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Insert(Entry{ID: "a", Box: box(0, 0, 0, 4, 4, 4)}))
	assert.Nil(t, idx.Query(geom.Empty(), QueryOptions{}))
}

func TestQueryAgreesWithLinearScan(t *testing.T) {
	idx := New()
	// A 5x5x5 grid of 10-cell chunks.
	for x := int32(0); x < 5; x++ {
		for y := int32(0); y < 5; y++ {
			for z := int32(0); z < 5; z++ {
				id := string(rune('a'+x)) + string(rune('a'+y)) + string(rune('a'+z))
				require.NoError(t, idx.Insert(Entry{
					ID:  id,
					Box: box(x*10, y*10, z*10, x*10+9, y*10+9, z*10+9),
				}))
			}
		}
	}

	region := box(7, 7, 7, 23, 23, 23)

	var linear []string
	for _, e := range idx.Entries() {
		if region.Intersects(e.Box) {
			linear = append(linear, e.ID)
		}
	}

	assert.ElementsMatch(t, linear, ids(idx.Query(region, QueryOptions{})))
}

func TestNearest(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Insert(Entry{ID: "near", Box: box(1, 1, 1, 2, 2, 2)}))
	require.NoError(t, idx.Insert(Entry{ID: "mid", Box: box(10, 10, 10, 12, 12, 12)}))
	require.NoError(t, idx.Insert(Entry{ID: "far", Box: box(100, 100, 100, 102, 102, 102)}))

	got := idx.Nearest(2, geom.Vec3{X: 0, Y: 0, Z: 0})
	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)

	// Asking for more neighbors than entries returns what exists.
	assert.Len(t, idx.Nearest(10, geom.Vec3{X: 0, Y: 0, Z: 0}), 3)
}
