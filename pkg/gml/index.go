package gml

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Index provides fast bounding-box queries over converted features.
//
// Features are stored in an R-tree keyed by the bounds of their
// geometry. Empty geometries have no bounds and are not indexed.
//
// Example:
//
//	idx, err := gml.NewConverter(gml.DefaultConvertOptions()).Index(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hits := idx.Query(gml.Bounds{MinX: -741000, MaxX: -739000, MinY: -1047000, MaxY: -1045000})
type Index struct {
	features []*indexedFeature
	rtree    *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  Bounds
	seq     int // insertion order
}

// Bounds implements rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return toRect(f.bounds)
}

// toRect converts b to an R-tree rectangle. Zero-width sides, as for
// points and axis-parallel lines, are widened to a small epsilon since
// the R-tree requires non-zero dimensions.
func toRect(b Bounds) rtreego.Rect {
	const epsilon = 1e-9
	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})
	return rect
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	// 2D, min=25 children, max=50 children
	return &Index{rtree: rtreego.NewTree(2, 25, 50)}
}

// BuildIndex creates an index over features.
func BuildIndex(features []Feature) *Index {
	idx := NewIndex()
	for _, f := range features {
		idx.Insert(f)
	}
	return idx
}

// Insert adds f to the index. It reports false for a feature without
// geometry or with an empty geometry, which is not indexed.
func (idx *Index) Insert(f Feature) bool {
	if f.Geometry == nil || f.Geometry.IsEmpty() {
		return false
	}
	entry := &indexedFeature{
		feature: f,
		bounds:  f.Geometry.Bounds(),
		seq:     len(idx.features),
	}
	idx.features = append(idx.features, entry)
	idx.rtree.Insert(entry)
	return true
}

// Query returns the features whose bounds intersect bounds, in
// insertion order.
func (idx *Index) Query(bounds Bounds) []Feature {
	spatials := idx.rtree.SearchIntersect(toRect(bounds))

	hits := make([]*indexedFeature, 0, len(spatials))
	for _, s := range spatials {
		entry := s.(*indexedFeature)
		// The epsilon widening can produce hits that only touch
		// within epsilon; check the exact bounds.
		if !bounds.Intersects(entry.bounds) {
			continue
		}
		hits = append(hits, entry)
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].seq < hits[j].seq
	})

	result := make([]Feature, len(hits))
	for i, h := range hits {
		result[i] = h.feature
	}
	return result
}

// Count returns the number of indexed features.
func (idx *Index) Count() int {
	return len(idx.features)
}

// Bounds returns the union of all feature bounds in the index.
func (idx *Index) Bounds() Bounds {
	if len(idx.features) == 0 {
		return Bounds{}
	}

	bounds := idx.features[0].bounds
	for i := 1; i < len(idx.features); i++ {
		bounds = bounds.Union(idx.features[i].bounds)
	}
	return bounds
}
