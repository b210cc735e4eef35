package gml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	opts := DefaultConvertOptions()
	opts.SkipInvalid = true
	c, _ := newTestConverter(opts)

	idx, err := c.Index(strings.NewReader(parcels))
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Count())

	tests := []struct {
		name   string
		bounds Bounds
		want   []string
	}{
		{
			name:   "around first point",
			bounds: Bounds{MinX: 496540, MaxX: 496550, MinY: 1139890, MaxY: 1139900},
			want:   []string{"DBP.1", "OH.1"},
		},
		{
			name:   "third point only",
			bounds: Bounds{MinX: 496690, MaxX: 496710, MinY: 1139980, MaxY: 1140000},
			want:   []string{"DBP.3"},
		},
		{
			name:   "exact point",
			bounds: Bounds{MinX: 496700, MaxX: 496700, MinY: 1139990, MaxY: 1139990},
			want:   []string{"DBP.3"},
		},
		{
			name:   "elsewhere",
			bounds: Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, featureIDs(idx.Query(tt.bounds)))
		})
	}

	assert.Equal(t, Bounds{MinX: 496500, MaxX: 496700, MinY: 1139850, MaxY: 1139990}, idx.Bounds())
}

func TestIndexSkipsEmpty(t *testing.T) {
	idx := NewIndex()

	empty := parse(t, `<gml:MultiPoint xmlns:gml="http://www.opengis.net/gml/3.2"/>`)
	assert.False(t, idx.Insert(Feature{ID: "empty", Geometry: empty}))
	assert.False(t, idx.Insert(Feature{ID: "none"}))
	assert.True(t, idx.Insert(Feature{ID: "point", Geometry: parse(t, pointDoc)}))

	assert.Equal(t, 1, idx.Count())
	assert.Equal(t, Bounds{}, NewIndex().Bounds())
}

func TestBuildIndex(t *testing.T) {
	// Arc over the circle centred on (2, 0) with radius 2. Its control
	// points stay below y=1.74 but the arc reaches y=2.
	arc := parse(t, `<gml:Curve xmlns:gml="http://www.opengis.net/gml/3.2"><gml:segments>
	<gml:ArcString><gml:posList>0 0 1 1.7320508075688772 4 0</gml:posList></gml:ArcString>
</gml:segments></gml:Curve>`)

	idx := BuildIndex([]Feature{
		{ID: "arc", Geometry: arc},
		{ID: "point", Geometry: parse(t, pointDoc)},
	})
	assert.Equal(t, 2, idx.Count())

	hits := idx.Query(Bounds{MinX: 1.9, MaxX: 2.1, MinY: 1.8, MaxY: 2.1})
	assert.Equal(t, []string{"arc"}, featureIDs(hits))
}
