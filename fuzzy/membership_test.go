package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfuzz/fuzzy"
)

func TestDegree_Shoulders(t *testing.T) {
	cases := []struct {
		name    string
		x       float64
		a, b, c float64
		want    float64
	}{
		{"left at a", 0, 0, 0, 5, 1},
		{"left below a", -3, 0, 0, 5, 1},
		{"left mid", 2.5, 0, 0, 5, 0.5},
		{"left at c", 5, 0, 0, 5, 0},
		{"left beyond c", 9, 0, 0, 5, 0},
		{"right at c", 10, 5, 10, 10, 1},
		{"right beyond c", 12, 5, 10, 10, 1},
		{"right mid", 7.5, 5, 10, 10, 0.5},
		{"right at a", 5, 5, 10, 10, 0},
		{"right below a", 1, 5, 10, 10, 0},
		{"degenerate at point", 3, 3, 3, 3, 1},
		{"degenerate above", 3.1, 3, 3, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, fuzzy.Degree(tc.x, tc.a, tc.b, tc.c), 1e-12)
		})
	}
}

func TestDegree_Triangle(t *testing.T) {
	tri := fuzzy.Shape{A: 2, B: 4, C: 8}
	assert.Equal(t, 1.0, tri.Degree(4))
	assert.Equal(t, 0.0, tri.Degree(2))
	assert.Equal(t, 0.0, tri.Degree(8))
	assert.Equal(t, 0.0, tri.Degree(-1))
	assert.Equal(t, 0.0, tri.Degree(11))
	assert.InDelta(t, 0.5, tri.Degree(3), 1e-12)
	assert.InDelta(t, 0.25, tri.Degree(7), 1e-12)

	for x := 2.0; x <= 8; x += 0.125 {
		d := tri.Degree(x)
		require.GreaterOrEqual(t, d, 0.0)
		require.LessOrEqual(t, d, 1.0)
	}
}

func TestShape_KindAndValidate(t *testing.T) {
	assert.Equal(t, fuzzy.LeftShoulder, fuzzy.Shape{A: 0, B: 0, C: 5}.Kind())
	assert.Equal(t, fuzzy.RightShoulder, fuzzy.Shape{A: 5, B: 10, C: 10}.Kind())
	assert.Equal(t, fuzzy.Triangle, fuzzy.Shape{A: 1, B: 2, C: 3}.Kind())
	assert.Equal(t, fuzzy.LeftShoulder, fuzzy.Shape{A: 1, B: 1, C: 1}.Kind())
	assert.Equal(t, "right-shoulder", fuzzy.RightShoulder.String())

	_, err := fuzzy.NewShape(3, 2, 5)
	require.ErrorIs(t, err, fuzzy.ErrShapeOrder)
	_, err = fuzzy.NewShape(0, 6, 5)
	require.ErrorIs(t, err, fuzzy.ErrShapeOrder)

	s, err := fuzzy.NewShape(0, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, fuzzy.Shape{A: 0, B: 0, C: 5}, s)
}

func TestSample(t *testing.T) {
	pts := fuzzy.Sample(fuzzy.FoodBad, 0, 10, 200)
	require.Len(t, pts, 200)
	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 10.0, pts[199].X)
	assert.Equal(t, 1.0, pts[0].Degree)
	assert.Equal(t, 0.0, pts[199].Degree)
	for i := 1; i < len(pts); i++ {
		require.Greater(t, pts[i].X, pts[i-1].X)
		require.LessOrEqual(t, pts[i].Degree, pts[i-1].Degree)
	}

	five := fuzzy.Sample(fuzzy.FoodGood, 0, 10, 5)
	assert.Equal(t, []fuzzy.Point{
		{X: 0, Degree: 0}, {X: 2.5, Degree: 0}, {X: 5, Degree: 0},
		{X: 7.5, Degree: 0.5}, {X: 10, Degree: 1},
	}, five)

	assert.Nil(t, fuzzy.Sample(fuzzy.FoodGood, 0, 10, 0))
	assert.Equal(t, []fuzzy.Point{{X: 4, Degree: 0.2}}, fuzzy.Sample(fuzzy.FoodBad, 4, 10, 1))
}
