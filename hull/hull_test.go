// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"testing"

	"cogentcore.org/spatial/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickHullTetrahedron(t *testing.T) {
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
	h, err := QuickHull{}.ConvexHull(points)
	require.NoError(t, err)
	assert.Len(t, h.Points, 4)
	assert.Len(t, h.Triangles, 4)
	for _, tri := range h.Triangles {
		for _, i := range tri {
			assert.Less(t, int(i), len(h.Points))
		}
	}
	assert.ElementsMatch(t, points, h.Points)
}

func TestQuickHullDropsInteriorPoints(t *testing.T) {
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 1), math32.Vec3(1, 1, 1), math32.Vec3(0, 1, 1),
		math32.Vec3(0.5, 0.5, 0.5),
		math32.Vec3(0.25, 0.5, 0.75),
	}
	h, err := QuickHull{}.ConvexHull(points)
	require.NoError(t, err)
	assert.Len(t, h.Points, 8)
	assert.NotContains(t, h.Points, math32.Vec3(0.5, 0.5, 0.5))
	// 6 square faces, 2 triangles each
	assert.Len(t, h.Triangles, 12)
}

func TestQuickHullDegenerate(t *testing.T) {
	_, err := QuickHull{}.ConvexHull([]math32.Vector3{{}, math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)})
	assert.ErrorIs(t, err, ErrDegenerate)

	coplanar := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0),
		math32.Vec3(0, 1, 0), math32.Vec3(0.5, 2, 0), math32.Vec3(0.25, 0.5, 0),
	}
	_, err = QuickHull{}.ConvexHull(coplanar)
	assert.ErrorIs(t, err, ErrDegenerate)

	// same plane, tilted and away from the origin
	tilted := make([]math32.Vector3, len(coplanar))
	for i, p := range coplanar {
		tilted[i] = math32.Vec3(p.X+10, p.Y+5, 3+p.X-0.5*p.Y)
	}
	_, err = QuickHull{}.ConvexHull(tilted)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestHullIsFlat(t *testing.T) {
	square := &Hull{
		Points:    []math32.Vector3{{}, math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0)},
		Triangles: [][3]uint32{{0, 1, 2}, {0, 2, 3}, {0, 2, 1}, {0, 3, 2}},
	}
	assert.True(t, square.IsFlat(Flatness))
	assert.True(t, (&Hull{Points: square.Points, Triangles: [][3]uint32{{0, 0, 1}}}).IsFlat(Flatness))

	thin := &Hull{
		Points:    append(square.Points, math32.Vec3(0.5, 0.5, 1e-3)),
		Triangles: square.Triangles,
	}
	assert.False(t, thin.IsFlat(Flatness))
	assert.True(t, thin.IsFlat(1e-2))
}
