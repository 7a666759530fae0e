// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"slices"
	"sync"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/spatial/bbox"
	"cogentcore.org/spatial/hull"
	"cogentcore.org/spatial/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubePoints() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 1), math32.Vec3(1, 1, 1), math32.Vec3(0, 1, 1),
	}
}

// cubeTriangles has arbitrary, mixed windings.
func cubeTriangles() [][3]uint32 {
	return [][3]uint32{
		{0, 1, 2}, {0, 2, 3},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{3, 2, 6}, {3, 6, 7},
		{0, 3, 7}, {0, 7, 4},
		{1, 2, 6}, {1, 6, 5},
	}
}

func unitCube(t *testing.T) *ConvexPolygon {
	cp, err := NewConvexPolygon(cubePoints(), cubeTriangles())
	require.NoError(t, err)
	return cp
}

func assertOutward(t *testing.T, cp *ConvexPolygon) {
	t.Helper()
	c, err := cp.Centroid()
	require.NoError(t, err)
	ns := cp.FaceNormals()
	for i, fc := range cp.FaceCenters() {
		assert.Greater(t, ns[i].Dot(fc.Sub(c)), float32(0), "face %d points inward", i)
	}
}

func TestNewConvexPolygonErrors(t *testing.T) {
	_, err := NewConvexPolygon(cubePoints()[:3], cubeTriangles())
	assert.ErrorIs(t, err, ErrInvalidTopology)
	_, err = NewConvexPolygon(cubePoints(), cubeTriangles()[:3])
	assert.ErrorIs(t, err, ErrInvalidTopology)
	tris := cubeTriangles()
	tris[5][1] = 8
	_, err = NewConvexPolygon(cubePoints(), tris)
	assert.ErrorIs(t, err, ErrInvalidTopology)

	for _, bad := range [][3]uint32{{0, 0, 1}, {2, 1, 1}, {3, 4, 3}} {
		tris = cubeTriangles()
		tris[2] = bad
		_, err = NewConvexPolygon(cubePoints(), tris)
		assert.ErrorIs(t, err, ErrInvalidTopology, "triangle %v", bad)
	}
}

func TestFlatPointCloud(t *testing.T) {
	points := []math32.Vector3{
		math32.Vec3(0, 0, 2), math32.Vec3(1, 0, 2), math32.Vec3(1, 1, 2),
		math32.Vec3(0, 1, 2), math32.Vec3(0.5, 0.25, 2),
	}
	_, err := ConvexPolygonFromPointCloud(points, nil)
	assert.ErrorIs(t, err, hull.ErrDegenerate)
}

func TestSmallInwardTetrahedron(t *testing.T) {
	const s = 1e-3
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(s, 0, 0),
		math32.Vec3(0, s, 0),
		math32.Vec3(0, 0, s),
	}
	// every face wound toward the centroid
	inward := [][3]uint32{{1, 2, 0}, {3, 1, 0}, {2, 3, 0}, {3, 2, 1}}
	assert.Equal(t, 4, MakeNormalsOutward(points, slices.Clone(inward), math32.Vec3(s/4, s/4, s/4)))

	cp, err := NewConvexPolygon(points, inward)
	require.NoError(t, err)
	assertOutward(t, cp)
	tolassert.EqualTol(t, s*s*s/6, cp.Volume(), s*s*s*1e-3)
	is := cp.InscribedSphere()
	tolassert.EqualTol(t, s/(4*math32.Sqrt(3)), is.Radius, s*1e-3)
}

func TestTetrahedronFromPointCloud(t *testing.T) {
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
	cp, err := ConvexPolygonFromPointCloud(points, nil)
	require.NoError(t, err)
	assert.Len(t, cp.Triangles(), 4)
	assertOutward(t, cp)

	// closed form: |det(b-a, c-a, d-a)| / 6
	tolassert.EqualTol(t, 1.0/6, cp.Volume(), tol)
	c, _ := cp.Centroid()
	assertVector(t, math32.Vec3(0.25, 0.25, 0.25), c)

	var area float32
	for _, a := range cp.FaceAreas() {
		area += a
	}
	tolassert.EqualTol(t, 1.5+math32.Sqrt(3)/2, area, tol)

	_, err = ConvexPolygonFromPointCloud(points[:3], hull.QuickHull{})
	assert.ErrorIs(t, err, hull.ErrDegenerate)
}

func TestMakeNormalsOutward(t *testing.T) {
	points := cubePoints()
	tris := cubeTriangles()
	c := math32.Mean(points)
	MakeNormalsOutward(points, tris, c)
	assert.Equal(t, 0, MakeNormalsOutward(points, tris, c), "second pass must be a no-op")

	for i := range tris {
		tris[i] = [3]uint32{tris[i][1], tris[i][0], tris[i][2]}
	}
	assert.Equal(t, len(tris), MakeNormalsOutward(points, tris, c))
	assert.Equal(t, 0, MakeNormalsOutward(points, tris, c))

	// a face through the centroid is left alone
	flat := [][3]uint32{{0, 1, 2}}
	assert.Equal(t, 0, MakeNormalsOutward(points, flat, points[0]))
}

func TestCubeFaces(t *testing.T) {
	cp := unitCube(t)
	assertOutward(t, cp)
	tolassert.EqualTol(t, 1, cp.Volume(), tol)
	for _, a := range cp.FaceAreas() {
		tolassert.EqualTol(t, 0.5, a, tol)
	}
	for _, n := range cp.FaceNormals() {
		tolassert.EqualTol(t, 1, n.Length(), tol)
	}
	tris := cp.Triangles()
	fps := cp.FacePoints()
	fvs := cp.FaceVectors()
	for i, tri := range tris {
		assert.Equal(t, cp.Points()[tri[0]], fps[i])
		assert.Equal(t, cp.Points()[tri[1]].Sub(fps[i]), fvs[i][0])
		assert.Equal(t, cp.Points()[tri[2]].Sub(fps[i]), fvs[i][1])
	}
	assert.Equal(t, bbox.B3(0, 0, 0, 1, 1, 1), cp.BoundingBox())

	s := cp.InscribedSphere()
	assertVector(t, math32.Vec3(0.5, 0.5, 0.5), s.Center)
	tolassert.EqualTol(t, 0.5, s.Radius, tol)
}

func TestInscribedSphereIsCentroidBased(t *testing.T) {
	// corner tetrahedron: the vertex mean is not the incenter, so the
	// sphere is smaller than the true inscribed sphere of radius 3V/A
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
	cp, err := NewConvexPolygon(points, [][3]uint32{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}})
	require.NoError(t, err)
	s := cp.InscribedSphere()
	assertVector(t, math32.Vec3(0.25, 0.25, 0.25), s.Center)
	tolassert.EqualTol(t, 0.25/math32.Sqrt(3), s.Radius, tol)

	inradius := 3 * cp.Volume() / (1.5 + math32.Sqrt(3)/2)
	assert.Less(t, s.Radius, inradius)
	assert.Equal(t, []bool{true}, cp.ContainsPoints([]math32.Vector3{s.Center}))
}

func TestAdjacency(t *testing.T) {
	adj := Adjacency(5, [][3]uint32{{0, 1, 2}, {0, 2, 3}, {2, 0, 3}})
	assert.Equal(t, [][]int{{1, 2, 3}, {0, 2}, {0, 1, 3}, {0, 2}, nil}, adj)

	cp := unitCube(t)
	for i, nbrs := range cp.Adjacency() {
		assert.NotContains(t, nbrs, i)
		for _, n := range nbrs {
			assert.Contains(t, cp.Adjacency()[n], i)
		}
	}
}

func TestSupportAgreement(t *testing.T) {
	cube := unitCube(t)
	ball, err := ConvexPolygonFromPointCloud(fibonacciSphere(150), nil)
	require.NoError(t, err)
	for _, cp := range []*ConvexPolygon{cube, ball} {
		for _, d := range fibonacciSphere(64) {
			bf, err := cp.Support(d)
			require.NoError(t, err)
			hc := cp.SupportHillClimbing(d)
			tolassert.EqualTol(t, bf.Dot(d), hc.Dot(d), tol)
		}
	}

	// ties: any top vertex is a valid answer
	d := math32.Vec3(0, 0, 1)
	bf, _ := cube.Support(d)
	assert.Equal(t, math32.Vec3(0, 0, 1), bf)
	assert.Equal(t, float32(1), cube.SupportHillClimbing(d).Z)
}

func TestSupportFunctions(t *testing.T) {
	points := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(2, 0, 0), math32.Vec3(2, 1, 0)}
	assert.Equal(t, 1, SupportBruteForce(points, math32.Vec3(1, 0, 0)))
	assert.Equal(t, 2, SupportBruteForce(points, math32.Vec3(0, 1, 0)))
	assert.Equal(t, -1, SupportBruteForce(nil, math32.Vec3(0, 1, 0)))
	assert.Equal(t, -1, SupportHillClimbing(nil, nil, math32.Vec3(0, 1, 0)))

	adj := Adjacency(len(points), [][3]uint32{{0, 1, 2}})
	assert.Equal(t, 2, SupportHillClimbing(points, adj, math32.Vec3(1, 1, 0)))
}

func TestContainsPoints(t *testing.T) {
	cp := unitCube(t)
	points := []math32.Vector3{
		math32.Vec3(0.5, 0.5, 0.5),
		math32.Vec3(1, 1, 1),
		math32.Vec3(0.5, 0.5, 1),
		math32.Vec3(1.01, 0.5, 0.5),
		math32.Vec3(-0.5, 0.5, 0.5),
	}
	assert.Equal(t, []bool{true, true, true, false, false}, cp.ContainsPoints(points))
}

func TestWithPoints(t *testing.T) {
	cp := unitCube(t)
	moved := make([]math32.Vector3, len(cp.Points()))
	for i, p := range cp.Points() {
		moved[i] = p.Add(math32.Vec3(1, 2, 3))
	}
	mp, err := cp.WithPoints(moved)
	require.NoError(t, err)
	c, _ := mp.Centroid()
	assertVector(t, math32.Vec3(1.5, 2.5, 3.5), c)
	tolassert.EqualTol(t, 1, mp.Volume(), tol)
	assertOutward(t, mp)

	// cp keeps its own caches
	oc, _ := cp.Centroid()
	assertVector(t, math32.Vec3(0.5, 0.5, 0.5), oc)

	_, err = cp.WithPoints(moved[:4])
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestConcurrentCaches(t *testing.T) {
	cp := unitCube(t)
	var wg sync.WaitGroup
	vols := make([]float32, 16)
	for i := range vols {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cp.Adjacency()
			cp.SupportHillClimbing(math32.Vec3(1, 1, 1).Normal())
			vols[i] = cp.Volume()
		}()
	}
	wg.Wait()
	for _, v := range vols {
		tolassert.EqualTol(t, 1, v, tol)
	}
}
