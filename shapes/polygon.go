// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"sync"

	"cogentcore.org/spatial/bbox"
	"cogentcore.org/spatial/hull"
	"cogentcore.org/spatial/math32"
)

// ConvexPolygon is a convex polytope represented by its vertices and
// a triangulation of its boundary, typically the output of a convex
// hull [hull.Provider].
//
// The centroid, the outward oriented triangles and the adjacency graph
// are computed at most once, on first use, and are safe for concurrent
// use. A ConvexPolygon never changes its points: to move or transform
// it, use [ConvexPolygon.WithPoints], which returns a fresh polygon
// with its own caches.
type ConvexPolygon struct {
	points []math32.Vector3

	// rawTriangles are the triangles as given, before orientation.
	rawTriangles [][3]uint32

	centroidOnce sync.Once
	centroid     math32.Vector3

	trianglesOnce sync.Once
	triangles     [][3]uint32

	adjacencyOnce sync.Once
	adjacency     [][]int
}

// NewConvexPolygon returns a new polygon from the given points and
// triangle indexes into them. The triangles are reoriented outward on
// first use. It returns [ErrInvalidTopology] if there are fewer than
// 4 points or 4 triangles, any index is out of range, or a triangle
// repeats an index.
func NewConvexPolygon(points []math32.Vector3, triangles [][3]uint32) (*ConvexPolygon, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: %d points", ErrInvalidTopology, len(points))
	}
	if len(triangles) < 4 {
		return nil, fmt.Errorf("%w: %d triangles", ErrInvalidTopology, len(triangles))
	}
	for i, tri := range triangles {
		for _, idx := range tri {
			if int(idx) >= len(points) {
				return nil, fmt.Errorf("%w: triangle %d index %d out of range for %d points", ErrInvalidTopology, i, idx, len(points))
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return nil, fmt.Errorf("%w: triangle %d %v repeats a vertex", ErrInvalidTopology, i, tri)
		}
	}
	return &ConvexPolygon{points: points, rawTriangles: triangles}, nil
}

// ConvexPolygonFromPointCloud returns the polygon of the convex hull of the
// given point cloud, computed by provider. A nil provider uses [hull.QuickHull].
func ConvexPolygonFromPointCloud(points []math32.Vector3, provider hull.Provider) (*ConvexPolygon, error) {
	if provider == nil {
		provider = hull.QuickHull{}
	}
	h, err := provider.ConvexHull(points)
	if err != nil {
		return nil, fmt.Errorf("ConvexPolygonFromPointCloud: %w", err)
	}
	return NewConvexPolygon(h.Points, h.Triangles)
}

// WithPoints returns a new polygon with the same topology over the given
// points, for example after a rigid transform. The points must be parallel
// to those of this polygon.
func (cp *ConvexPolygon) WithPoints(points []math32.Vector3) (*ConvexPolygon, error) {
	if len(points) != len(cp.points) {
		return nil, fmt.Errorf("%w: %d points replacing %d", ErrInvalidTopology, len(points), len(cp.points))
	}
	return NewConvexPolygon(points, cp.rawTriangles)
}

// Points returns the polygon vertices. They must not be modified.
func (cp *ConvexPolygon) Points() []math32.Vector3 {
	return cp.points
}

// Centroid returns the arithmetic mean of the points.
func (cp *ConvexPolygon) Centroid() (math32.Vector3, error) {
	return cp.center(), nil
}

func (cp *ConvexPolygon) center() math32.Vector3 {
	cp.centroidOnce.Do(func() {
		cp.centroid = math32.Mean(cp.points)
	})
	return cp.centroid
}

// Triangles returns the triangles, each wound so that its normal
// points away from the centroid. They must not be modified.
func (cp *ConvexPolygon) Triangles() [][3]uint32 {
	cp.trianglesOnce.Do(func() {
		cp.triangles = make([][3]uint32, len(cp.rawTriangles))
		copy(cp.triangles, cp.rawTriangles)
		MakeNormalsOutward(cp.points, cp.triangles, cp.center())
	})
	return cp.triangles
}

// faces returns the outward triangles as [math32.Triangle]s.
func (cp *ConvexPolygon) faces() []math32.Triangle {
	tris := cp.Triangles()
	fs := make([]math32.Triangle, len(tris))
	for i, tri := range tris {
		fs[i] = math32.TriangleFromIndices(cp.points, tri)
	}
	return fs
}

// FaceVectors returns the two edge vectors of each face,
// from its first vertex to the second and third.
func (cp *ConvexPolygon) FaceVectors() [][2]math32.Vector3 {
	fs := cp.faces()
	vs := make([][2]math32.Vector3, len(fs))
	for i, f := range fs {
		vs[i][0], vs[i][1] = f.Edges()
	}
	return vs
}

// FacePoints returns the first vertex of each face.
func (cp *ConvexPolygon) FacePoints() []math32.Vector3 {
	tris := cp.Triangles()
	ps := make([]math32.Vector3, len(tris))
	for i, tri := range tris {
		ps[i] = cp.points[tri[0]]
	}
	return ps
}

// FaceAreas returns the area of each face.
func (cp *ConvexPolygon) FaceAreas() []float32 {
	fs := cp.faces()
	as := make([]float32, len(fs))
	for i, f := range fs {
		as[i] = f.Area()
	}
	return as
}

// FaceNormals returns the outward unit normal of each face.
// Degenerate faces have a zero normal.
func (cp *ConvexPolygon) FaceNormals() []math32.Vector3 {
	fs := cp.faces()
	ns := make([]math32.Vector3, len(fs))
	for i, f := range fs {
		ns[i] = f.Cross().Normal()
	}
	return ns
}

// FaceCenters returns the midpoint of each face.
func (cp *ConvexPolygon) FaceCenters() []math32.Vector3 {
	fs := cp.faces()
	cs := make([]math32.Vector3, len(fs))
	for i, f := range fs {
		cs[i] = f.Midpoint()
	}
	return cs
}

// Volume returns the sum of the signed volumes of the tetrahedra
// formed by the centroid and each face.
func (cp *ConvexPolygon) Volume() float32 {
	c := cp.center()
	var vol float32
	for _, f := range cp.faces() {
		vol += f.Cross().Dot(f.A.Sub(c))
	}
	return vol / 6
}

// BoundingBox returns the bounding box of the points.
func (cp *ConvexPolygon) BoundingBox() bbox.BoundingBox {
	// points are never empty after NewConvexPolygon
	b, _ := bbox.FromPoints(cp.points)
	return b
}

// Adjacency returns the vertex adjacency graph of the triangulation,
// see [Adjacency]. It must not be modified.
func (cp *ConvexPolygon) Adjacency() [][]int {
	cp.adjacencyOnce.Do(func() {
		cp.adjacency = Adjacency(len(cp.points), cp.Triangles())
	})
	return cp.adjacency
}

// InscribedSphere returns the sphere at the centroid whose radius is the
// minimum signed distance from the centroid to any face plane. It lies
// inside every bounding half-space and hence inside the polygon, but it
// is not in general the largest inscribed sphere, which is centered at
// the Chebyshev center rather than the centroid.
func (cp *ConvexPolygon) InscribedSphere() Sphere {
	c := cp.center()
	r := math32.Infinity
	for _, f := range cp.faces() {
		r = math32.Min(r, f.Cross().Normal().Dot(f.A.Sub(c)))
	}
	return Sphere{Center: c, Radius: r}
}

// ContainsPoints returns for each point whether it lies inside the polygon
// or on its boundary, within [math32.DefaultTolerance], by testing it
// against the outward half-space of every face.
func (cp *ConvexPolygon) ContainsPoints(points []math32.Vector3) []bool {
	fs := cp.faces()
	ns := make([]math32.Vector3, len(fs))
	for i, f := range fs {
		ns[i] = f.Cross().Normal()
	}
	inside := make([]bool, len(points))
	for i, p := range points {
		inside[i] = true
		for fi, f := range fs {
			if !math32.LessOrClose(ns[fi].Dot(p.Sub(f.A)), 0, math32.DefaultTolerance) {
				inside[i] = false
				break
			}
		}
	}
	return inside
}

// Support returns the vertex with the largest projection onto direction,
// by brute force over all points. See [SupportBruteForce].
func (cp *ConvexPolygon) Support(direction math32.Vector3) (math32.Vector3, error) {
	return cp.points[SupportBruteForce(cp.points, direction)], nil
}

// SupportHillClimbing returns the vertex with the largest projection onto
// direction by walking the adjacency graph. See [SupportHillClimbing].
func (cp *ConvexPolygon) SupportHillClimbing(direction math32.Vector3) math32.Vector3 {
	return cp.points[SupportHillClimbing(cp.points, cp.Adjacency(), direction)]
}
