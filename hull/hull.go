// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hull provides convex hull triangulation of 3D point clouds
// behind the [Provider] interface. The default provider is [QuickHull],
// which uses github.com/markus-wa/quickhull-go.
package hull

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/spatial/math32"
	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"
)

// ErrDegenerate is returned when a point cloud has no
// three dimensional convex hull: fewer than 4 points, or all
// points colinear or coplanar.
var ErrDegenerate = errors.New("hull: degenerate point cloud")

// Hull is a triangulated convex hull.
type Hull struct {

	// Points are the hull vertices, possibly reordered and
	// deduplicated relative to the input point cloud.
	Points []math32.Vector3

	// Triangles are the hull faces as indexes into Points.
	// Their winding is not guaranteed to be outward.
	Triangles [][3]uint32
}

// Provider computes convex hulls.
type Provider interface {

	// ConvexHull returns the convex hull of the given points.
	ConvexHull(points []math32.Vector3) (*Hull, error)
}

// QuickHull is a [Provider] using the quickhull algorithm.
type QuickHull struct {

	// Epsilon is the coplanarity tolerance, relative to the largest
	// absolute coordinate of the point cloud. Zero selects the quickhull
	// default. Hulls thinner than Epsilon, or than [Flatness] if larger,
	// relative to their size are rejected as flat.
	Epsilon float64
}

// Flatness is the minimum thickness of a hull relative to its size,
// close to float32 precision. Thinner hulls are degenerate.
const Flatness = 1e-6

// ConvexHull implements [Provider].
func (qh QuickHull) ConvexHull(points []math32.Vector3) (*Hull, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: %d points", ErrDegenerate, len(points))
	}
	cloud := make([]r3.Vector, len(points))
	for i, p := range points {
		cloud[i] = r3.Vector{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
	}
	ch := new(quickhull.QuickHull).ConvexHull(cloud, true, false, qh.Epsilon)
	if len(ch.Indices) < 12 || len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d hull indices", ErrDegenerate, len(ch.Indices))
	}
	h := &Hull{
		Points:    make([]math32.Vector3, len(ch.Vertices)),
		Triangles: make([][3]uint32, len(ch.Indices)/3),
	}
	for i, v := range ch.Vertices {
		h.Points[i] = math32.Vec3(float32(v.X), float32(v.Y), float32(v.Z))
	}
	for i := range h.Triangles {
		for j := range 3 {
			h.Triangles[i][j] = uint32(ch.Indices[3*i+j])
		}
	}
	if h.IsFlat(math32.Max(float32(qh.Epsilon), Flatness)) {
		return nil, fmt.Errorf("%w: coplanar or colinear points", ErrDegenerate)
	}
	return h, nil
}

// IsFlat returns whether the hull has no volume: all of its triangles are
// degenerate, or its thickness along the normal of the first non-degenerate
// triangle is at most rel times its size, measured as the largest distance
// of a point from that triangle.
func (h *Hull) IsFlat(rel float32) bool {
	for _, tri := range h.Triangles {
		f := math32.TriangleFromIndices(h.Points, tri)
		n := f.Cross().Normal()
		if n.IsNil() {
			continue
		}
		var depth, size float32
		for _, p := range h.Points {
			d := p.Sub(f.A)
			depth = math32.Max(depth, math32.Abs(d.Dot(n)))
			size = math32.Max(size, d.Length())
		}
		return depth <= rel*size
	}
	return true
}
