// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"slices"

	"cogentcore.org/spatial/math32"
)

// MakeNormalsOutward reorients, in place, every triangle whose normal
// points toward centroid, and returns the number of triangles flipped.
//
// For each triangle the unit normal of its winding order, (p1-p0) x (p2-p0)
// normalized, is compared with the vector from the centroid to p0. Their dot
// product is the signed distance of the centroid below the face plane, in
// units of length. A triangle is flipped (its index row reversed) only when
// it is negative and not zero within [math32.DefaultTolerance], so that
// faces through the centroid are left alone. Each triangle is tested independently, so centroid must be
// interior to the polytope. Applying it twice flips nothing the second time.
func MakeNormalsOutward(points []math32.Vector3, triangles [][3]uint32, centroid math32.Vector3) int {
	flipped := 0
	for i, tri := range triangles {
		f := math32.TriangleFromIndices(points, tri)
		d := f.A.Sub(centroid).Dot(f.Cross().Normal())
		if d < 0 && !math32.IsZero(d, math32.DefaultTolerance) {
			triangles[i] = [3]uint32{tri[2], tri[1], tri[0]}
			flipped++
		}
	}
	return flipped
}

// Adjacency returns the undirected vertex adjacency graph of the given
// triangles over n vertices: for each vertex, the sorted set of vertices
// sharing a triangle edge with it. Edges shared by several triangles
// appear once.
func Adjacency(n int, triangles [][3]uint32) [][]int {
	adj := make([][]int, n)
	link := func(a, b uint32) {
		adj[a] = append(adj[a], int(b))
		adj[b] = append(adj[b], int(a))
	}
	for _, tri := range triangles {
		link(tri[0], tri[1])
		link(tri[0], tri[2])
		link(tri[1], tri[2])
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}
	return adj
}
