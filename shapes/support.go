// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "cogentcore.org/spatial/math32"

// SupportBruteForce returns the index of the point with the largest
// projection onto direction, the first one on ties, or -1 if there
// are no points. It is exact for any point set.
func SupportBruteForce(points []math32.Vector3, direction math32.Vector3) int {
	return math32.ArgMax(math32.DotsDir(points, direction))
}

// SupportHillClimbing returns the index of a point with the largest
// projection onto direction, by walking the adjacency graph (see [Adjacency])
// from vertex 0: at each step it moves to the neighbor with the highest
// projection, if that is strictly higher than the current one, and stops
// when no neighbor improves.
//
// The result is the global maximum only when points and adjacency are the
// vertices and edges of a convex polytope: a linear function restricted to
// the edge graph of a convex polytope has no local maxima other than the
// global one. For non-convex inputs it may stop at a local maximum.
// If vertex 0 has no neighbors the walk starts at the first vertex that does.
// It returns -1 if there are no points.
func SupportHillClimbing(points []math32.Vector3, adjacency [][]int, direction math32.Vector3) int {
	if len(points) == 0 {
		return -1
	}
	cur := 0
	for i, nbrs := range adjacency {
		if len(nbrs) > 0 {
			cur = i
			break
		}
	}
	score := points[cur].Dot(direction)
	for cur < len(adjacency) {
		next := -1
		for _, n := range adjacency[cur] {
			if s := points[n].Dot(direction); s > score {
				next, score = n, s
			}
		}
		if next < 0 {
			return cur
		}
		cur = next
	}
	return cur
}
