// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbox

import (
	"fmt"

	"cogentcore.org/spatial/math32"
)

// PointsInside returns for each point whether it lies in [min, max]
// on every axis. The comparison is tolerant: a coordinate equal to a
// bound up to [math32.DefaultTolerance] is inside, so that points on
// the boundary are not excluded by floating point error.
//
// The tolerance follows [math32.IsClose], whose relative part is scaled
// by its second argument. Against min it is scaled by the coordinate of
// the point, and against max by the bound, so far from the origin the
// accepted margin grows with |coordinate| (about 1e-2 at 1e3) and is not
// the same on both sides of a box.
func PointsInside(points []math32.Vector3, min, max math32.Vector3) []bool {
	inside := make([]bool, len(points))
	for i, p := range points {
		inside[i] = pointInside(p, min, max, math32.DefaultTolerance)
	}
	return inside
}

// SpheresInside returns for each sphere whether it lies entirely in
// [min, max], applying the tolerant rule of [PointsInside], including its
// scaling of the relative tolerance, to center - radius and center + radius. It returns [ErrLength] if the
// number of centers and radii differ.
func SpheresInside(centers []math32.Vector3, radii []float32, min, max math32.Vector3) ([]bool, error) {
	if err := checkSpheres(centers, radii); err != nil {
		return nil, fmt.Errorf("SpheresInside: %w", err)
	}
	tol := math32.DefaultTolerance
	inside := make([]bool, len(centers))
	for i, c := range centers {
		r := radii[i]
		inside[i] = lowerInside(c.SubScalar(r), min, tol) && upperInside(c.AddScalar(r), max, tol)
	}
	return inside, nil
}

func pointInside(p, min, max math32.Vector3, tol math32.Tolerance) bool {
	return lowerInside(p, min, tol) && upperInside(p, max, tol)
}

// lowerInside returns whether p >= min on all axes, tolerantly.
func lowerInside(p, min math32.Vector3, tol math32.Tolerance) bool {
	return math32.LessOrClose(min.X, p.X, tol) &&
		math32.LessOrClose(min.Y, p.Y, tol) &&
		math32.LessOrClose(min.Z, p.Z, tol)
}

// upperInside returns whether p <= max on all axes, tolerantly.
func upperInside(p, max math32.Vector3, tol math32.Tolerance) bool {
	return math32.LessOrClose(p.X, max.X, tol) &&
		math32.LessOrClose(p.Y, max.Y, tol) &&
		math32.LessOrClose(p.Z, max.Z, tol)
}
