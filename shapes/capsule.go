// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"cogentcore.org/spatial/bbox"
	"cogentcore.org/spatial/math32"
)

// TaperedCapsule is the convex hull of two spheres of possibly different
// radii. Only its bounding box is implemented: Centroid and Support return
// [ErrNotSupported].
type TaperedCapsule struct {
	Cap1    math32.Vector3
	Cap2    math32.Vector3
	Radius1 float32
	Radius2 float32
}

// Centroid is not supported for tapered capsules.
func (tc TaperedCapsule) Centroid() (math32.Vector3, error) {
	return math32.Vector3{}, ErrNotSupported
}

// BoundingBox returns the union of the bounding boxes of the two end spheres.
func (tc TaperedCapsule) BoundingBox() bbox.BoundingBox {
	return bbox.TaperedCapsule(tc.Cap1, tc.Cap2, tc.Radius1, tc.Radius2)
}

// Support is not supported for tapered capsules.
func (tc TaperedCapsule) Support(direction math32.Vector3) (math32.Vector3, error) {
	return math32.Vector3{}, ErrNotSupported
}
