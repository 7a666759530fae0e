// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"cogentcore.org/spatial/bbox"
	"cogentcore.org/spatial/math32"
)

// Sphere is a sphere with a center and a radius.
type Sphere struct {
	Center math32.Vector3
	Radius float32
}

// Centroid returns the sphere center.
func (s Sphere) Centroid() (math32.Vector3, error) {
	return s.Center, nil
}

// BoundingBox returns the bounding box of the sphere.
func (s Sphere) BoundingBox() bbox.BoundingBox {
	return bbox.Sphere(s.Center, s.Radius)
}

// Support returns center + direction * radius.
func (s Sphere) Support(direction math32.Vector3) (math32.Vector3, error) {
	return s.Center.Add(direction.MulScalar(s.Radius)), nil
}
