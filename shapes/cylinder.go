// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"cogentcore.org/spatial/bbox"
	"cogentcore.org/spatial/math32"
)

// Cylinder is a capped cylinder between two cap centers.
type Cylinder struct {
	Cap1   math32.Vector3
	Cap2   math32.Vector3
	Radius float32
}

// Centroid returns the midpoint of the cap centers.
func (c Cylinder) Centroid() (math32.Vector3, error) {
	return c.center(), nil
}

func (c Cylinder) center() math32.Vector3 {
	return c.Cap1.Add(c.Cap2).MulScalar(0.5)
}

// CentralAxis returns Cap2 - Cap1.
func (c Cylinder) CentralAxis() math32.Vector3 {
	return c.Cap2.Sub(c.Cap1)
}

// Height returns the distance between the cap centers.
func (c Cylinder) Height() float32 {
	return c.CentralAxis().Length()
}

// BoundingBox returns the union of the bounding boxes of the two cap disks.
func (c Cylinder) BoundingBox() bbox.BoundingBox {
	return bbox.Cylinder(c.Cap1, c.Cap2, c.Radius)
}

// Support returns the point of the cylinder farthest along direction.
// The direction is split into its component along the central axis and
// the orthogonal remainder. The axial component selects the cap center
// nearer to the direction (none when perpendicular), and a remainder
// larger than tolerance adds radius along it to reach the rim.
func (c Cylinder) Support(direction math32.Vector3) (math32.Vector3, error) {
	h := c.Height()
	axis := c.CentralAxis().DivScalar(h)
	proj := axis.Dot(direction)
	p := c.center().Add(axis.MulScalar(math32.SignZero(proj) * 0.5 * h))

	orth := direction.Sub(axis.MulScalar(proj))
	norm := orth.Length()
	if math32.IsZero(norm, math32.DefaultTolerance) {
		return p, nil
	}
	return p.Add(orth.MulScalar(c.Radius / norm)), nil
}
