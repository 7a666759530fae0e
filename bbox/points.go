// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbox

import (
	"fmt"

	"cogentcore.org/spatial/math32"
)

// empty returns a box with min / max at +/- Infinity,
// which any expansion replaces.
func empty() BoundingBox {
	b := BoundingBox{}
	b.Min.SetScalar(math32.Infinity)
	b.Max.SetScalar(-math32.Infinity)
	return b
}

// expandByPoint may expand this bounding box to include the specified point.
func (b *BoundingBox) expandByPoint(point math32.Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// FromPoints returns the bounding box of the given points:
// the min and max per axis over the whole set.
// It returns [ErrEmpty] if there are no points.
func FromPoints(points []math32.Vector3) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, fmt.Errorf("FromPoints: %w", ErrEmpty)
	}
	b := empty()
	for _, p := range points {
		b.expandByPoint(p)
	}
	return b, nil
}

// FromSpheres returns the bounding box of the spheres with the given
// centers and radii: the min of center - radius and max of center + radius.
// It returns [ErrEmpty] if there are no spheres and [ErrLength] if
// the number of centers and radii differ.
func FromSpheres(centers []math32.Vector3, radii []float32) (BoundingBox, error) {
	if err := checkSpheres(centers, radii); err != nil {
		return BoundingBox{}, fmt.Errorf("FromSpheres: %w", err)
	}
	if len(centers) == 0 {
		return BoundingBox{}, fmt.Errorf("FromSpheres: %w", ErrEmpty)
	}
	b := empty()
	for i, c := range centers {
		b.expandByPoint(c.SubScalar(radii[i]))
		b.expandByPoint(c.AddScalar(radii[i]))
	}
	return b, nil
}

func checkSpheres(centers []math32.Vector3, radii []float32) error {
	if len(centers) != len(radii) {
		return fmt.Errorf("%w: %d centers, %d radii", ErrLength, len(centers), len(radii))
	}
	return nil
}
