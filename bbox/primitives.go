// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbox

import (
	"fmt"

	"cogentcore.org/spatial/math32"
)

// Sphere returns the bounding box of the sphere at center with radius.
func Sphere(center math32.Vector3, radius float32) BoundingBox {
	return BoundingBox{center.SubScalar(radius), center.AddScalar(radius)}
}

// Spheres returns the bounding box of each sphere. The boxes are
// independent of each other. It returns [ErrLength] if the number
// of centers and radii differ.
func Spheres(centers []math32.Vector3, radii []float32) ([]BoundingBox, error) {
	if err := checkSpheres(centers, radii); err != nil {
		return nil, fmt.Errorf("Spheres: %w", err)
	}
	bs := make([]BoundingBox, len(centers))
	for i, c := range centers {
		bs[i] = Sphere(c, radii[i])
	}
	return bs, nil
}

// Disk returns the bounding box of the flat disk at center, with the
// given normal and radius. Along each axis the half extent is
// radius * sqrt(1 - n^2) for the unit normal component n.
// A zero normal gives the bounding box of the sphere of the same radius.
func Disk(center, normal math32.Vector3, radius float32) BoundingBox {
	n := normal.Normal()
	ext := math32.Vec3(diskExtent(n.X), diskExtent(n.Y), diskExtent(n.Z)).MulScalar(radius)
	return BoundingBox{center.Sub(ext), center.Add(ext)}
}

func diskExtent(n float32) float32 {
	return math32.Sqrt(math32.Max(0, 1-n*n))
}

// Capsule returns the bounding box of the capsule with the given
// segment end points and radius.
func Capsule(p0, p1 math32.Vector3, radius float32) BoundingBox {
	return Sphere(p0, radius).Union(Sphere(p1, radius))
}

// TaperedCapsule returns the bounding box of the tapered capsule with the
// given segment end points and a radius at each end.
func TaperedCapsule(p0, p1 math32.Vector3, r0, r1 float32) BoundingBox {
	return Sphere(p0, r0).Union(Sphere(p1, r1))
}

// Cylinder returns the bounding box of the capped cylinder with the given
// cap centers and radius: the union of the boxes of its two cap disks.
func Cylinder(p0, p1 math32.Vector3, radius float32) BoundingBox {
	axis := p1.Sub(p0)
	return Disk(p0, axis, radius).Union(Disk(p1, axis, radius))
}
