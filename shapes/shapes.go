// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes provides convex shapes with a common capability set:
// centroid, axis-aligned bounding box, and support mapping, for use by
// broad-phase pruning and GJK-style narrow-phase overlap tests.
//
// The shapes are [Sphere], [ConvexPolygon] (a triangulated convex hull),
// [Cylinder] and [TaperedCapsule]. [TaperedCapsule] only provides a
// bounding box; its other capabilities return [ErrNotSupported].
package shapes

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/spatial/bbox"
	"cogentcore.org/spatial/math32"
)

var (
	// ErrNotSupported is returned by a capability that is not
	// implemented for a given shape. Use errors.Is to branch on it.
	ErrNotSupported = errors.New("shapes: not supported for this shape")

	// ErrInvalidTopology is returned when the points and triangles of a
	// polygon are inconsistent: too few points, no triangles, or an
	// index out of range.
	ErrInvalidTopology = errors.New("shapes: invalid polygon topology")
)

// Shape is the capability set shared by all shapes.
type Shape interface {

	// Centroid returns the center of the shape.
	Centroid() (math32.Vector3, error)

	// BoundingBox returns the axis-aligned bounding box of the shape.
	BoundingBox() bbox.BoundingBox

	// Support returns a point of the shape boundary that maximizes
	// the dot product with the given unit direction.
	Support(direction math32.Vector3) (math32.Vector3, error)
}

var (
	_ Shape = Sphere{}
	_ Shape = (*ConvexPolygon)(nil)
	_ Shape = Cylinder{}
	_ Shape = TaperedCapsule{}
)
