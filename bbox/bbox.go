// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bbox provides axis-aligned bounding boxes (AABBs):
// the [BoundingBox] value type, constructors from point sets, spheres
// and voxel grids, AABBs of capped primitives, and tolerant
// point-in-box and sphere-in-box inclusion tests.
package bbox

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/spatial/math32"
)

var (
	// ErrEmpty is returned when a bounding box is requested
	// for an empty set of points or voxels.
	ErrEmpty = errors.New("bbox: empty input")

	// ErrLength is returned when parallel inputs (such as centers and radii)
	// do not have matching lengths.
	ErrLength = errors.New("bbox: mismatched input lengths")

	// ErrInverted is returned when a min corner exceeds the max corner.
	ErrInverted = errors.New("bbox: min point exceeds max point")

	// ErrNotFinite is returned when a corner has a NaN or infinite component.
	ErrNotFinite = errors.New("bbox: non-finite corner")
)

// BoundingBox represents a 3D axis-aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// Min is <= Max on every axis.
type BoundingBox struct {
	Min math32.Vector3
	Max math32.Vector3
}

// New returns a new [BoundingBox] from the given corners,
// returning [ErrNotFinite] if either corner has a NaN or infinite
// component, and [ErrInverted] if min exceeds max on any axis.
func New(min, max math32.Vector3) (BoundingBox, error) {
	if !min.IsFinite() || !max.IsFinite() {
		return BoundingBox{}, fmt.Errorf("%w: min %v, max %v", ErrNotFinite, min, max)
	}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return BoundingBox{}, fmt.Errorf("%w: min %v, max %v", ErrInverted, min, max)
	}
	return BoundingBox{min, max}, nil
}

// B3 returns a new [BoundingBox] from the given minimum and maximum x, y, and z coordinates.
// The corners are not validated.
func B3(x0, y0, z0, x1, y1, z1 float32) BoundingBox {
	return BoundingBox{math32.Vec3(x0, y0, z0), math32.Vec3(x1, y1, z1)}
}

// String implements fmt.Stringer.
func (b BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox{Min: %v, Max: %v}", b.Min, b.Max)
}

// Equal returns whether both corners of this box are close to those of other,
// within [math32.DefaultTolerance].
func (b BoundingBox) Equal(other BoundingBox) bool {
	return b.Min.IsClose(other.Min, math32.DefaultTolerance) &&
		b.Max.IsClose(other.Max, math32.DefaultTolerance)
}

// Center returns the center of the bounding box.
func (b BoundingBox) Center() math32.Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extent returns the vector from the minimum point to the maximum point.
func (b BoundingBox) Extent() math32.Vector3 {
	return b.Max.Sub(b.Min)
}

// Volume returns the absolute product of the extent.
func (b BoundingBox) Volume() float32 {
	return math32.Abs(b.Extent().Product())
}

// Layout returns the 8 corners of the box and the 12 edges of
// the cuboid as index pairs into the corners. Corners 0-3 are the
// bottom face (min z) counter-clockwise from Min, corners 4-7 the top face.
func (b BoundingBox) Layout() (corners [8]math32.Vector3, edges [12][2]int) {
	mn, mx := b.Min, b.Max
	corners = [8]math32.Vector3{
		math32.Vec3(mn.X, mn.Y, mn.Z),
		math32.Vec3(mx.X, mn.Y, mn.Z),
		math32.Vec3(mx.X, mx.Y, mn.Z),
		math32.Vec3(mn.X, mx.Y, mn.Z),
		math32.Vec3(mn.X, mn.Y, mx.Z),
		math32.Vec3(mx.X, mn.Y, mx.Z),
		math32.Vec3(mx.X, mx.Y, mx.Z),
		math32.Vec3(mn.X, mx.Y, mx.Z),
	}
	edges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	return
}

// Union returns a new box that contains both this box and other:
// the componentwise min of the minima and max of the maxima.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// IntersectsBox returns if other box intersects this one.
func (b BoundingBox) IntersectsBox(other BoundingBox) bool {
	// using 6 splitting planes to rule out intersections.
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}

// ContainsPoint returns if this bounding box contains the specified point,
// using the tolerant inclusive comparison of [PointsInside].
func (b BoundingBox) ContainsPoint(point math32.Vector3) bool {
	return pointInside(point, b.Min, b.Max, math32.DefaultTolerance)
}

// Translate moves this box by delta.
func (b *BoundingBox) Translate(delta math32.Vector3) {
	b.Min.SetAdd(delta)
	b.Max.SetAdd(delta)
}

// Scale scales this box by factor about its own center,
// never about the origin. A negative factor is applied by
// magnitude so that Min stays <= Max.
func (b *BoundingBox) Scale(factor float32) {
	c := b.Center()
	f := math32.Abs(factor)
	b.Translate(c.Negate())
	b.Min.SetMulScalar(f)
	b.Max.SetMulScalar(f)
	b.Translate(c)
}

// PointsInside returns for each point whether it lies inside this box,
// see [PointsInside].
func (b BoundingBox) PointsInside(points []math32.Vector3) []bool {
	return PointsInside(points, b.Min, b.Max)
}

// SpheresInside returns for each sphere whether it lies inside this box,
// see [SpheresInside].
func (b BoundingBox) SpheresInside(centers []math32.Vector3, radii []float32) ([]bool, error) {
	return SpheresInside(centers, radii, b.Min, b.Max)
}
