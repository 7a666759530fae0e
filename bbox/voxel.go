// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbox

import (
	"fmt"

	"cogentcore.org/spatial/math32"
)

// VoxelGrid is the metadata of a regular voxel grid in world space.
type VoxelGrid struct {

	// Shape is the number of voxels along each axis.
	Shape math32.Vector3i

	// VoxelDimensions is the voxel spacing along each axis.
	// Legacy atlases may have negative components, in which
	// case Offset is not the minimum corner on that axis.
	VoxelDimensions math32.Vector3

	// Offset is the world position of voxel index (0, 0, 0).
	Offset math32.Vector3
}

// World returns the world position of the given (possibly fractional)
// voxel index: Offset + index * VoxelDimensions.
func (vg VoxelGrid) World(index math32.Vector3) math32.Vector3 {
	return vg.Offset.Add(index.Mul(vg.VoxelDimensions))
}

// Bounds returns the bounding box of the voxel index range [lo, hi),
// mapped to world space. The two mapped corners are ordered per axis,
// which handles negative voxel dimensions.
func (vg VoxelGrid) Bounds(lo, hi math32.Vector3i) BoundingBox {
	a := vg.World(lo.ToVector3())
	b := vg.World(hi.ToVector3())
	return BoundingBox{a.Min(b), a.Max(b)}
}

// FromVoxelGrid returns the bounding box of the whole voxel grid:
// from Offset to Offset + Shape * VoxelDimensions, ordered per axis.
func FromVoxelGrid(vg VoxelGrid) BoundingBox {
	return vg.Bounds(math32.Vector3i{}, vg.Shape)
}

// OccupancyGrid is a dense 3D occupancy volume.
type OccupancyGrid struct {

	// Shape is the number of voxels along each axis.
	Shape math32.Vector3i

	// Values holds Shape.Len() occupancy values in row-major order:
	// the index of voxel (i, j, k) is (i*Shape.Y + j)*Shape.Z + k.
	Values []bool
}

// Index returns the flat index of voxel (i, j, k) in Values.
func (og OccupancyGrid) Index(i, j, k int) int {
	return (i*int(og.Shape.Y)+j)*int(og.Shape.Z) + k
}

// Occupied returns whether voxel (i, j, k) is occupied.
func (og OccupancyGrid) Occupied(i, j, k int) bool {
	return og.Values[og.Index(i, j, k)]
}

// OccupiedRange returns the index box of the occupied voxels:
// lo is the minimum occupied index (inclusive) and hi the maximum
// occupied index plus one (exclusive). It returns [ErrLength] if
// Values does not match Shape, and [ErrEmpty] if no voxel is occupied.
func (og OccupancyGrid) OccupiedRange() (lo, hi math32.Vector3i, err error) {
	if len(og.Values) != og.Shape.Len() {
		err = fmt.Errorf("%w: %d values for shape %v", ErrLength, len(og.Values), og.Shape)
		return
	}
	nx, ny, nz := int(og.Shape.X), int(og.Shape.Y), int(og.Shape.Z)
	found := false
	for i := range nx {
		for j := range ny {
			for k := range nz {
				if !og.Occupied(i, j, k) {
					continue
				}
				idx := math32.Vec3i(int32(i), int32(j), int32(k))
				if !found {
					lo, hi = idx, idx
					found = true
					continue
				}
				lo = math32.Vec3i(min(lo.X, idx.X), min(lo.Y, idx.Y), min(lo.Z, idx.Z))
				hi = math32.Vec3i(max(hi.X, idx.X), max(hi.Y, idx.Y), max(hi.Z, idx.Z))
			}
		}
	}
	if !found {
		err = ErrEmpty
		return
	}
	hi = math32.Vec3i(hi.X+1, hi.Y+1, hi.Z+1)
	return
}

// FromOccupancy returns the world space bounding box of the occupied voxels
// of the given grid, placed in the world with the given voxel dimensions
// and offset (the Shape of the grid is used; see [VoxelGrid.Bounds]).
func FromOccupancy(og OccupancyGrid, voxelDimensions, offset math32.Vector3) (BoundingBox, error) {
	lo, hi, err := og.OccupiedRange()
	if err != nil {
		return BoundingBox{}, fmt.Errorf("FromOccupancy: %w", err)
	}
	vg := VoxelGrid{Shape: og.Shape, VoxelDimensions: voxelDimensions, Offset: offset}
	return vg.Bounds(lo, hi), nil
}
