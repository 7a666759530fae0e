// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit spatial functionality.

package math32

// Triangle represents a triangle made of three vertices,
// in winding order A, B, C.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// TriangleFromIndices returns the triangle of the given points
// selected by the three indices, in index order.
func TriangleFromIndices[I ~int | ~int32 | ~uint32](points []Vector3, idx [3]I) Triangle {
	return Triangle{points[idx[0]], points[idx[1]], points[idx[2]]}
}

// Normal returns the unit normal of the triangle a, b, c,
// oriented by the right-hand rule over the winding order.
// A degenerate triangle has a zero normal.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// TriangleCross returns the unnormalized normal (b - a) x (c - a)
// of the triangle a, b, c. Its length is twice the triangle area.
func TriangleCross(a, b, c Vector3) Vector3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Edges returns the two edge vectors B - A and C - A.
func (t Triangle) Edges() (Vector3, Vector3) {
	return t.B.Sub(t.A), t.C.Sub(t.A)
}

// Cross returns the unnormalized normal of the triangle, see [TriangleCross].
func (t Triangle) Cross() Vector3 {
	return TriangleCross(t.A, t.B, t.C)
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	v0 := t.C.Sub(t.B)
	v1 := t.A.Sub(t.B)
	return v0.Cross(v1).Length() * 0.5
}

// Midpoint returns the triangle's midpoint.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the triangle's normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}
