// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dots returns the row-wise dot products of a and b: a[i].Dot(b[i]).
// The result has the length of the shorter of the two.
func Dots(a, b []Vector3) []float32 {
	n := min(len(a), len(b))
	ds := make([]float32, n)
	for i := range n {
		ds[i] = a[i].Dot(b[i])
	}
	return ds
}

// DotsDir returns the projection of every point onto dir.
func DotsDir(points []Vector3, dir Vector3) []float32 {
	ds := make([]float32, len(points))
	for i, p := range points {
		ds[i] = p.Dot(dir)
	}
	return ds
}

// ArgMax returns the index of the first largest value in vals,
// or -1 if vals is empty.
func ArgMax(vals []float32) int {
	mi := -1
	var mv float32
	for i, v := range vals {
		if mi < 0 || v > mv {
			mi = i
			mv = v
		}
	}
	return mi
}

// Mean returns the arithmetic mean of the points,
// or the zero vector if there are none.
func Mean(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum.SetAdd(p)
	}
	return sum.DivScalar(float32(len(points)))
}
