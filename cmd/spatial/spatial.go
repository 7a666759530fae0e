// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spatial reports the convex hull geometry of a point cloud:
// centroid, volume, bounding box, inscribed sphere and support points.
package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/cli"
	"cogentcore.org/spatial/hull"
	"cogentcore.org/spatial/math32"
	"cogentcore.org/spatial/shapes"
)

// Config is the configuration information for the spatial cli.
type Config struct {

	// Input is the JSON point cloud file, holding a [PointCloud].
	Input string `posarg:"0"`

	// Direction is the support direction, as comma separated x,y,z.
	// It is normalized before use.
	Direction string `default:"0,0,1" flag:"d,direction"`

	// Epsilon is the coplanarity tolerance of the convex hull.
	// It is relative to the largest coordinate; zero selects the default.
	Epsilon float64
}

// PointCloud is the JSON file format read by the spatial cli.
type PointCloud struct {
	Points []math32.Vector3
}

func main() {
	opts := cli.DefaultOptions("spatial", "Spatial reports the convex hull geometry of a point cloud.")
	cli.Run(opts, &Config{}, Info, Support)
}

// Info prints the centroid, volume, bounding box and inscribed
// sphere of the convex hull of the input point cloud.
func Info(c *Config) error {
	cp, err := loadPolygon(c)
	if err != nil {
		return err
	}
	ctr := errors.Log1(cp.Centroid())
	is := cp.InscribedSphere()
	fmt.Printf("vertices:         %d\n", len(cp.Points()))
	fmt.Printf("faces:            %d\n", len(cp.Triangles()))
	fmt.Printf("centroid:         %v\n", ctr)
	fmt.Printf("volume:           %g\n", cp.Volume())
	fmt.Printf("bounding box:     %v\n", cp.BoundingBox())
	fmt.Printf("inscribed sphere: center %v radius %g\n", is.Center, is.Radius)
	return nil
}

// Support prints the brute force and hill climbing support
// points of the convex hull of the input point cloud.
func Support(c *Config) error {
	d, err := parseDirection(c.Direction)
	if err != nil {
		return err
	}
	cp, err := loadPolygon(c)
	if err != nil {
		return err
	}
	bf, err := cp.Support(d)
	if err != nil {
		return err
	}
	hc := cp.SupportHillClimbing(d)
	fmt.Printf("direction:     %v\n", d)
	fmt.Printf("brute force:   %v (score %g)\n", bf, bf.Dot(d))
	fmt.Printf("hill climbing: %v (score %g)\n", hc, hc.Dot(d))
	return nil
}

// loadPolygon opens the input point cloud and returns its convex hull.
func loadPolygon(c *Config) (*shapes.ConvexPolygon, error) {
	if c.Input == "" {
		return nil, errors.New("spatial: no input file specified")
	}
	pc := &PointCloud{}
	if err := jsonx.Open(pc, c.Input); err != nil {
		return nil, err
	}
	cp, err := shapes.ConvexPolygonFromPointCloud(pc.Points, hull.QuickHull{Epsilon: c.Epsilon})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Input, err)
	}
	slog.Info("loaded point cloud", "file", c.Input, "points", len(pc.Points), "vertices", len(cp.Points()), "faces", len(cp.Triangles()))
	return cp, nil
}

// parseDirection parses comma separated x,y,z into a unit vector.
func parseDirection(s string) (math32.Vector3, error) {
	fs := strings.Split(s, ",")
	if len(fs) != 3 {
		return math32.Vector3{}, fmt.Errorf("spatial: direction %q must have 3 components", s)
	}
	var d math32.Vector3
	for i, f := range fs {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return math32.Vector3{}, fmt.Errorf("spatial: direction %q: %w", s, err)
		}
		d.SetDim(math32.Dims(i), float32(v))
	}
	if d.IsNil() {
		return math32.Vector3{}, fmt.Errorf("spatial: direction %q is zero", s)
	}
	return d.Normal(), nil
}
