package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/intgeom/pkg/geom"
)

func main() {
	// Bound a point cloud
	points := []geom.Vec3{
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 0, Z: 9},
		{X: 5, Y: 5, Z: 5},
	}
	box, err := geom.FromPoints(points)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Box: %v\n", box)
	fmt.Printf("Center: %v\n", box.Center())
	fmt.Printf("Extent: %v\n", box.Extent())

	// Classify points against the box
	fmt.Printf("Contains {0 1 5}: %v\n", box.ContainsPoint(geom.Vec3{X: 0, Y: 1, Z: 5}))
	fmt.Printf("Contains {50 0 0}: %v\n", box.ContainsPoint(geom.Vec3{X: 50, Y: 0, Z: 0}))

	// Enumerate corners in the fixed render order
	for i, c := range box.Corners() {
		fmt.Printf("corner %d: %v\n", i, c)
	}
}
