package main

import (
	"fmt"

	"github.com/beetlebugorg/intgeom/pkg/geom"
)

func main() {
	// Empty is the identity element: fold any number of boxes into it and
	// the result is their union bound. Zero boxes leaves Empty unchanged.
	chunks := []geom.Box{
		geom.New(geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 15, Y: 15, Z: 15}),
		geom.New(geom.Vec3{X: 16, Y: 0, Z: 0}, geom.Vec3{X: 31, Y: 15, Z: 15}),
		geom.New(geom.Vec3{X: 0, Y: 16, Z: 0}, geom.Vec3{X: 15, Y: 31, Z: 15}),
	}

	world := geom.Empty()
	for _, c := range chunks {
		world.ExpandBox(c)
	}
	fmt.Printf("world bound: %v\n", world)

	// Growing by individual points works the same way.
	acc := geom.Empty()
	for _, p := range []geom.Vec3{{X: 5, Y: -2, Z: 8}, {X: -1, Y: 4, Z: 0}} {
		acc.ExpandPoint(p)
	}
	fmt.Printf("point bound: %v\n", acc)

	// The value-returning forms compose without mutation.
	fmt.Printf("merged: %v\n", world.MergeBox(acc))
}
