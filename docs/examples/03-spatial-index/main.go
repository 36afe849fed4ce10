package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/intgeom/pkg/geom"
	"github.com/beetlebugorg/intgeom/pkg/index"
)

func main() {
	// Index a 4x4 grid of 16-cell chunks
	idx := index.New()
	for x := int32(0); x < 4; x++ {
		for z := int32(0); z < 4; z++ {
			err := idx.Insert(index.Entry{
				ID:  fmt.Sprintf("chunk-%d-%d", x, z),
				Box: geom.New(geom.Vec3{X: x * 16, Y: 0, Z: z * 16}, geom.Vec3{X: x*16 + 15, Y: 63, Z: z*16 + 15}),
			})
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	// Find chunks intersecting a viewport
	viewport := geom.New(geom.Vec3{X: 10, Y: 0, Z: 10}, geom.Vec3{X: 40, Y: 63, Z: 40})
	for _, e := range idx.Query(viewport, index.QueryOptions{}) {
		fmt.Printf("visible: %s %v\n", e.ID, e.Box)
	}

	// Find the chunks closest to a position
	for _, e := range idx.Nearest(2, geom.Vec3{X: 33, Y: 10, Z: 33}) {
		fmt.Printf("nearest: %s\n", e.ID)
	}
}
