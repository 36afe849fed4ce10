// Package geom provides axis-aligned bounding volumes on the integer lattice.
//
// The central type is Box, an immutable axis-aligned bounding box whose
// corners are int32 vectors. Boxes are plain values: construct them, merge
// them, query them, copy them freely. Every operation is a pure function of
// its inputs, so boxes may be shared across goroutines without locking.
package geom

import (
	"fmt"

	"golang.org/x/text/message"
)

// Box is an axis-aligned bounding box with integer corners.
//
// A box is "valid" when Min ≤ Max on every axis. Construction never enforces
// this: inverted boxes are accepted everywhere, and the canonical Empty box
// deliberately inverts every axis so that it acts as the identity element
// when folding points or boxes into an accumulator.
//
// Example - bounding a point cloud:
//
//	points := []geom.Vec3{{1, 2, 3}, {-4, 0, 9}, {5, 5, 5}}
//	box, err := geom.FromPoints(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(box) // Minimum:{X:-4 Y:0 Z:3} Maximum:{X:5 Y:5 Z:9}
//
// Example - incremental accumulation over a stream:
//
//	acc := geom.Empty()
//	for _, b := range boxes {
//	    acc.ExpandBox(b)
//	}
type Box struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// New creates a box from its two corners.
//
// The corners are stored verbatim. New does not validate Min ≤ Max; callers
// that need a proper box are responsible for supplying ordered corners.
func New(min, max Vec3) Box {
	return Box{Min: min, Max: max}
}

// Empty returns the canonical empty box: Min at (MaxComponent, MaxComponent,
// MaxComponent) and Max at (MinComponent, MinComponent, MinComponent).
//
// Empty is the identity element for MergePoint, MergeBox and the Expand
// variants: merging anything into it yields that thing unchanged. It is the
// seed for FromPoints and for any fold over zero or more boxes.
func Empty() Box {
	return Box{
		Min: Vec3{MaxComponent, MaxComponent, MaxComponent},
		Max: Vec3{MinComponent, MinComponent, MinComponent},
	}
}

// IsEmpty reports whether the box is inverted on any axis (Max < Min).
// The canonical Empty box is empty; so is any box a caller constructed
// with crossed corners.
func (b Box) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// FromPoints computes the bounding box of a point set.
//
// The fold is seeded from Empty, so an empty (but non-nil) slice returns the
// Empty box unchanged. Iteration order does not matter: component-wise min
// and max are commutative and associative.
//
// A nil slice is the only rejected input and returns *ErrInvalidArgument.
func FromPoints(points []Vec3) (Box, error) {
	if points == nil {
		return Box{}, &ErrInvalidArgument{Op: "FromPoints", Reason: "nil point slice"}
	}
	box := Empty()
	for _, p := range points {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box, nil
}

// SetFromPoints is the output-slot form of FromPoints: it writes the bounding
// box of points into the receiver instead of returning a new value. Both
// forms produce identical results; this one exists for hot paths that reuse
// a caller-owned box.
func (b *Box) SetFromPoints(points []Vec3) error {
	box, err := FromPoints(points)
	if err != nil {
		return err
	}
	*b = box
	return nil
}

// MergePoint returns the box grown to include p.
func (b Box) MergePoint(p Vec3) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// MergeBox returns the smallest box enclosing both b and other.
//
// MergeBox is commutative and associative, and MergeBox with Empty returns
// the other operand unchanged, so Empty is the identity for folding an
// unbounded stream of boxes into one.
func (b Box) MergeBox(other Box) Box {
	return Box{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// ExpandPoint grows the receiver in place to include p. Semantically
// identical to MergePoint; the in-place form avoids copies in hot loops.
func (b *Box) ExpandPoint(p Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandBox grows the receiver in place to enclose other. Semantically
// identical to MergeBox.
func (b *Box) ExpandBox(other Box) {
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
}

// Center returns the approximate center of the box, (Min+Max)/2 with
// truncating integer division. The fractional half-unit is lost for odd
// spans. The sum may wrap per two's complement for corners near the int32
// extremes; nothing guards or panics.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Div(2)
}

// Extent returns the approximate half-size of the box, (Max-Min)/2 with
// truncating integer division. Same wraparound caveat as Center.
func (b Box) Extent() Vec3 {
	return b.Max.Sub(b.Min).Div(2)
}

// Corners returns the eight corner points of the box in a fixed order:
// the max-Z face first, then the min-Z face, each traced in the same
// angular order. Downstream visualization and tessellation code indexes
// into this array, so the order is a contract, not an implementation
// detail.
//
// Corners performs no validation; an inverted box yields eight (possibly
// coincident) points built from the stored corners.
func (b Box) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Min.Z},
	}
}

// Equal reports whether b and other have identical corners. Box is a
// comparable struct, so == works too; Equal exists for call sites that
// want the intent spelled out.
func (b Box) Equal(other Box) bool {
	return b == other
}

// String renders the box as "Minimum:{X:0 Y:0 Z:0} Maximum:{X:2 Y:2 Z:2}".
func (b Box) String() string {
	return fmt.Sprintf("Minimum:{%v} Maximum:{%v}", b.Min, b.Max)
}

// Sprint renders the box applying verb to every scalar component.
// The verb must be a single fmt verb for integers, e.g. "%06d" or "%x".
func (b Box) Sprint(verb string) string {
	component := "X:" + verb + " Y:" + verb + " Z:" + verb
	format := "Minimum:{" + component + "} Maximum:{" + component + "}"
	return fmt.Sprintf(format,
		b.Min.X, b.Min.Y, b.Min.Z,
		b.Max.X, b.Max.Y, b.Max.Z)
}

// LocalizedString renders the box through a message printer so that scalar
// components pick up locale-specific digit formatting (grouping separators
// and digit shapes).
//
// Example:
//
//	p := message.NewPrinter(language.English)
//	box.LocalizedString(p) // Minimum:{X:-1,000,000 ...} ...
func (b Box) LocalizedString(p *message.Printer) string {
	return p.Sprintf("Minimum:{X:%d Y:%d Z:%d} Maximum:{X:%d Y:%d Z:%d}",
		b.Min.X, b.Min.Y, b.Min.Z,
		b.Max.X, b.Max.Y, b.Max.Z)
}
