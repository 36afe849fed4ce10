package geom

// Containment classifies the result of a containment test.
type Containment uint8

const (
	// ContainmentDisjoint means the operands share no point.
	ContainmentDisjoint Containment = iota
	// ContainmentContains means the tested operand lies entirely inside,
	// boundary included.
	ContainmentContains
	// ContainmentIntersects means the operands overlap without full
	// containment.
	ContainmentIntersects
)

func (c Containment) String() string {
	switch c {
	case ContainmentDisjoint:
		return "Disjoint"
	case ContainmentContains:
		return "Contains"
	case ContainmentIntersects:
		return "Intersects"
	default:
		return "Unknown"
	}
}

// Queries is the set of classification primitives Box methods dispatch to.
//
// Box owns no intersection or containment algorithm of its own: every
// bounding-volume type in the library funnels through one shared, tested
// implementation. The indirection keeps that implementation substitutable —
// an alternative Queries can be installed with SetQueries.
type Queries interface {
	// BoxIntersectsBox reports whether a and b share at least one point.
	BoxIntersectsBox(a, b Box) bool

	// BoxContainsPoint classifies p against box. Bounds are inclusive:
	// a point with every coordinate inside or on the boundary is
	// ContainmentContains, anything else is ContainmentDisjoint.
	BoxContainsPoint(box Box, p Vec3) Containment

	// BoxContainsBox classifies inner against outer.
	BoxContainsBox(outer, inner Box) Containment
}

// queries is the installed collaborator. Not synchronized: SetQueries is
// meant for initialization, before boxes are shared across goroutines.
var queries Queries = StandardQueries{}

// SetQueries installs q as the classification collaborator used by all Box
// query methods. Call during initialization only.
func SetQueries(q Queries) {
	queries = q
}

// Intersects reports whether b and other share at least one point,
// boundary contact included.
func (b Box) Intersects(other Box) bool {
	return queries.BoxIntersectsBox(b, other)
}

// ContainsPoint classifies p against the box using inclusive bounds.
func (b Box) ContainsPoint(p Vec3) Containment {
	return queries.BoxContainsPoint(b, p)
}

// ContainsBox classifies other against the box: disjoint, fully contained,
// or partially overlapping.
func (b Box) ContainsBox(other Box) Containment {
	return queries.BoxContainsBox(b, other)
}

// StandardQueries is the default Queries implementation: closed-interval
// axis-aligned semantics on every test.
type StandardQueries struct{}

func (StandardQueries) BoxIntersectsBox(a, b Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (StandardQueries) BoxContainsPoint(box Box, p Vec3) Containment {
	if box.Min.X <= p.X && p.X <= box.Max.X &&
		box.Min.Y <= p.Y && p.Y <= box.Max.Y &&
		box.Min.Z <= p.Z && p.Z <= box.Max.Z {
		return ContainmentContains
	}
	return ContainmentDisjoint
}

func (q StandardQueries) BoxContainsBox(outer, inner Box) Containment {
	if !q.BoxIntersectsBox(outer, inner) {
		return ContainmentDisjoint
	}
	if outer.Min.X <= inner.Min.X && inner.Max.X <= outer.Max.X &&
		outer.Min.Y <= inner.Min.Y && inner.Max.Y <= outer.Max.Y &&
		outer.Min.Z <= inner.Min.Z && inner.Max.Z <= outer.Max.Z {
		return ContainmentContains
	}
	return ContainmentIntersects
}
