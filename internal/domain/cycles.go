package domain

import "fmt"

// The two Wu Xing cycles, table-driven as the tradition itself defines them:
//
//	Generation: Wood → Fire → Earth → Metal → Water → Wood
//	Control:    Wood → Earth → Water → Fire → Metal → Wood
var (
	generates = [5]Element{Wood: Fire, Fire: Earth, Earth: Metal, Metal: Water, Water: Wood}
	controls  = [5]Element{Wood: Earth, Earth: Water, Water: Fire, Fire: Metal, Metal: Wood}
)

// Generates returns the element e produces in the generation cycle.
func (e Element) Generates() Element {
	if !e.Valid() {
		panic(fmt.Sprintf("domain: generation lookup on invalid element %d", int(e)))
	}
	return generates[e]
}

// Controls returns the element e restrains in the control cycle.
func (e Element) Controls() Element {
	if !e.Valid() {
		panic(fmt.Sprintf("domain: control lookup on invalid element %d", int(e)))
	}
	return controls[e]
}

// GeneratedBy returns the element that produces e.
func (e Element) GeneratedBy() Element {
	if !e.Valid() {
		panic(fmt.Sprintf("domain: generation lookup on invalid element %d", int(e)))
	}
	for _, other := range Elements {
		if generates[other] == e {
			return other
		}
	}
	panic("domain: generation cycle is not a permutation") // unreachable
}

// ControlledBy returns the element that restrains e.
func (e Element) ControlledBy() Element {
	if !e.Valid() {
		panic(fmt.Sprintf("domain: control lookup on invalid element %d", int(e)))
	}
	for _, other := range Elements {
		if controls[other] == e {
			return other
		}
	}
	panic("domain: control cycle is not a permutation") // unreachable
}

// Relation classifies an element's position relative to a reference element
// (in chart analysis, the Day Master's element).
type Relation int

const (
	// RelationSame: the elements are identical.
	RelationSame Relation = iota
	// RelationGeneratesRef: the element produces the reference (supports it).
	RelationGeneratesRef
	// RelationGeneratedByRef: the reference produces the element (drains it).
	RelationGeneratedByRef
	// RelationControlsRef: the element restrains the reference.
	RelationControlsRef
	// RelationControlledByRef: the reference restrains the element
	// (controlling still costs the reference effort, so this drains too).
	RelationControlledByRef
)

var relationNames = [5]string{"same", "generates", "generated-by", "controls", "controlled-by"}

// String returns a short relation label, from the reference element's viewpoint.
func (r Relation) String() string {
	if r < RelationSame || r > RelationControlledByRef {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// RelationTo classifies other relative to the reference element ref.
// Exactly one of the five relations always applies: the generation and
// control cycles together connect every ordered element pair.
func RelationTo(ref, other Element) Relation {
	if !ref.Valid() || !other.Valid() {
		panic(fmt.Sprintf("domain: relation lookup on invalid elements %d, %d", int(ref), int(other)))
	}
	switch {
	case ref == other:
		return RelationSame
	case other.Generates() == ref:
		return RelationGeneratesRef
	case ref.Generates() == other:
		return RelationGeneratedByRef
	case other.Controls() == ref:
		return RelationControlsRef
	default:
		return RelationControlledByRef
	}
}

// Supports reports whether the relation strengthens the reference element.
// Same-element peers and generators support; everything else drains.
func (r Relation) Supports() bool {
	return r == RelationSame || r == RelationGeneratesRef
}
