package ir

import "slices"

// Tag names why a node was synthesized.
type Tag string

const (
	// TagThisType marks a reference generated to stand in for a self-type.
	TagThisType Tag = "this_type"
)

// Provenance is a small ordered set of tags. It is fixed when a node is
// built; there are no mutators, only With which returns a new set.
type Provenance struct {
	tags []Tag
}

// NewProvenance builds a set from tags, dropping duplicates and keeping
// first-seen order.
func NewProvenance(tags ...Tag) Provenance {
	var p Provenance
	for _, t := range tags {
		if !slices.Contains(p.tags, t) {
			p.tags = append(p.tags, t)
		}
	}
	return p
}

// Has reports whether tag is present.
func (p Provenance) Has(tag Tag) bool {
	return slices.Contains(p.tags, tag)
}

// Tags returns a copy of the tags in order.
func (p Provenance) Tags() []Tag {
	return slices.Clone(p.tags)
}

// IsZero reports whether the set is empty.
func (p Provenance) IsZero() bool {
	return len(p.tags) == 0
}

// With returns a new set with tag appended if absent.
func (p Provenance) With(tag Tag) Provenance {
	return NewProvenance(append(p.Tags(), tag)...)
}
