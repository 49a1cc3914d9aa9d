package optimizer

import "github.com/serdarekici/inventory-management/internal/domain"

// NineBoxSegment is the cross of a part's value category and variability
// class. Code is the two-letter concatenation, one of the 9 defined codes.
type NineBoxSegment struct {
	PartNum  string
	Category string
	Class    string
	Code     string
}

// SegmentGrid joins value and variability segments by PartNum. Parts never
// ranked by value default to category C; parts without a variability record
// default to class H, so a lookup always yields a valid code.
type SegmentGrid struct {
	categories map[string]string
	classes    map[string]string
}

// NewSegmentGrid builds the grid from classifier outputs.
func NewSegmentGrid(values []domain.ValueSegment, variability []domain.VariabilitySegment) *SegmentGrid {
	g := &SegmentGrid{
		categories: make(map[string]string, len(values)),
		classes:    make(map[string]string, len(variability)),
	}
	for _, v := range values {
		g.categories[v.PartNum] = v.Category
	}
	for _, v := range variability {
		g.classes[v.PartNum] = v.Class
	}
	return g
}

// Segment returns the nine-box segment for a part, applying the C/H
// defaults for missing keys.
func (g *SegmentGrid) Segment(partNum string) NineBoxSegment {
	category, ok := g.categories[partNum]
	if !ok {
		category = "C"
	}
	class, ok := g.classes[partNum]
	if !ok {
		class = "H"
	}
	return NineBoxSegment{
		PartNum:  partNum,
		Category: category,
		Class:    class,
		Code:     category + class,
	}
}
