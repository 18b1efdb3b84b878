package search

import "strings"

// tutorial and administrative sections are listed with "Staff" as the
//    instructor so a substring check is used as the heuristic
// a professor actually named something containing Staff would be a
//    false positive which is accepted for compatibility with the
//    already indexed data
const staffMarker = "Staff"

// FilterSections drops the sections of a retrieved course document
// that look like tutorials. The second return is false when nothing
// survives, which makes the whole course ineligible for display.
func FilterSections(doc Document) ([]Section, bool) {
	var kept []Section
	for _, s := range doc.Sections {
		if strings.Contains(s.Prof, staffMarker) {
			continue
		}
		kept = append(kept, s)
	}
	return kept, len(kept) > 0
}

// SectionPolicy picks the representative section for a course out of
// its eligible sections. eligible is never empty.
type SectionPolicy interface {
	Pick(eligible []Section) Section
}

// firstEligible keeps the first section in original order and throws
// the alternate time slots away
type firstEligible struct{}

func (firstEligible) Pick(eligible []Section) Section {
	return eligible[0]
}

// FirstEligible is the default representative section policy.
var FirstEligible SectionPolicy = firstEligible{}
