package domain

// RequiredMaterial is a fabrication ingredient: either a concrete item
// (MaterialID) or any item carrying a tag (MaterialTag).
//
// The set of variants is closed. Consumers switch on the concrete type and
// treat the default branch as an error.
type RequiredMaterial interface {
	isRequiredMaterial()
	String() string
}

// MaterialID references a concrete item by identifier.
type MaterialID string

// MaterialTag references any item carrying the tag.
type MaterialTag string

func (MaterialID) isRequiredMaterial()  {}
func (MaterialTag) isRequiredMaterial() {}

func (m MaterialID) String() string  { return string(m) }
func (m MaterialTag) String() string { return "tag:" + string(m) }

// LessMaterial orders concrete ids before tags, then by value.
func LessMaterial(a, b RequiredMaterial) bool {
	_, aTag := a.(MaterialTag)
	_, bTag := b.(MaterialTag)
	if aTag != bTag {
		return !aTag
	}
	return materialValue(a) < materialValue(b)
}

func materialValue(m RequiredMaterial) string {
	switch v := m.(type) {
	case MaterialID:
		return string(v)
	case MaterialTag:
		return string(v)
	default:
		return m.String()
	}
}
