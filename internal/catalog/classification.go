package catalog

// Classification is the outcome of locating a field.
type Classification string

const (
	// Normal fields live in a real category's public data.
	Normal Classification = "normal"
	// HiddenField fields live in a hidden overlay or in the extra overlay. They resolve
	// by name but are never listed.
	HiddenField Classification = "hidden"
	// Invalid fields were not found in any consulted catalog.
	Invalid Classification = "invalid"
)

// Location is the result of a locate operation. Source is empty for invalid fields.
type Location struct {
	Value          any
	Classification Classification
	Source         string
}

// Found reports whether the field resolved to a value.
func (l Location) Found() bool {
	return l.Classification != Invalid
}

func invalidLocation() Location {
	return Location{Classification: Invalid}
}
