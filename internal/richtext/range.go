package richtext

import "fmt"

// Range designates a span of characters inside a buffer.
// Locations are expressed in runes, not bytes.
type Range struct {
	Location int
	Length   int
}

func NewRange(location, length int) Range {
	return Range{Location: location, Length: length}
}

// End returns the first index past the range.
func (r Range) End() int {
	return r.Location + r.Length
}

func (r Range) IsEmpty() bool {
	return r.Length == 0
}

func (r Range) Contains(index int) bool {
	return index >= r.Location && index < r.End()
}

// Union returns the smallest range covering both ranges.
func (r Range) Union(other Range) Range {
	location := r.Location
	if other.Location < location {
		location = other.Location
	}
	end := r.End()
	if other.End() > end {
		end = other.End()
	}
	return Range{Location: location, Length: end - location}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Location, r.End())
}
