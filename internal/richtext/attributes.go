package richtext

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// Attribute names supported by the formatting engine.
const (
	AttributeFontWeight     = "font-weight"     // "bold"
	AttributeFontStyle      = "font-style"      // "italic"
	AttributeParagraphStyle = "paragraph-style" // "body"
	AttributeKern           = "kern"            // float64, marker spacing hint
	AttributeListKind       = "list-kind"       // serialized list kind token
	AttributeCaretMarker    = "caret-marker"    // bool, caret lands after this character
	AttributeLink           = "link"            // URL string
)

// Attributes is the mapping carried by a contiguous range of characters.
type Attributes map[string]any

func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	result := make(Attributes, len(a))
	for key, value := range a {
		result[key] = value
	}
	return result
}

// Keys returns the attribute names in deterministic order.
func (a Attributes) Keys() []string {
	var results []string
	for key := range a {
		results = append(results, key)
	}
	slices.Sort(results)
	return results
}

// Equal compares two attribute mappings by value.
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for key, value := range a {
		otherValue, ok := other[key]
		if !ok || !reflect.DeepEqual(value, otherValue) {
			return false
		}
	}
	return true
}

// Merge returns a new mapping with the other attributes applied on top.
func (a Attributes) Merge(other Attributes) Attributes {
	result := a.Clone()
	for key, value := range other {
		result[key] = value
	}
	return result
}

func (a Attributes) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range a.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s=%v", key, a[key]))
	}
	sb.WriteString("}")
	return sb.String()
}
