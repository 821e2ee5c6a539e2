package format

import (
	"fmt"
	"regexp"
	"strconv"
)

// ListCategory is the closed set of supported list styles.
type ListCategory int

const (
	CategoryBullet ListCategory = iota
	CategoryDashed
	CategoryOrdered
	CategoryCheckmark
)

func (c ListCategory) String() string {
	switch c {
	case CategoryBullet:
		return "bullet"
	case CategoryDashed:
		return "dashed"
	case CategoryOrdered:
		return "ordered"
	case CategoryCheckmark:
		return "checkmark"
	}
	panic(fmt.Sprintf("format: unknown list category %d", int(c)))
}

// ListKind is the tagged classification of a list line: the category plus the
// optional associated value (sequence number for ordered items, checked state
// for checkmark items).
type ListKind struct {
	Category ListCategory
	Number   *int  // ordered only
	Checked  *bool // checkmark only
}

func BulletKind() ListKind {
	return ListKind{Category: CategoryBullet}
}

func DashedKind() ListKind {
	return ListKind{Category: CategoryDashed}
}

func OrderedKind(number int) ListKind {
	return ListKind{Category: CategoryOrdered, Number: &number}
}

func CheckmarkKind(checked bool) ListKind {
	return ListKind{Category: CategoryCheckmark, Checked: &checked}
}

// String serializes the kind to its stable token, stored as the value of the
// list-kind buffer attribute. Ex: "bullet", "ordered(3)", "checkmark(true)".
func (k ListKind) String() string {
	switch k.Category {
	case CategoryOrdered:
		if k.Number != nil {
			return fmt.Sprintf("ordered(%d)", *k.Number)
		}
	case CategoryCheckmark:
		if k.Checked != nil {
			return fmt.Sprintf("checkmark(%t)", *k.Checked)
		}
	}
	return k.Category.String()
}

var listKindTokenRegex = regexp.MustCompile(`^(bullet|dashed|ordered|checkmark)(?:\(([^)]+)\))?$`)

// ParseListKind parses a serialized token back into a ListKind.
// A malformed token indicates data corruption, not user input.
func ParseListKind(token string) (ListKind, error) {
	match := listKindTokenRegex.FindStringSubmatch(token)
	if match == nil {
		return ListKind{}, fmt.Errorf("invalid list kind token %q", token)
	}
	value := match[2]
	switch match[1] {
	case "bullet":
		if value != "" {
			return ListKind{}, fmt.Errorf("invalid list kind token %q", token)
		}
		return BulletKind(), nil
	case "dashed":
		if value != "" {
			return ListKind{}, fmt.Errorf("invalid list kind token %q", token)
		}
		return DashedKind(), nil
	case "ordered":
		if value == "" {
			return ListKind{Category: CategoryOrdered}, nil
		}
		number, err := strconv.Atoi(value)
		if err != nil {
			return ListKind{}, fmt.Errorf("invalid ordered list token %q", token)
		}
		return OrderedKind(number), nil
	case "checkmark":
		switch value {
		case "":
			return ListKind{Category: CategoryCheckmark}, nil
		case "true":
			return CheckmarkKind(true), nil
		case "false":
			return CheckmarkKind(false), nil
		}
		return ListKind{}, fmt.Errorf("invalid checkmark token %q", token)
	}
	return ListKind{}, fmt.Errorf("invalid list kind token %q", token)
}

// MustParseListKind parses a token written by this engine or panic.
func MustParseListKind(token string) ListKind {
	kind, err := ParseListKind(token)
	if err != nil {
		panic(err)
	}
	return kind
}

// NextItem returns the kind of the item created when the user presses return
// inside a list: same kind for bullet and dashed, next number for ordered,
// unchecked for checkmark.
func (k ListKind) NextItem() ListKind {
	switch k.Category {
	case CategoryBullet:
		return BulletKind()
	case CategoryDashed:
		return DashedKind()
	case CategoryOrdered:
		return OrderedKind(k.number() + 1)
	case CategoryCheckmark:
		return CheckmarkKind(false)
	}
	panic(fmt.Sprintf("format: unknown list category %d", int(k.Category)))
}

// Marker returns the rendered glyph replacing the raw markdown syntax,
// without the trailing space. The checkmark glyph is a zero-width placeholder:
// the visible check icon is rendered by the presentation overlay.
func (k ListKind) Marker() string {
	switch k.Category {
	case CategoryBullet:
		return "•"
	case CategoryDashed:
		return "–" // en dash, not the hyphen of the raw syntax
	case CategoryOrdered:
		return fmt.Sprintf("%d.", k.number())
	case CategoryCheckmark:
		return "\u200b"
	}
	panic(fmt.Sprintf("format: unknown list category %d", int(k.Category)))
}

// MarkdownPrefix returns the canonical plain-text encoding of the marker.
func (k ListKind) MarkdownPrefix() string {
	switch k.Category {
	case CategoryBullet:
		return "* "
	case CategoryDashed:
		return "- "
	case CategoryOrdered:
		return fmt.Sprintf("%d. ", k.number())
	case CategoryCheckmark:
		if k.checked() {
			return "[x] "
		}
		return "[_] "
	}
	panic(fmt.Sprintf("format: unknown list category %d", int(k.Category)))
}

// Kern returns the marker spacing hint stored in the kern attribute.
func (k ListKind) Kern() float64 {
	switch k.Category {
	case CategoryBullet, CategoryDashed:
		return 6.5
	case CategoryOrdered:
		return 3.5
	}
	return 0
}

func (k ListKind) number() int {
	if k.Number != nil {
		return *k.Number
	}
	return 1
}

func (k ListKind) checked() bool {
	if k.Checked != nil {
		return *k.Checked
	}
	return false
}

/*
 * Trigger table
 */

// listDescriptor binds a category to its plain-text trigger.
// Adding a list style means adding a table entry.
type listDescriptor struct {
	category ListCategory
	trigger  *regexp.Regexp
	parse    func(groups []string) ListKind
}

// Tried in fixed priority order. The patterns are mutually exclusive so at
// most one can apply to a given line.
var listDescriptors = []listDescriptor{
	{
		category: CategoryBullet,
		trigger:  regexp.MustCompile(`^\* `),
		parse: func(groups []string) ListKind {
			return BulletKind()
		},
	},
	{
		category: CategoryDashed,
		trigger:  regexp.MustCompile(`^- `),
		parse: func(groups []string) ListKind {
			return DashedKind()
		},
	},
	{
		category: CategoryOrdered,
		trigger:  regexp.MustCompile(`^(\d+)\. `),
		parse: func(groups []string) ListKind {
			number, err := strconv.Atoi(groups[1])
			if err != nil {
				panic(err) // unreachable, the pattern captures digits only
			}
			return OrderedKind(number)
		},
	},
	{
		category: CategoryCheckmark,
		trigger:  regexp.MustCompile(`^\[([x_])\] `),
		parse: func(groups []string) ListKind {
			return CheckmarkKind(groups[1] == "x")
		},
	},
}

// ListCategories enumerates the supported categories in priority order.
var ListCategories = []ListCategory{
	CategoryBullet,
	CategoryDashed,
	CategoryOrdered,
	CategoryCheckmark,
}
