package richtext

import "fmt"

// EditKind distinguishes character mutations from pure attribute mutations.
type EditKind int

const (
	CharactersEdited EditKind = iota
	AttributesEdited
)

func (k EditKind) String() string {
	if k == AttributesEdited {
		return "attributes"
	}
	return "characters"
}

// Edit describes a single atomic buffer mutation.
// Range covers the affected characters in the resulting buffer and
// Delta the length change (zero for attribute-only edits).
// Text holds the characters just spliced in, Replaced the ones removed.
type Edit struct {
	Range    Range
	Delta    int
	Kind     EditKind
	Text     string
	Replaced string
}

// Observer receives exactly one Edit per buffer mutation.
type Observer func(Edit)

// span is a run of characters sharing one attribute mapping.
// Spans partition the buffer: lengths sum to the buffer length and
// adjacent spans never carry equal attributes (coalesced after each edit).
type span struct {
	length int
	attrs  Attributes
}

// Buffer is a mutable attributed string.
// It is owned by a single editing session and is not safe for concurrent use.
type Buffer struct {
	runes     []rune
	spans     []span
	observers []Observer
}

// NewBuffer wraps a text in a single attribute run.
func NewBuffer(text string, attrs Attributes) *Buffer {
	b := &Buffer{
		runes: []rune(text),
	}
	if len(b.runes) > 0 {
		b.spans = []span{{length: len(b.runes), attrs: attrs.Clone()}}
	}
	return b
}

// OnEdit registers an observer notified after every mutation.
func (b *Buffer) OnEdit(observer Observer) {
	b.observers = append(b.observers, observer)
}

func (b *Buffer) Length() int {
	return len(b.runes)
}

func (b *Buffer) String() string {
	return string(b.runes)
}

// Substring returns the characters inside the range.
func (b *Buffer) Substring(r Range) string {
	b.checkRange(r)
	return string(b.runes[r.Location:r.End()])
}

// AttributesAt returns the attribute mapping at an index and the maximal
// contiguous range over which this exact mapping applies.
func (b *Buffer) AttributesAt(index int) (Attributes, Range) {
	if index < 0 || index >= len(b.runes) {
		panic(fmt.Sprintf("richtext: index %d out of range [0,%d)", index, len(b.runes)))
	}
	offset := 0
	for _, s := range b.spans {
		if index < offset+s.length {
			return s.attrs.Clone(), Range{Location: offset, Length: s.length}
		}
		offset += s.length
	}
	panic("richtext: spans do not cover the buffer")
}

// Replace splices new characters (sharing a single attribute mapping) in place
// of a range. Use ReplaceWith to splice an already-attributed text.
func (b *Buffer) Replace(r Range, text string, attrs Attributes) {
	b.ReplaceWith(r, NewBuffer(text, attrs))
}

// ReplaceWith splices an attributed text in place of a range and notifies
// observers with the resulting changed range and length delta.
func (b *Buffer) ReplaceWith(r Range, content *Buffer) {
	b.checkRange(r)
	replaced := string(b.runes[r.Location:r.End()])

	newRunes := make([]rune, 0, len(b.runes)-r.Length+content.Length())
	newRunes = append(newRunes, b.runes[:r.Location]...)
	newRunes = append(newRunes, content.runes...)
	newRunes = append(newRunes, b.runes[r.End():]...)

	before, after := b.splitSpans(r)
	newSpans := make([]span, 0, len(before)+len(content.spans)+len(after))
	newSpans = append(newSpans, before...)
	for _, s := range content.spans {
		newSpans = append(newSpans, span{length: s.length, attrs: s.attrs.Clone()})
	}
	newSpans = append(newSpans, after...)

	b.runes = newRunes
	b.spans = newSpans
	b.coalesce()

	b.notify(Edit{
		Range:    Range{Location: r.Location, Length: content.Length()},
		Delta:    content.Length() - r.Length,
		Kind:     CharactersEdited,
		Text:     content.String(),
		Replaced: replaced,
	})
}

// SetAttributes replaces the attribute mapping over a range without touching
// characters.
func (b *Buffer) SetAttributes(attrs Attributes, r Range) {
	b.mutateAttributes(r, func(existing Attributes) Attributes {
		return attrs.Clone()
	})
}

// AddAttributes merges attributes into the existing mappings over a range.
func (b *Buffer) AddAttributes(attrs Attributes, r Range) {
	b.mutateAttributes(r, func(existing Attributes) Attributes {
		return existing.Merge(attrs)
	})
}

// RemoveAttribute deletes one attribute from the mappings over a range.
func (b *Buffer) RemoveAttribute(name string, r Range) {
	b.mutateAttributes(r, func(existing Attributes) Attributes {
		result := existing.Clone()
		delete(result, name)
		return result
	})
}

// EnumerateAttribute walks contiguous runs carrying an attribute within a
// range, calling fn once per run of equal value. Runs without the attribute
// are skipped. The presentation layer uses this to stream (list-kind, range)
// pairs for overlay rendering.
func (b *Buffer) EnumerateAttribute(name string, r Range, fn func(value any, r Range)) {
	b.checkRange(r)

	type run struct {
		value any
		r     Range
	}
	var current *run

	offset := 0
	for _, s := range b.spans {
		spanRange := Range{Location: offset, Length: s.length}
		offset += s.length
		if spanRange.End() <= r.Location || spanRange.Location >= r.End() {
			continue
		}
		// Clamp to the enumerated range
		start := max(spanRange.Location, r.Location)
		end := min(spanRange.End(), r.End())

		value, ok := s.attrs[name]
		if !ok {
			if current != nil {
				fn(current.value, current.r)
				current = nil
			}
			continue
		}
		if current != nil && attributeValueEqual(current.value, value) && current.r.End() == start {
			current.r.Length = end - current.r.Location
			continue
		}
		if current != nil {
			fn(current.value, current.r)
		}
		current = &run{value: value, r: Range{Location: start, Length: end - start}}
	}
	if current != nil {
		fn(current.value, current.r)
	}
}

// EnumerateRuns walks every attributed range of the buffer in order.
func (b *Buffer) EnumerateRuns(fn func(substring string, attrs Attributes, r Range)) {
	offset := 0
	for _, s := range b.spans {
		r := Range{Location: offset, Length: s.length}
		fn(string(b.runes[r.Location:r.End()]), s.attrs.Clone(), r)
		offset += s.length
	}
}

// Extract copies a range into a standalone attributed buffer.
func (b *Buffer) Extract(r Range) *Buffer {
	b.checkRange(r)
	result := &Buffer{
		runes: append([]rune(nil), b.runes[r.Location:r.End()]...),
	}
	offset := 0
	for _, s := range b.spans {
		spanRange := Range{Location: offset, Length: s.length}
		offset += s.length
		if spanRange.End() <= r.Location || spanRange.Location >= r.End() {
			continue
		}
		start := max(spanRange.Location, r.Location)
		end := min(spanRange.End(), r.End())
		result.spans = append(result.spans, span{length: end - start, attrs: s.attrs.Clone()})
	}
	result.coalesce()
	return result
}

// Append concatenates an attributed text at the end without notifying
// observers. Used to assemble new buffers, not to edit live ones.
func (b *Buffer) Append(content *Buffer) *Buffer {
	b.runes = append(b.runes, content.runes...)
	for _, s := range content.spans {
		b.spans = append(b.spans, span{length: s.length, attrs: s.attrs.Clone()})
	}
	b.coalesce()
	return b
}

/* Internal */

func (b *Buffer) checkRange(r Range) {
	if r.Location < 0 || r.Length < 0 || r.End() > len(b.runes) {
		panic(fmt.Sprintf("richtext: range %s out of bounds (length %d)", r, len(b.runes)))
	}
}

func (b *Buffer) mutateAttributes(r Range, mutate func(Attributes) Attributes) {
	b.checkRange(r)
	if r.IsEmpty() {
		return
	}

	before, after := b.splitSpans(r)
	middle := b.spansIn(r)
	newSpans := make([]span, 0, len(before)+len(middle)+len(after))
	newSpans = append(newSpans, before...)
	for _, s := range middle {
		newSpans = append(newSpans, span{length: s.length, attrs: mutate(s.attrs)})
	}
	newSpans = append(newSpans, after...)

	b.spans = newSpans
	b.coalesce()

	b.notify(Edit{
		Range: r,
		Delta: 0,
		Kind:  AttributesEdited,
	})
}

// splitSpans returns copies of the spans strictly before and strictly after a
// range, cutting the boundary spans as needed.
func (b *Buffer) splitSpans(r Range) (before, after []span) {
	offset := 0
	for _, s := range b.spans {
		start, end := offset, offset+s.length
		offset = end

		if start < r.Location {
			length := min(end, r.Location) - start
			before = append(before, span{length: length, attrs: s.attrs})
		}
		if end > r.End() {
			length := end - max(start, r.End())
			after = append(after, span{length: length, attrs: s.attrs})
		}
	}
	return before, after
}

// spansIn returns the span fragments covering a range.
func (b *Buffer) spansIn(r Range) []span {
	var results []span
	offset := 0
	for _, s := range b.spans {
		start, end := offset, offset+s.length
		offset = end
		if end <= r.Location || start >= r.End() {
			continue
		}
		length := min(end, r.End()) - max(start, r.Location)
		results = append(results, span{length: length, attrs: s.attrs})
	}
	return results
}

// coalesce merges adjacent spans carrying equal attributes and drops empty ones.
func (b *Buffer) coalesce() {
	var results []span
	for _, s := range b.spans {
		if s.length == 0 {
			continue
		}
		if len(results) > 0 && results[len(results)-1].attrs.Equal(s.attrs) {
			results[len(results)-1].length += s.length
			continue
		}
		results = append(results, s)
	}
	b.spans = results
}

func (b *Buffer) notify(edit Edit) {
	for _, observer := range b.observers {
		observer(edit)
	}
}

func attributeValueEqual(a, b any) bool {
	return Attributes{"v": a}.Equal(Attributes{"v": b})
}
