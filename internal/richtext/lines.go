package richtext

// LineRange returns the range of the line containing an index, from the
// character following the previous terminator through and including the next
// terminator (or the end of the buffer). The index can equal the buffer
// length to designate the caret resting past the last character.
func (b *Buffer) LineRange(index int) Range {
	if index < 0 || index > len(b.runes) {
		panic("richtext: line index out of range")
	}
	start := index
	for start > 0 && b.runes[start-1] != '\n' {
		start--
	}
	end := index
	for end < len(b.runes) && b.runes[end] != '\n' {
		end++
	}
	if end < len(b.runes) {
		end++ // include the terminator
	}
	return Range{Location: start, Length: end - start}
}

// LineRanges enumerates the lines of the buffer in order. Every line includes
// its trailing terminator except possibly the last one. An empty buffer has a
// single empty line.
func (b *Buffer) LineRanges() []Range {
	var results []Range
	start := 0
	for i, r := range b.runes {
		if r == '\n' {
			results = append(results, Range{Location: start, Length: i + 1 - start})
			start = i + 1
		}
	}
	results = append(results, Range{Location: start, Length: len(b.runes) - start})
	return results
}

// MapLines builds a new buffer by transforming every line independently and
// concatenating the results in order. The receiver is left untouched.
func (b *Buffer) MapLines(transform func(line *Buffer) *Buffer) *Buffer {
	result := NewBuffer("", nil)
	for _, lineRange := range b.LineRanges() {
		result.Append(transform(b.Extract(lineRange)))
	}
	return result
}
