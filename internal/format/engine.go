package format

import (
	"github.com/julien-sobczak/the-noteformatter/internal/config"
	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
)

// Engine orchestrates the formatters over one attributed buffer.
//
// The protocol is two-phase: the host applies a character edit to the buffer
// (the engine records it through the buffer observer), finishes its own
// bookkeeping, then calls CommitEdit to run the formatters and collect the
// pending caret correction. Caret fixups must happen strictly after the
// triggering edit has been committed and observed by the host.
type Engine struct {
	buffer *richtext.Buffer
	words  *WordFormatter
	lists  *ListFormatter

	lastEdit     *richtext.Edit
	reformatting bool
}

func NewEngine(buffer *richtext.Buffer) *Engine {
	engine := &Engine{
		buffer: buffer,
		words:  NewWordFormatter(),
		lists:  NewListFormatter(),
	}
	buffer.OnEdit(engine.recordEdit)
	return engine
}

func (e *Engine) Buffer() *richtext.Buffer {
	return e.buffer
}

// recordEdit keeps the most recent host edit. Edits performed by the
// formatters themselves are not recorded.
func (e *Engine) recordEdit(edit richtext.Edit) {
	if e.reformatting {
		return
	}
	e.lastEdit = &edit
}

// CommitEdit processes the most recent edit through the word formatter then
// the list formatter and returns the caret correction of the first one that
// rewrote the buffer, or nil. Calling it again without a new edit is a no-op.
func (e *Engine) CommitEdit() *FormattedText {
	if e.lastEdit == nil {
		return nil
	}
	edit := *e.lastEdit
	e.lastEdit = nil

	change := DescribeChange(e.buffer, edit)
	config.CurrentLogger().Tracef("formatting %s", change)

	e.reformatting = true
	defer func() { e.reformatting = false }()

	cfg := config.CurrentConfig()
	if cfg.Format.Words {
		if formatted := e.words.FormatWords(e.buffer, change); formatted != nil {
			return formatted
		}
	}
	if cfg.Format.Lists {
		return e.lists.FormatList(e.buffer, change)
	}
	return nil
}

// SetCheckmark toggles the checked state of the checkmark item on the line
// containing the index.
func (e *Engine) SetCheckmark(index int, checked bool) {
	e.reformatting = true
	defer func() { e.reformatting = false }()
	e.lists.SetCheckmark(e.buffer, index, checked)
}

// InsertCheckmark splices an unchecked checkmark item at the start of the
// line containing the index and returns the caret correction.
func (e *Engine) InsertCheckmark(index int) *FormattedText {
	e.reformatting = true
	defer func() { e.reformatting = false }()
	return e.lists.InsertCheckmark(e.buffer, index)
}
