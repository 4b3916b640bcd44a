package confindent

import (
	"io"
	"os"
	"strings"
)

// String renders the document as confindent text: each top-level section in
// declaration order, separated by blank lines, with one tab per nesting
// level. The result has no leading or trailing whitespace and no trailing
// newline.
//
// The serializer always emits tabs, even for documents parsed from
// space-indented input. For documents built with tab-only input or
// programmatically, Parse(d.String()) reconstructs an equivalent tree.
func (d *Document) String() string {
	var b strings.Builder
	first := true
	for sec := range d.sections.Values() {
		if !first {
			b.WriteString("\n\n")
		}
		sec.encode(&b, 0)
		first = false
	}
	return b.String()
}

// WriteTo writes the document's rendering, followed by a final newline, to w.
// It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String()+"\n")
	return int64(n), err
}

// WriteFile writes the document to the file at path, creating or truncating
// it. I/O errors are returned exactly as the os package reports them.
func (d *Document) WriteFile(path string) error {
	return os.WriteFile(path, []byte(d.String()+"\n"), 0o644)
}

// String renders the section and its subtree as confindent text, the section
// itself at indentation zero.
func (s *Section) String() string {
	var b strings.Builder
	s.encode(&b, 0)
	return b.String()
}

// encode renders s at the given nesting level. Indentation is relative to the
// rendering root, not to the section's recorded depth, so trees assembled
// from irregular input still serialize cleanly.
func (s *Section) encode(b *strings.Builder, level int) {
	for range level {
		b.WriteByte('\t')
	}
	b.WriteString(s.key)
	// An empty-text value would render as a trailing space, which the next
	// parse reads as no value at all. Emit the bare key in both cases.
	if s.value.String() != "" {
		b.WriteByte(' ')
		b.WriteString(s.value.String())
	}
	for child := range s.children.Values() {
		b.WriteByte('\n')
		child.encode(b, level+1)
	}
}
