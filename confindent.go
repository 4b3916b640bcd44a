package confindent

import (
	"fmt"
	"iter"
	"os"

	"github.com/confindent/go-confindent/internal/ordered"
	"github.com/confindent/go-confindent/internal/scanner"
)

// A Document is the root of a confindent tree. It owns an ordered set of
// uniquely keyed top-level sections and has no key or value of its own.
//
// A Document is not safe for concurrent mutation; callers sharing one across
// goroutines must provide their own locking.
type Document struct {
	sections ordered.Map[*Section]
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

// Parse builds a Document from confindent text. It never fails: blank and
// key-less lines are skipped, and lines whose indentation does not match any
// open section are kept as top-level sections. Degenerate input yields an
// empty Document.
func Parse(data []byte, opts ...Option) *Document {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	doc := New()
	sc := scanner.New(data, scanner.Config{WholeLineValues: o.wholeLineValues})

	// open is the chain of currently open ancestors, innermost last. Keeping
	// it explicit makes "most recently declared section at depth-1" a stack
	// lookup instead of a rescan of the tree.
	var open []*Section
	for {
		ln, ok := sc.Next()
		if !ok {
			break
		}

		value := Value{}
		if ln.HasValue {
			value = Text(ln.Value)
		}
		sec := newSection(ln.Key, value, ln.Depth)

		if ln.Depth == 0 || doc.sections.Len() == 0 {
			doc.sections.Set(sec.key, sec)
			open = append(open[:0], sec)
			continue
		}

		for len(open) > 0 && open[len(open)-1].depth >= ln.Depth {
			open = open[:len(open)-1]
		}
		if len(open) > 0 && open[len(open)-1].depth == ln.Depth-1 {
			open[len(open)-1].upsert(sec)
		} else {
			// No open ancestor one level up: irregular indentation. Keep the
			// section at top level rather than failing, depth marker intact.
			doc.sections.Set(sec.key, sec)
			open = open[:0]
		}
		open = append(open, sec)
	}
	return doc
}

// ParseString is Parse for a string input.
func ParseString(s string, opts ...Option) *Document {
	return Parse([]byte(s), opts...)
}

// LoadFile reads the file at path and parses it. I/O errors are returned
// exactly as the os package reports them.
func LoadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...), nil
}

// Child returns the top-level section with the given key, or nil.
func (d *Document) Child(key string) *Section {
	sec, _ := d.sections.Get(key)
	return sec
}

// CreateChild inserts a fresh top-level section with the given key and value,
// replacing any existing section with the same key along with its entire
// subtree.
func (d *Document) CreateChild(key, value string) *Section {
	sec := newSection(key, Text(value), 0)
	d.sections.Set(key, sec)
	return sec
}

// AddChild is the strict variant of CreateChild: it fails with
// ErrDuplicateKey instead of overwriting when the key already exists.
func (d *Document) AddChild(key, value string) (*Section, error) {
	if d.sections.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	return d.CreateChild(key, value), nil
}

// Children iterates over top-level sections in declaration order.
func (d *Document) Children() iter.Seq[*Section] {
	return d.sections.Values()
}

// Len returns the number of top-level sections.
func (d *Document) Len() int {
	return d.sections.Len()
}

var (
	_ Parent = (*Document)(nil)
	_ Parent = (*Section)(nil)
)
