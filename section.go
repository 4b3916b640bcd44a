package confindent

import (
	"fmt"
	"iter"

	"github.com/confindent/go-confindent/internal/ordered"
)

// Parent is the interface shared by Document and Section for navigating and
// building the tree.
type Parent interface {
	// Child returns the child section with the given key, or nil.
	Child(key string) *Section
	// CreateChild inserts a fresh child section with the given key and value,
	// replacing any existing child with the same key along with its entire
	// subtree.
	CreateChild(key, value string) *Section
	// Children iterates over child sections in declaration order.
	Children() iter.Seq[*Section]
	// Len returns the number of child sections.
	Len() int
}

// A Section is a named node in the tree. It holds a scalar Value and an
// ordered set of uniquely keyed child sections.
type Section struct {
	key      string
	value    Value
	depth    int
	children ordered.Map[*Section]
}

func newSection(key string, value Value, depth int) *Section {
	return &Section{key: key, value: value, depth: depth}
}

// Key returns the section's name.
func (s *Section) Key() string {
	return s.key
}

// Value returns the section's scalar value.
func (s *Section) Value() Value {
	return s.value
}

// HasValue reports whether the section carries a value.
func (s *Section) HasValue() bool {
	return !s.value.IsEmpty()
}

// SetValue replaces the section's value with the given text. The previous
// value is discarded; there is no way to reset a section back to having no
// value.
func (s *Section) SetValue(value string) {
	s.value = Text(value)
}

// Depth returns the section's nesting level, 0 at top level. Depth is fixed
// when the section is created and is never recomputed, so a section kept at
// top level despite irregular input indentation retains its original marker.
func (s *Section) Depth() int {
	return s.depth
}

// Child returns the child section with the given key, or nil.
func (s *Section) Child(key string) *Section {
	child, _ := s.children.Get(key)
	return child
}

// CreateChild inserts a fresh child with the given key and value, replacing
// any existing child with the same key along with its entire subtree. The
// child's depth is the section's depth plus one.
func (s *Section) CreateChild(key, value string) *Section {
	child := newSection(key, Text(value), s.depth+1)
	s.children.Set(key, child)
	return child
}

// AddChild is the strict variant of CreateChild: it fails with
// ErrDuplicateKey instead of overwriting when the key already exists.
func (s *Section) AddChild(key, value string) (*Section, error) {
	if s.children.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	return s.CreateChild(key, value), nil
}

// Children iterates over child sections in declaration order.
func (s *Section) Children() iter.Seq[*Section] {
	return s.children.Values()
}

// Len returns the number of child sections.
func (s *Section) Len() int {
	return s.children.Len()
}

// upsert attaches child under s, replacing any same-keyed sibling.
func (s *Section) upsert(child *Section) {
	s.children.Set(child.key, child)
}
