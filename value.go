package confindent

// A Value is the scalar payload of a Section: either empty, or a piece of
// text. The zero Value is empty.
type Value struct {
	text    string
	present bool
}

// Text returns a Value holding the given text.
func Text(s string) Value {
	return Value{text: s, present: true}
}

// IsEmpty reports whether the value is absent.
func (v Value) IsEmpty() bool {
	return !v.present
}

// String returns the value's text, or "" for an empty value.
func (v Value) String() string {
	return v.text
}
