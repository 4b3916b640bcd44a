package confindent

import (
	"encoding"
	"strconv"
	"strings"
)

// Get converts the section's value to T. It reports false uniformly when the
// section is nil, when it has no value, and when the text does not convert to
// T; callers cannot distinguish these cases.
//
// T may be a string, bool, any integer or float type, or any type whose
// pointer implements encoding.TextUnmarshaler.
func Get[T any](s *Section) (T, bool) {
	var zero T
	if s == nil || s.value.IsEmpty() {
		return zero, false
	}
	return convert[T](s.value.String())
}

// GetVec converts the section's value to a list of T by splitting it on
// commas and trimming whitespace around each piece. Conversion is
// all-or-nothing: if any piece fails, or the section has no value, GetVec
// reports false and no partial list.
func GetVec[T any](s *Section) ([]T, bool) {
	if s == nil || s.value.IsEmpty() {
		return nil, false
	}
	pieces := strings.Split(s.value.String(), ",")
	out := make([]T, 0, len(pieces))
	for _, piece := range pieces {
		v, ok := convert[T](strings.TrimSpace(piece))
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// ChildValue looks up a child of p by key and converts its value to T. Like
// Get, a missing child, a missing value and a failed conversion are all
// reported as one uniform false.
func ChildValue[T any](p Parent, key string) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return Get[T](p.Child(key))
}

func convert[T any](text string) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = text
	case *bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return out, false
		}
		*p = v
	case *int:
		return parseInt[T](text, strconv.IntSize)
	case *int8:
		return parseInt[T](text, 8)
	case *int16:
		return parseInt[T](text, 16)
	case *int32:
		return parseInt[T](text, 32)
	case *int64:
		return parseInt[T](text, 64)
	case *uint:
		return parseUint[T](text, strconv.IntSize)
	case *uint8:
		return parseUint[T](text, 8)
	case *uint16:
		return parseUint[T](text, 16)
	case *uint32:
		return parseUint[T](text, 32)
	case *uint64:
		return parseUint[T](text, 64)
	case *float32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return out, false
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return out, false
		}
		*p = v
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(text)); err != nil {
			return out, false
		}
	default:
		return out, false
	}
	return out, true
}

func parseInt[T any](text string, bits int) (T, bool) {
	var out T
	v, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		return out, false
	}
	switch p := any(&out).(type) {
	case *int:
		*p = int(v)
	case *int8:
		*p = int8(v)
	case *int16:
		*p = int16(v)
	case *int32:
		*p = int32(v)
	case *int64:
		*p = v
	}
	return out, true
}

func parseUint[T any](text string, bits int) (T, bool) {
	var out T
	v, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return out, false
	}
	switch p := any(&out).(type) {
	case *uint:
		*p = uint(v)
	case *uint8:
		*p = uint8(v)
	case *uint16:
		*p = uint16(v)
	case *uint32:
		*p = uint32(v)
	case *uint64:
		*p = v
	}
	return out, true
}
