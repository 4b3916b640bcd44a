package confindent_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/confindent/go-confindent"
)

func TestGet(t *testing.T) {
	doc := confindent.ParseString("Host example.com\nPort 8080\nRatio 0.75\nDebug true\nEmpty")

	t.Run("string", func(t *testing.T) {
		got, ok := confindent.Get[string](doc.Child("Host"))
		require.True(t, ok)
		require.Equal(t, "example.com", got)
	})

	t.Run("int", func(t *testing.T) {
		got, ok := confindent.Get[int](doc.Child("Port"))
		require.True(t, ok)
		require.Equal(t, 8080, got)
	})

	t.Run("sized integers", func(t *testing.T) {
		got8, ok := confindent.Get[uint8](doc.Child("Port"))
		require.False(t, ok, "8080 overflows uint8")
		require.Zero(t, got8)

		got16, ok := confindent.Get[uint16](doc.Child("Port"))
		require.True(t, ok)
		require.Equal(t, uint16(8080), got16)

		got64, ok := confindent.Get[int64](doc.Child("Port"))
		require.True(t, ok)
		require.Equal(t, int64(8080), got64)
	})

	t.Run("float", func(t *testing.T) {
		got, ok := confindent.Get[float64](doc.Child("Ratio"))
		require.True(t, ok)
		require.Equal(t, 0.75, got)
	})

	t.Run("bool", func(t *testing.T) {
		got, ok := confindent.Get[bool](doc.Child("Debug"))
		require.True(t, ok)
		require.True(t, got)
	})

	t.Run("conversion failure reads as no value", func(t *testing.T) {
		got, ok := confindent.Get[int](doc.Child("Host"))
		require.False(t, ok)
		require.Zero(t, got)
	})

	t.Run("empty value reads as no value", func(t *testing.T) {
		got, ok := confindent.Get[string](doc.Child("Empty"))
		require.False(t, ok)
		require.Zero(t, got)
	})

	t.Run("nil section reads as no value", func(t *testing.T) {
		got, ok := confindent.Get[string](nil)
		require.False(t, ok)
		require.Zero(t, got)
	})
}

// logLevel exercises the encoding.TextUnmarshaler path.
type logLevel int

func (l *logLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "debug":
		*l = 0
	case "info":
		*l = 1
	case "warn":
		*l = 2
	default:
		return fmt.Errorf("unknown level %q", text)
	}
	return nil
}

func TestGet_TextUnmarshaler(t *testing.T) {
	doc := confindent.ParseString("Level warn\nBad loud")

	got, ok := confindent.Get[logLevel](doc.Child("Level"))
	require.True(t, ok)
	require.Equal(t, logLevel(2), got)

	_, ok = confindent.Get[logLevel](doc.Child("Bad"))
	require.False(t, ok)
}

func TestGet_UnsupportedType(t *testing.T) {
	doc := confindent.ParseString("Key Value")

	type opaque struct{ s string }
	got, ok := confindent.Get[opaque](doc.Child("Key"))
	require.False(t, ok)
	require.Zero(t, got)
}

func TestGetVec(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		doc := confindent.ParseString("Vec 1,2,3,4")
		got, ok := confindent.GetVec[int](doc.Child("Vec"))
		require.True(t, ok)
		require.Equal(t, []int{1, 2, 3, 4}, got)
	})

	t.Run("one bad element invalidates the list", func(t *testing.T) {
		doc := confindent.ParseString("Vec 1,x,3")
		got, ok := confindent.GetVec[int](doc.Child("Vec"))
		require.False(t, ok)
		require.Nil(t, got)
	})

	t.Run("pieces are trimmed", func(t *testing.T) {
		// Spaces inside the value require the whole-line option; the comma
		// split then trims each piece before converting.
		doc := confindent.ParseString("Vec 1, 2 ,3", confindent.WholeLineValues())
		got, ok := confindent.GetVec[int](doc.Child("Vec"))
		require.True(t, ok)
		require.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("strings", func(t *testing.T) {
		doc := confindent.ParseString("Vec a,b,c")
		got, ok := confindent.GetVec[string](doc.Child("Vec"))
		require.True(t, ok)
		require.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("single element", func(t *testing.T) {
		doc := confindent.ParseString("Vec 42")
		got, ok := confindent.GetVec[int](doc.Child("Vec"))
		require.True(t, ok)
		require.Equal(t, []int{42}, got)
	})

	t.Run("absent value reads as no value", func(t *testing.T) {
		doc := confindent.ParseString("Vec")
		got, ok := confindent.GetVec[int](doc.Child("Vec"))
		require.False(t, ok)
		require.Nil(t, got)

		got, ok = confindent.GetVec[int](nil)
		require.False(t, ok)
		require.Nil(t, got)
	})
}

func TestChildValue(t *testing.T) {
	doc := confindent.ParseString("Host example.com\n\tPort 22")

	host, ok := confindent.ChildValue[string](doc, "Host")
	require.True(t, ok)
	require.Equal(t, "example.com", host)

	port, ok := confindent.ChildValue[int](doc.Child("Host"), "Port")
	require.True(t, ok)
	require.Equal(t, 22, port)

	_, ok = confindent.ChildValue[string](doc, "Missing")
	require.False(t, ok)

	_, ok = confindent.ChildValue[string](nil, "Host")
	require.False(t, ok)
}

func TestGetVec_LongList(t *testing.T) {
	parts := make([]string, 100)
	for i := range parts {
		parts[i] = fmt.Sprint(i)
	}
	doc := confindent.ParseString("Vec " + strings.Join(parts, ","))

	got, ok := confindent.GetVec[int](doc.Child("Vec"))
	require.True(t, ok)
	require.Len(t, got, 100)
	require.Equal(t, 99, got[99])
}
