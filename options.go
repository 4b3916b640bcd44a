package confindent

type options struct {
	wholeLineValues bool
}

// Option configures parsing.
type Option func(*options)

// WholeLineValues returns an Option that captures everything after a line's
// key, trimmed of surrounding whitespace, as the value.
//
// By default only the second whitespace-delimited field of a line is kept and
// any further fields are dropped, matching the historical behavior of the
// format. This option trades that compatibility for values that may contain
// spaces.
func WholeLineValues() Option {
	return func(o *options) {
		o.wholeLineValues = true
	}
}
