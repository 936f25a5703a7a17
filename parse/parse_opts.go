package parse

type parseOpts struct {
	strict bool
}

type ParseOption func(*parseOpts)

// Strict makes the parser report malformed fragments as positioned
// errors instead of silently skipping them: empty section and key
// names, a key without '=', unterminated quotes and brackets, and
// unrecognized trailing input all fail the parse. The default mode is
// best-effort and non-validating.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}
