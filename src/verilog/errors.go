package verilog

import "github.com/pkg/errors"

// Taxonomy sentinels for the three fatal error classes named in spec.md §7.
// Use errors.Is(err, ErrMalformedIR) etc. to classify a wrapped error;
// err.Error() carries the construct-naming context, while errors.Cause(err)
// returns the bare sentinel.
var (
	// ErrMalformedIR: a primop argument is not a literal/ref/subfield, a
	// port is not GroundType, or an unsupported expression appears at top
	// level.
	ErrMalformedIR = errors.New("malformed-ir")
	// ErrUnsupportedIR: memory latencies other than (0,1), readwrite ports
	// present, or a constant Shr whose amount is >= operand width.
	ErrUnsupportedIR = errors.New("unsupported-ir")
	// ErrInternal: an IR form that a previous pass should have removed.
	ErrInternal = errors.New("internal-error")
)

// malformed wraps ErrMalformedIR with context naming the offending
// construct.
func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedIR, format, args...)
}

// unsupported wraps ErrUnsupportedIR with context naming the offending
// construct.
func unsupported(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupportedIR, format, args...)
}

// internalErr wraps ErrInternal with context naming the offending construct.
func internalErr(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternal, format, args...)
}
