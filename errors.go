package nya

import "errors"

// Sentinel errors for the four error kinds of spec.md §7. InputDecodeError
// is not a distinct sentinel: the external decoder's own error is wrapped
// and returned unchanged, per spec.md's "propagated unchanged" policy.
var (
	// ErrDimensionOutOfRange is returned when width or height is 0 or
	// exceeds 65535 (spec.md §3 Raster, §7 DimensionError).
	ErrDimensionOutOfRange = errors.New("nya: width or height out of range [1, 65535]")

	// ErrInvariantViolation marks an internal assertion failure (e.g. a
	// run length outside [2, 257]) that indicates a bug rather than a
	// recoverable input condition (spec.md §7 InvariantViolation).
	ErrInvariantViolation = errors.New("nya: invariant violation")
)
