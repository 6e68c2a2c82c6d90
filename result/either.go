package result

// Either holds exactly one of a Left (L) or a Right (R) value. DataResult
// uses Either[string, A] as the target of ToEither, mirroring the sealed
// Either/Left/Right hierarchy the source language expresses as a type
// hierarchy (spec §9: sealed interface hierarchies become tagged values).
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left constructs an Either in the Left state.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right constructs an Either in the Right state.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft reports whether e holds a Left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether e holds a Right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// LeftValue returns the left value and true, or the zero value and false.
func (e Either[L, R]) LeftValue() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// RightValue returns the right value and true, or the zero value and false.
func (e Either[L, R]) RightValue() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// MapEither transforms an Either's Right side, leaving a Left untouched.
func MapEither[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, R2](e.left)
}
