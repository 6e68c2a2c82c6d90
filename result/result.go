package result

import "fmt"

// DataResult is the Success/Error-with-optional-partial monad that carries
// messages through every fallible step of the engine (spec §4.1).
//
// A DataResult is always in exactly one of three observable states:
//
//   - Success(a): ok = true, value = a.
//   - Error(msg): ok = false, err = msg, partial absent.
//   - Error(msg, partial): ok = false, err = msg, partial present.
//
// The zero value is not a valid DataResult; always construct one with
// Success or Error.
type DataResult[A any] struct {
	ok        bool
	value     A
	message   string
	hasPartial bool
	partial   A
}

// Success constructs a successful DataResult carrying a.
func Success[A any](a A) DataResult[A] {
	return DataResult[A]{ok: true, value: a}
}

// Error constructs a failed DataResult with the given message and no
// partial value.
func Error[A any](msg string) DataResult[A] {
	return DataResult[A]{ok: false, message: msg}
}

// ErrorPartial constructs a failed DataResult carrying a best-effort
// partial value alongside the message.
func ErrorPartial[A any](msg string, partial A) DataResult[A] {
	return DataResult[A]{ok: false, message: msg, hasPartial: true, partial: partial}
}

// IsSuccess reports whether r is in the Success state.
func (r DataResult[A]) IsSuccess() bool { return r.ok }

// IsError reports whether r is in the Error state.
func (r DataResult[A]) IsError() bool { return !r.ok }

// Result returns the success value and true, or the zero value and false.
func (r DataResult[A]) Result() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// ErrMessage returns the error message and true, or "" and false if r is a
// Success.
func (r DataResult[A]) ErrMessage() (string, bool) {
	if r.ok {
		return "", false
	}
	return r.message, true
}

// Partial returns the best-effort partial value and true if r is an Error
// carrying one.
func (r DataResult[A]) Partial() (A, bool) {
	if r.ok || !r.hasPartial {
		var zero A
		return zero, false
	}
	return r.partial, true
}

// HasPartial reports whether r is an Error carrying a partial value.
func (r DataResult[A]) HasPartial() bool {
	return !r.ok && r.hasPartial
}

// MapError transforms the error message, preserving any partial value.
// A Success is returned unchanged.
func (r DataResult[A]) MapError(g func(string) string) DataResult[A] {
	if r.ok {
		return r
	}
	r.message = g(r.message)
	return r
}

// GetOrThrow returns the success value, or panics with factory(msg) if r is
// an Error. factory is expected to build an error value; GetOrThrow panics
// with whatever factory returns.
func (r DataResult[A]) GetOrThrow(factory func(msg string) error) A {
	if r.ok {
		return r.value
	}
	panic(factory(r.message))
}

// ResultOrPartial returns the success value, or invokes onError with the
// message and returns the partial value if one is present. It panics if r
// is an Error without a partial value — that state has no defined return.
func (r DataResult[A]) ResultOrPartial(onError func(msg string)) A {
	if r.ok {
		return r.value
	}
	onError(r.message)
	if r.hasPartial {
		return r.partial
	}
	panic(fmt.Sprintf("result: ResultOrPartial called on Error without partial: %s", r.message))
}

// OrElse returns the success value, or fallback if r is an Error.
func (r DataResult[A]) OrElse(fallback A) A {
	if r.ok {
		return r.value
	}
	return fallback
}

// OrElseGet returns the success value, or the result of calling fallback if
// r is an Error.
func (r DataResult[A]) OrElseGet(fallback func() A) A {
	if r.ok {
		return r.value
	}
	return fallback()
}

// PromotePartial turns an Error carrying a partial value into a Success of
// that partial value, invoking onError to log the demotion. A Success, or
// an Error without a partial, is returned unchanged.
func (r DataResult[A]) PromotePartial(onError func(msg string)) DataResult[A] {
	if r.ok || !r.hasPartial {
		return r
	}
	onError(r.message)
	return Success(r.partial)
}

// ToEither converts r to an Either, dropping any partial value.
func (r DataResult[A]) ToEither() Either[string, A] {
	if r.ok {
		return Right[string](r.value)
	}
	return Left[string, A](r.message)
}

// String implements fmt.Stringer for debugging and test failure output.
func (r DataResult[A]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	if r.hasPartial {
		return fmt.Sprintf("Error(%q, partial=%v)", r.message, r.partial)
	}
	return fmt.Sprintf("Error(%q)", r.message)
}

// Map applies f to a Success value. Applied to an Error, it maps the
// partial value if present and otherwise leaves the Error unchanged
// (spec §4.1, §8 invariant 6: Error-without-partial is absorbing for map).
func Map[A, B any](r DataResult[A], f func(A) B) DataResult[B] {
	if r.ok {
		return Success(f(r.value))
	}
	if r.hasPartial {
		return ErrorPartial(r.message, f(r.partial))
	}
	return Error[B](r.message)
}

// FlatMap sequences r into f. On Success(a) it returns f(a). On an Error
// carrying a partial, it applies f to the partial: a resulting Success
// becomes Error(origMsg, newValue); a resulting Error concatenates the two
// messages with "; " and carries the inner partial. An Error without a
// partial is returned unchanged (spec §4.1).
func FlatMap[A, B any](r DataResult[A], f func(A) DataResult[B]) DataResult[B] {
	if r.ok {
		return f(r.value)
	}
	if !r.hasPartial {
		return Error[B](r.message)
	}
	inner := f(r.partial)
	if inner.ok {
		return ErrorPartial(r.message, inner.value)
	}
	msg := r.message
	if inner.message != "" {
		msg = msg + "; " + inner.message
	}
	if inner.hasPartial {
		return ErrorPartial(msg, inner.partial)
	}
	return Error[B](msg)
}

// Apply2 combines two independent DataResults. If both are Success, the
// result is Success(combiner(a, b)). If either is an Error, the two sides'
// partial values are combined (when both offer one) into a single Error
// whose message concatenates both messages with "; "; otherwise the first
// Error's message is propagated, without a partial (spec §4.1).
func Apply2[A, B, C any](ra DataResult[A], rb DataResult[B], combiner func(A, B) C) DataResult[C] {
	if ra.ok && rb.ok {
		return Success(combiner(ra.value, rb.value))
	}
	if !ra.ok && !rb.ok && ra.hasPartial && rb.hasPartial {
		msg := ra.message
		if rb.message != "" {
			msg = msg + "; " + rb.message
		}
		return ErrorPartial(msg, combiner(ra.partial, rb.partial))
	}
	if !ra.ok {
		return Error[C](ra.message)
	}
	return Error[C](rb.message)
}
