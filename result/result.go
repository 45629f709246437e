// Package result implements the success/partial/error carrier used
// throughout datafixer in place of panics or exceptions (see the
// propagation policy in spec.md §7).
package result

import "fmt"

// Result is a success/error sum carrying an optional partial fallback
// value on the error path. It is the value-level error channel for
// every recoverable failure in the core: kind mismatches, missing
// fields, unknown tags, unknown versions/types.
type Result[A any] struct {
	value   A
	err     error
	partial *A
	ok      bool
}

// Ok builds a successful Result.
func Ok[A any](value A) Result[A] {
	return Result[A]{value: value, ok: true}
}

// Err builds a failed Result with no partial fallback.
func Err[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// Errf builds a failed Result from a formatted message.
func Errf[A any](format string, args ...interface{}) Result[A] {
	return Result[A]{err: fmt.Errorf(format, args...)}
}

// ErrPartial builds a failed Result that carries a best-effort partial
// value the caller may choose to use instead of discarding everything.
func ErrPartial[A any](err error, partial A) Result[A] {
	return Result[A]{err: err, partial: &partial}
}

// IsOk reports whether the Result succeeded.
func (r Result[A]) IsOk() bool { return r.ok }

// IsError reports whether the Result failed.
func (r Result[A]) IsError() bool { return !r.ok }

// Error returns the failure, or nil on success.
func (r Result[A]) Error() error { return r.err }

// Partial returns the best-effort fallback value and whether one was
// attached to this error.
func (r Result[A]) Partial() (A, bool) {
	if r.partial == nil {
		var zero A
		return zero, false
	}
	return *r.partial, true
}

// Get returns the success value and the underlying error. Callers that
// want Go-idiomatic `v, err := ...` unpacking use this; callers that
// want to chain use Map/FlatMap/OrElse below.
func (r Result[A]) Get() (A, error) {
	return r.value, r.err
}

// MustGet panics if the Result is an error. Reserved for call sites
// that have already proven success (e.g. immediately after IsOk()),
// mirroring the spec's rule that only programmer faults panic.
func (r Result[A]) MustGet() A {
	if !r.ok {
		panic(fmt.Sprintf("result: MustGet on error result: %v", r.err))
	}
	return r.value
}

// OrElse returns the success value, or a caller-supplied default on
// error.
func (r Result[A]) OrElse(def A) A {
	if r.ok {
		return r.value
	}
	return def
}

// Map transforms a success value, passing errors through unchanged.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.ok {
		out := Result[B]{err: r.err}
		if r.partial != nil {
			p := f(*r.partial)
			out.partial = &p
		}
		return out
	}
	return Ok(f(r.value))
}

// FlatMap chains a Result-returning function onto a success value.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if !r.ok {
		out := Result[B]{err: r.err}
		if r.partial != nil {
			p := f(*r.partial)
			out.partial = p.partial
		}
		return out
	}
	return f(r.value)
}

// MapError rewrites the error message of a failed Result, leaving a
// successful Result untouched.
func (r Result[A]) MapError(f func(error) error) Result[A] {
	if r.ok {
		return r
	}
	r.err = f(r.err)
	return r
}
