package safejson

// Result represents the outcome of an operation that may fail. It contains
// either a success value or an Error. The zero value is a failure carrying
// the empty Error.
type Result[T any] struct {
	value T
	err   Error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail creates a failed Result.
func Fail[T any](err Error) Result[T] {
	return Result[T]{err: err, ok: false}
}

// FailMessage creates a failed Result carrying a single message.
func FailMessage[T any](msg string) Result[T] {
	return Fail[T](ErrorFromMessage(msg))
}

// FailErr creates a failed Result from a native error.
func FailErr[T any](err error) Result[T] {
	return Fail[T](ErrorFromErr(err))
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsFail returns true if the Result is a failure.
func (r Result[T]) IsFail() bool {
	return !r.ok
}

// Err returns the Error (empty when the Result is successful).
func (r Result[T]) Err() Error {
	if r.ok {
		return Error{}
	}
	return r.err
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onFail func(Error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onFail(r.err)
	}
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onFail func(Error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onFail(r.err)
}

// MapResult applies a transformation function to the success value, leaving
// failures untouched.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Fail[U](r.err)
}

// MapErr applies a function to the Error, leaving successes untouched. Used
// to add context such as a property-name prefix.
func (r Result[T]) MapErr(fn func(Error) Error) Result[T] {
	if r.ok {
		return r
	}
	return Fail[T](fn(r.err))
}

// BindResult applies a function that itself returns a Result, short-circuiting
// on failure.
func BindResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Fail[U](r.err)
}

// OrElse invokes the recovery function on failure.
func (r Result[T]) OrElse(fn func(Error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// ToOption discards error detail: failure becomes None.
func (r Result[T]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from the Error.
func (r Result[T]) UnwrapOrElse(fn func(Error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// MustUnwrap returns the success value or panics with err.ToErr(). This is
// the designated boundary between Result-based and panic-based code.
func (r Result[T]) MustUnwrap() T {
	if !r.ok {
		panic(r.err.ToErr())
	}
	return r.value
}

// ResultFromOption converts an Option into a Result, substituting err for None.
func ResultFromOption[T any](o Option[T], err Error) Result[T] {
	if o.IsSome() {
		return Ok(o.MustUnwrap())
	}
	return Fail[T](err)
}

// EqualResults reports equality: successes compare by value, failures by
// Error message-set equality.
func EqualResults[T comparable](a, b Result[T]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err.Equal(b.err)
}
