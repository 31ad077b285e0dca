package safejson

// Option represents an optional value that may or may not be present. It
// provides a type-safe alternative to nil pointers for "property may be
// absent without being an error".
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{present: false}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Match executes one of two functions based on Option state. It is the only
// way to observe the tag together with the value.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a transformation function to the contained value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// BindOption applies a function that itself returns an Option.
func BindOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// MustUnwrap returns the contained value or panics on None. Forcing a value
// out of an empty Option is always this explicit call, never implicit.
func (o Option[T]) MustUnwrap() T {
	if !o.present {
		panic("safejson: called MustUnwrap on None")
	}
	return o.value
}

// UnwrapOrPanic returns the contained value or panics with the error built by
// errFactory. The factory runs only on None, so callers can construct the
// failure lazily.
func (o Option[T]) UnwrapOrPanic(errFactory func() error) T {
	if !o.present {
		panic(errFactory())
	}
	return o.value
}

// Filter returns None if the predicate rejects the contained value.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// OptionFromPtr creates an Option from a pointer.
func OptionFromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// ToPtr converts the Option to a pointer.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// EqualOptions reports equality: None == None, Some(a) == Some(b) iff a == b.
func EqualOptions[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}
