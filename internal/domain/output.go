package domain

import "fmt"

// Output is the result of a non-streaming repository call. It holds either a
// result (Success) or a DomainError code with its cause (Failure).
// The zero value is a Success carrying the zero T.
type Output[T any] struct {
	result T
	code   DomainError
	cause  error
	failed bool
}

// Success wraps a result.
func Success[T any](result T) Output[T] {
	return Output[T]{result: result}
}

// Failure wraps a failure code and its cause. A nil cause is replaced by the code itself.
func Failure[T any](code DomainError, cause error) Output[T] {
	if cause == nil {
		cause = code
	}
	return Output[T]{code: code, cause: cause, failed: true}
}

// IsSuccess reports whether o carries a result.
func (o Output[T]) IsSuccess() bool { return !o.failed }

// Result returns the wrapped result and true, or the zero T and false for a Failure.
func (o Output[T]) Result() (T, bool) {
	if o.failed {
		var zero T
		return zero, false
	}
	return o.result, true
}

// Code returns the failure code, or "" for a Success.
func (o Output[T]) Code() DomainError { return o.code }

// Cause returns the underlying error of a Failure, or nil.
func (o Output[T]) Cause() error { return o.cause }

// Err returns nil for a Success and an *OutputError for a Failure.
func (o Output[T]) Err() error {
	if !o.failed {
		return nil
	}
	return &OutputError{Code: o.code, Cause: o.cause}
}

// Unwrap returns the result and Err() in the usual Go shape.
func (o Output[T]) Unwrap() (T, error) {
	return o.result, o.Err()
}

func (o Output[T]) String() string {
	if o.failed {
		return fmt.Sprintf("Error(%s, %v)", o.code, o.cause)
	}
	return fmt.Sprintf("Success(%v)", o.result)
}

// OutputError is the error form of a Failure. errors.Is matches both the code
// and anything in the cause chain.
type OutputError struct {
	Code  DomainError
	Cause error
}

func (e *OutputError) Error() string {
	if e.Cause == nil || e.Cause == e.Code {
		return e.Code.Error()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Cause)
}

func (e *OutputError) Is(target error) bool {
	code, ok := target.(DomainError)
	return ok && code == e.Code
}

func (e *OutputError) Unwrap() error { return e.Cause }
