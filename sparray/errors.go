package sparray

import "errors"

// Sentinel errors returned by Sparray factories and operations.
//
// Errors are wrapped with context at the call site; compare with [errors.Is]:
//
//	_, err := sparray.Range(10, 5, 1)
//	if errors.Is(err, sparray.ErrInvalidStep) {
//	    // step points away from end
//	}
var (
	// ErrInvalidInput is returned when a value that must be a collection
	// (slice, array, or sequence) is something else.
	ErrInvalidInput = errors.New("sparray: invalid data input")

	// ErrMissingArgument is returned by Range when called without bounds.
	ErrMissingArgument = errors.New("sparray: no param was supplied")

	// ErrTooManyArguments is returned by Range when given more than start,
	// end and step.
	ErrTooManyArguments = errors.New("sparray: too many params were supplied")

	// ErrInvalidStep is returned by Range when the sign of step contradicts
	// the direction from start to end, and by Sliding when step < 1.
	ErrInvalidStep = errors.New("sparray: invalid step")

	// ErrInvalidCount is returned by FillOf when n is not an integral number.
	ErrInvalidCount = errors.New("sparray: invalid number (n) of elements")

	// ErrEmptyReduce is returned by Reduce / ReduceRight on an empty
	// sequence when no initial value is supplied.
	ErrEmptyReduce = errors.New("sparray: reduce of empty sparray with no initial value")

	// ErrInvalidSize is returned by Sliding when size < 1.
	ErrInvalidSize = errors.New("sparray: size must be a positive integer")

	// ErrSampleSizeExceeded is returned when sampling more elements than the
	// sequence holds without replacement.
	ErrSampleSizeExceeded = errors.New("sparray: sample size cannot be greater than the length of sparray")
)
