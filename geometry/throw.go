package geometry

import "github.com/pkg/errors"

// None of the geometry operations can fail on valid input, so they do not
// return errors. Internal invariant checks panic instead, and the public API
// recovers to convert to an error.

// Wrapper so that runtime panics, which are also errors, are not mistaken for
// our own.
type geometryError struct {
	error
}

// Panic with a geometryError.
func fatalf(format string, args ...interface{}) {
	panic(geometryError{errors.Errorf(format, args...)})
}

// Convert a recovered fatalf panic into an error. Any other panic is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(geometryError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
