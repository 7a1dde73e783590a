package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrLogic indicates a construction bug in the caller: derivative vectors
	// of different lengths were combined, or an independent-variable index is
	// out of range. It is never a recoverable runtime condition.
	ErrLogic = errors.New("numeric: logic error")

	// ErrDivisionByZero indicates a divisor, or a derivative denominator,
	// with magnitude exactly zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")
)

// OpError is the panic value raised by arithmetic on a Number. It records the
// operation that failed.
type OpError struct {
	Op     string
	Err    error
	Detail string
}

func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// PanicDivisionByZero raises an *OpError wrapping ErrDivisionByZero.
func PanicDivisionByZero(op string) {
	panic(&OpError{Op: op, Err: ErrDivisionByZero})
}

// PanicLengthMismatch raises an *OpError wrapping ErrLogic for two derivative
// vectors of lengths n and m.
func PanicLengthMismatch(op string, n, m int) {
	panic(&OpError{Op: op, Err: ErrLogic, Detail: fmt.Sprintf("derivative length mismatch: %d vs %d", n, m)})
}

// PanicIndex raises an *OpError wrapping ErrLogic for an independent-variable
// index outside [0, n).
func PanicIndex(op string, idx, n int) {
	panic(&OpError{Op: op, Err: ErrLogic, Detail: fmt.Sprintf("index %d out of range [0, %d)", idx, n)})
}

// Recover converts a panicking *OpError into an error stored in *errp. It must
// be called directly by a deferred statement. Panics that do not carry an
// *OpError are re-raised.
//
//	func solve() (err error) {
//		defer numeric.Recover(&err)
//		...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*OpError); ok {
		*errp = e
		return
	}
	panic(r)
}

// Catch runs fn and returns the *OpError it panicked with, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}
