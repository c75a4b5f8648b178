package basiccrypto

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates that a modular inverse does not exist, which makes
	// the key that needed it unusable for decryption.
	ErrDomain = errors.New("no modular inverse")

	// ErrDecode indicates a block sequence that does not decode to text:
	// a block outside [0, 256^k) or bytes that are not valid UTF-8.
	ErrDecode = errors.New("malformed block sequence")

	// ErrPrecondition indicates a key that violates an invertibility
	// precondition of the exponentiation cipher.
	ErrPrecondition = errors.New("precondition violated")

	// ErrInvalidParameter indicates an argument outside the accepted range,
	// such as a block size below one.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Error wraps one of the sentinel errors with the operation that failed.
type Error struct {
	Op  string // Operation that failed, e.g. "modarith.MultiplicativeInverse"
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error for op whose chain contains kind. It is exported
// for use by the cipher subpackages.
func NewError(op string, kind error, format string, args ...any) error {
	if format == "" {
		return &Error{Op: op, Err: kind}
	}
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// WrapError attaches op to err unless err is nil or already carries an
// operation, in which case it is returned unchanged.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Err: err}
}
