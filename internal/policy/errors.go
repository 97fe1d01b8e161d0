package policy

import (
	"errors"
	"fmt"
	"strings"
)

// Missing item names reported by IncompleteError.
const (
	KindFulfillment = "fulfillment"
	KindPayment     = "payment"
	KindReturn      = "return"
	KindLocation    = "location"
)

var (
	// ErrPolicyIncomplete is matched by every IncompleteError.
	ErrPolicyIncomplete = errors.New("seller policies incomplete")

	// ErrNoLocationAvailable means no usable merchant location exists and
	// none could be created.
	ErrNoLocationAvailable = errors.New("no merchant location available")
)

// IncompleteError lists the policies and location that could not be
// obtained. Cause holds the remote failures behind them, if any.
type IncompleteError struct {
	Missing []string
	Cause   error
}

func (e *IncompleteError) Error() string {
	msg := fmt.Sprintf("%s: missing %s", ErrPolicyIncomplete, strings.Join(e.Missing, ", "))
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Is reports whether target is ErrPolicyIncomplete.
func (*IncompleteError) Is(target error) bool {
	return target == ErrPolicyIncomplete
}

func (e *IncompleteError) Unwrap() error {
	return e.Cause
}
