package payment

import "fmt"

// ErrorKind classifies gateway failures. All kinds are terminal for the
// request; the caller must resubmit.
type ErrorKind string

const (
	// ErrDeclined means the processor refused the charge.
	ErrDeclined ErrorKind = "declined"
	// ErrValidation means the gateway rejected the request as malformed.
	ErrValidation ErrorKind = "validation"
	// ErrNetwork covers transport failures and unparseable responses.
	ErrNetwork ErrorKind = "network"
)

// Error is a structured gateway failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway %s: %s", e.Kind, e.Message)
}
