package models

import (
	"errors"
	"fmt"
)

// Error code constants
const (
	// General errors
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"

	// Pizza-specific errors
	ErrCodeUnsupportedPizzaType = "UNSUPPORTED_PIZZA_TYPE"
	ErrCodeUnknownPizzaType     = "UNKNOWN_PIZZA_TYPE"
	ErrCodeUnknownStore         = "UNKNOWN_STORE"
	ErrCodeLifecycleFailed      = "LIFECYCLE_FAILED"
)

var (
	// ErrUnsupportedPizzaType is matched by every UnsupportedPizzaTypeError
	ErrUnsupportedPizzaType = errors.New("unsupported pizza type")
	// ErrUnknownPizzaType is returned when input does not name any declared pizza type
	ErrUnknownPizzaType = errors.New("unknown pizza type")
	// ErrUnknownStore is returned when a store key is not registered
	ErrUnknownStore = errors.New("unknown store")
	// ErrLifecycleFailed wraps a failure in one of the prepare, bake, cut or box steps
	ErrLifecycleFailed = errors.New("pizza lifecycle step failed")
)

// UnsupportedPizzaTypeError is raised when a creational strategy is asked
// for a pizza type it does not implement
type UnsupportedPizzaTypeError struct {
	Type    PizzaType
	Factory string
}

func (e *UnsupportedPizzaTypeError) Error() string {
	return fmt.Sprintf("%s does not make %q pizza", e.Factory, e.Type)
}

// Is lets errors.Is match the ErrUnsupportedPizzaType sentinel
func (e *UnsupportedPizzaTypeError) Is(target error) bool {
	return target == ErrUnsupportedPizzaType
}

// NewUnsupportedPizzaTypeError creates a new UnsupportedPizzaTypeError
func NewUnsupportedPizzaTypeError(t PizzaType, factory string) error {
	return &UnsupportedPizzaTypeError{Type: t, Factory: factory}
}

// ErrorCode maps an error onto one of the error code constants
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedPizzaType):
		return ErrCodeUnsupportedPizzaType
	case errors.Is(err, ErrUnknownPizzaType):
		return ErrCodeUnknownPizzaType
	case errors.Is(err, ErrUnknownStore):
		return ErrCodeUnknownStore
	case errors.Is(err, ErrLifecycleFailed):
		return ErrCodeLifecycleFailed
	default:
		return ErrCodeInternalServer
	}
}
