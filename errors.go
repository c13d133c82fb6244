package replica

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNoConstructor indicates a struct registered constructors but none
	// could be satisfied from its field types.
	ErrNoConstructor = errors.New("no suitable constructor")

	// ErrSequence indicates an array or slice element failed to copy.
	ErrSequence = errors.New("failed to deep copy array")

	// ErrRecord indicates a record component copy or reconstruction failed.
	ErrRecord = errors.New("failed to deep copy record")

	// ErrObject indicates a general object failed during construction or
	// the field copy pass.
	ErrObject = errors.New("failed to deep copy object")

	// ErrMaxDepth indicates recursion exceeded the configured depth limit,
	// usually because the input graph is cyclic.
	ErrMaxDepth = errors.New("maximum copy depth exceeded")

	// ErrInvalidConstructor indicates a registered constructor has an
	// unusable signature.
	ErrInvalidConstructor = errors.New("invalid constructor")

	// ErrNotStruct indicates a registration targeted a non-struct type.
	ErrNotStruct = errors.New("not a struct type")
)

// Constructor paths reported in object copy failures.
const (
	ctorNoArg         = "no-arg"
	ctorParameterized = "parameterized"
)

// CopyError is the single failure kind of the engine. It carries the
// offending type's name, the constructor path in effect for object
// failures, and the chained underlying cause.
type CopyError struct {
	Err   error  // Underlying sentinel error (ErrObject, ErrRecord, etc.)
	Type  string // Full name of the type being copied
	Ctor  string // Constructor path ("no-arg" or "parameterized"), object failures only
	Cause error  // Original low-level failure
}

func (e *CopyError) Error() string {
	var msg string
	switch {
	case e.Type == "":
		msg = e.Err.Error()
	case errors.Is(e.Err, ErrNoConstructor) || errors.Is(e.Err, ErrMaxDepth) || errors.Is(e.Err, ErrInvalidConstructor):
		msg = fmt.Sprintf("%s for type %s", e.Err.Error(), e.Type)
	case errors.Is(e.Err, ErrNotStruct):
		msg = fmt.Sprintf("%s: %s", e.Err.Error(), e.Type)
	case errors.Is(e.Err, ErrObject):
		msg = fmt.Sprintf("%s of type %s with %s constructor", e.Err.Error(), e.Type, e.Ctor)
	default:
		msg = fmt.Sprintf("%s of type %s", e.Err.Error(), e.Type)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CopyError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// sequenceError wraps an element copy failure.
func sequenceError(cause error) error {
	return &CopyError{Err: ErrSequence, Cause: cause}
}

// recordError wraps a record accessor, copy, or reconstruction failure.
func recordError(typeName string, cause error) error {
	return &CopyError{Err: ErrRecord, Type: typeName, Cause: cause}
}

// objectError wraps a construction or field copy failure, identifying which
// instantiation path was in effect.
func objectError(typeName, ctor string, cause error) error {
	return &CopyError{Err: ErrObject, Type: typeName, Ctor: ctor, Cause: cause}
}

// noConstructorError reports that no registered constructor is satisfiable.
func noConstructorError(typeName string) error {
	return &CopyError{Err: ErrNoConstructor, Type: typeName}
}

// depthError reports the recursion guard tripping.
func depthError(typeName string) error {
	return &CopyError{Err: ErrMaxDepth, Type: typeName}
}

// registrationError reports a misused registration call.
func registrationError(sentinel error, typeName string, cause error) error {
	return &CopyError{Err: sentinel, Type: typeName, Cause: cause}
}
