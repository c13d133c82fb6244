package replica

import (
	"errors"
	"reflect"
	"sync"
)

// The registry holds per-type copy declarations: constructors for structs
// without a usable zero value, record descriptors, enum markers, and
// encodable markers. Registrations are process-wide, mirroring the fact
// that they describe types, not engine instances.
var (
	registryMu   sync.RWMutex
	constructors = make(map[reflect.Type][]constructor)
	records      = make(map[reflect.Type]*recordDescriptor)
	enums        = make(map[reflect.Type]struct{})
	encodables   = make(map[reflect.Type]struct{})
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// constructor is a validated reconstruction function for a struct type.
type constructor struct {
	fn         reflect.Value
	returnsErr bool
	ptrResult  bool
}

// recordDescriptor marks a struct as a record: an immutable aggregate whose
// exported fields, in declaration order, form its component list, rebuilt
// through the canonical constructor.
type recordDescriptor struct {
	ctor       constructor
	components []int // field indices of the components, in order
}

// RegisterConstructors declares T's constructors in declaration order.
// Each must be a non-variadic func returning T or *T, optionally with a
// trailing error result. Registering again replaces the previous list.
//
// A struct with no registered constructors is copied from its zero value;
// registration is only needed when the zero value is not a valid starting
// state or when construction must run invariant-preserving logic.
func RegisterConstructors[T any](ctors ...any) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return registrationError(ErrNotStruct, t.String(), nil)
	}
	if len(ctors) == 0 {
		return registrationError(ErrInvalidConstructor, t.String(), errors.New("no constructors given"))
	}

	parsed := make([]constructor, 0, len(ctors))
	for _, fn := range ctors {
		c, err := parseConstructor(t, fn)
		if err != nil {
			return registrationError(ErrInvalidConstructor, t.String(), err)
		}
		parsed = append(parsed, c)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	constructors[t] = parsed
	return nil
}

// RegisterRecord marks T as a record. The canonical constructor's parameters
// must exactly match T's exported fields in declaration order and type.
func RegisterRecord[T any](ctor any) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return registrationError(ErrNotStruct, t.String(), nil)
	}

	c, err := parseConstructor(t, ctor)
	if err != nil {
		return registrationError(ErrInvalidConstructor, t.String(), err)
	}

	var components []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			components = append(components, i)
		}
	}

	ft := c.fn.Type()
	if ft.NumIn() != len(components) {
		return registrationError(ErrInvalidConstructor, t.String(),
			errors.New("canonical constructor parameters must match components"))
	}
	for i, idx := range components {
		if ft.In(i) != t.Field(idx).Type {
			return registrationError(ErrInvalidConstructor, t.String(),
				errors.New("canonical constructor parameters must match components"))
		}
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	records[t] = &recordDescriptor{ctor: c, components: components}
	return nil
}

// RegisterEnum marks T's values as process-wide constants. Enum values are
// returned unchanged by the engine, never field-copied, so singleton
// identity is preserved.
func RegisterEnum[T any]() {
	t := reflect.TypeFor[T]()
	registryMu.Lock()
	defer registryMu.Unlock()
	enums[t] = struct{}{}
}

// RegisterEncodable marks T as safe for binary round-trip copying. During
// the field copy pass an encodable value is serialized to an in-memory
// buffer and deserialized into a fresh instance, instead of being walked
// recursively. Every type reachable from T must be representable in the
// engine's codec.
func RegisterEncodable[T any]() {
	t := reflect.TypeFor[T]()
	registryMu.Lock()
	defer registryMu.Unlock()
	encodables[t] = struct{}{}
}

// Reset clears all registrations.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	constructors = make(map[reflect.Type][]constructor)
	records = make(map[reflect.Type]*recordDescriptor)
	enums = make(map[reflect.Type]struct{})
	encodables = make(map[reflect.Type]struct{})
}

// parseConstructor validates a constructor signature against t.
func parseConstructor(t reflect.Type, fn any) (constructor, error) {
	if fn == nil {
		return constructor{}, errors.New("constructor is nil")
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return constructor{}, errors.New("constructor is not a function")
	}
	ft := v.Type()
	if ft.IsVariadic() {
		return constructor{}, errors.New("constructor must not be variadic")
	}

	c := constructor{fn: v}
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errType {
			return constructor{}, errors.New("second result must be error")
		}
		c.returnsErr = true
	default:
		return constructor{}, errors.New("constructor must return the target type")
	}

	switch ft.Out(0) {
	case t:
	case reflect.PointerTo(t):
		c.ptrResult = true
	default:
		return constructor{}, errors.New("constructor must return the target type")
	}
	return c, nil
}

func lookupConstructors(t reflect.Type) []constructor {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return constructors[t]
}

func lookupRecord(t reflect.Type) (*recordDescriptor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := records[t]
	return r, ok
}

func isEnum(t reflect.Type) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := enums[t]
	return ok
}

func isEncodable(t reflect.Type) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := encodables[t]
	return ok
}
