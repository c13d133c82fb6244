package replica

import "reflect"

// category identifies the copy strategy for a value. Checks run in a fixed
// order; the order is a tie-break policy, not an implementation detail. Enum
// values in particular are classified before the general object path so they
// are never field-copied.
type category uint8

const (
	categoryNil category = iota
	categoryScalar
	categoryEnum
	categoryInterface
	categoryRecord
	categorySequence
	categoryPointer
	categoryMap
	categoryObject
	categoryOpaque
)

var categoryNames = map[category]string{
	categoryNil:       "nil",
	categoryScalar:    "scalar",
	categoryEnum:      "enum",
	categoryInterface: "interface",
	categoryRecord:    "record",
	categorySequence:  "sequence",
	categoryPointer:   "pointer",
	categoryMap:       "map",
	categoryObject:    "object",
	categoryOpaque:    "opaque",
}

func (c category) String() string {
	return categoryNames[c]
}

// classify routes a value to exactly one category. It cannot fail.
func classify(v reflect.Value) category {
	if !v.IsValid() {
		return categoryNil
	}

	switch v.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return categoryScalar
	case reflect.Interface:
		return categoryInterface
	}

	t := v.Type()
	if isEnum(t) {
		return categoryEnum
	}
	if _, ok := lookupRecord(t); ok {
		return categoryRecord
	}

	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		return categorySequence
	case reflect.Pointer:
		return categoryPointer
	case reflect.Map:
		return categoryMap
	case reflect.Struct:
		return categoryObject
	default:
		// Chan, Func, UnsafePointer. These cannot be rebuilt; they alias.
		return categoryOpaque
	}
}
