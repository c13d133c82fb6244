package replica

import (
	"reflect"
	"unsafe"
)

// copyFields copies every field declared directly on the struct type from
// src into dst, both addressable. Per-field strategy, checked in order:
//
//  1. Interface-typed fields are assigned unchanged.
//  2. A value satisfying Cloner is copied through its Clone method.
//  3. A value of a registered Encodable type round-trips the codec.
//  4. Anything else recurses through the engine.
//
// Fields are read and written directly regardless of visibility; unexported
// fields go through their offset and reflect.NewAt.
func (c *Copier) copyFields(src, dst reflect.Value, depth int) error {
	t := src.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		value := fieldValue(src, f)

		copied, err := c.copyField(value, f.Type, depth)
		if err != nil {
			return err
		}
		setField(dst, f, copied)
	}
	return nil
}

// copyField picks the copy strategy for a single field value.
func (c *Copier) copyField(value reflect.Value, declared reflect.Type, depth int) (reflect.Value, error) {
	if declared.Kind() == reflect.Interface {
		return value, nil
	}
	if isNilValue(value) {
		return value, nil
	}

	if m, ok := cloneMethod(value); ok {
		return m.Call(nil)[0], nil
	}

	if isEncodable(value.Type()) {
		return c.roundTrip(value)
	}

	return c.copyValue(value, depth+1)
}

// roundTrip copies a value by serializing it to an in-memory buffer and
// deserializing a fresh instance. What survives of the value's subgraph is
// governed by the codec's encoding; identity with sibling fields referencing
// the same object never does.
func (c *Copier) roundTrip(v reflect.Value) (reflect.Value, error) {
	data, err := c.codec.Marshal(v.Interface())
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(v.Type())
	if err := c.codec.Unmarshal(data, out.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return out.Elem(), nil
}

// fieldValue reads a field from an addressable struct, bypassing visibility
// for unexported fields.
func fieldValue(src reflect.Value, f reflect.StructField) reflect.Value {
	if f.IsExported() {
		return src.Field(f.Index[0])
	}
	ptr := unsafe.Add(src.Addr().UnsafePointer(), f.Offset)
	return reflect.NewAt(f.Type, ptr).Elem()
}

// setField writes a field into an addressable struct, bypassing visibility
// for unexported fields.
func setField(dst reflect.Value, f reflect.StructField, value reflect.Value) {
	if !value.IsValid() {
		return
	}
	if f.IsExported() {
		dst.Field(f.Index[0]).Set(value)
		return
	}
	ptr := unsafe.Add(dst.Addr().UnsafePointer(), f.Offset)
	reflect.NewAt(f.Type, ptr).Elem().Set(value)
}

// isNilValue reports whether a field value is a typed nil. Nil fields skip
// the capability tiers; there is nothing to clone or encode.
func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
