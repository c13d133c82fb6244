package replica

import "reflect"

// copyValue is the recursion's re-entry point: the classifier is consulted
// on every call, including sub-calls made for array elements, record
// components, and object fields.
func (c *Copier) copyValue(v reflect.Value, depth int) (reflect.Value, error) {
	if !v.IsValid() {
		return v, nil
	}
	if depth > c.maxDepth {
		return reflect.Value{}, depthError(v.Type().String())
	}

	switch classify(v) {
	case categoryScalar, categoryEnum, categoryOpaque:
		return v, nil
	case categoryInterface:
		// Interface-typed references short-circuit to identity. The concrete
		// value is copied only when the engine is invoked on it directly.
		return v, nil
	case categoryRecord:
		return c.copyRecord(v, depth)
	case categorySequence:
		return c.copySequence(v, depth)
	case categoryPointer:
		return c.copyPointer(v, depth)
	case categoryMap:
		return c.copyMap(v, depth)
	default:
		return c.copyObject(v, depth)
	}
}

// copySequence rebuilds an array or slice of the same element type and
// length, deep-copying each slot.
func (c *Copier) copySequence(v reflect.Value, depth int) (reflect.Value, error) {
	t := v.Type()

	var out reflect.Value
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			return v, nil
		}
		out = reflect.MakeSlice(t, v.Len(), v.Len())
	} else {
		out = reflect.New(t).Elem()
	}

	for i := 0; i < v.Len(); i++ {
		elem, err := c.copyValue(v.Index(i), depth+1)
		if err != nil {
			return reflect.Value{}, sequenceError(err)
		}
		if elem.IsValid() {
			out.Index(i).Set(elem)
		}
	}
	return out, nil
}

// copyPointer allocates a new pointee and deep-copies into it.
func (c *Copier) copyPointer(v reflect.Value, depth int) (reflect.Value, error) {
	if v.IsNil() {
		return v, nil
	}
	elem, err := c.copyValue(v.Elem(), depth+1)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(v.Type().Elem())
	out.Elem().Set(elem)
	return out, nil
}

// copyMap rebuilds a map, deep-copying keys and values.
func (c *Copier) copyMap(v reflect.Value, depth int) (reflect.Value, error) {
	if v.IsNil() {
		return v, nil
	}
	out := reflect.MakeMapWithSize(v.Type(), v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := c.copyValue(iter.Key(), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		val, err := c.copyValue(iter.Value(), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(k, val)
	}
	return out, nil
}
