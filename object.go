package replica

import (
	"fmt"
	"reflect"
)

// copyObject copies a general struct: build a new instance through the
// instantiation strategy, then run the field copy pass over it.
//
// A type with no registered constructors starts from its zero value, the
// analogue of an implicit no-arg constructor. A type with registered
// constructors prefers a zero-parameter one; otherwise constructors are
// probed in registration order against the struct's field types.
func (c *Copier) copyObject(v reflect.Value, depth int) (reflect.Value, error) {
	t := v.Type()

	// The original must be addressable so unexported fields can be read.
	// Whole-struct assignment carries unexported state into the shadow.
	src := v
	if !src.CanAddr() {
		src = reflect.New(t).Elem()
		src.Set(v)
	}

	ctors := lookupConstructors(t)
	if len(ctors) == 0 {
		out := reflect.New(t).Elem()
		if err := c.copyFields(src, out, depth); err != nil {
			return reflect.Value{}, objectError(t.String(), ctorNoArg, err)
		}
		return out, nil
	}

	for _, ct := range ctors {
		if ct.fn.Type().NumIn() == 0 {
			return c.constructAndCopy(src, ct, nil, ctorNoArg, depth)
		}
	}

	// No zero-parameter constructor. Probe each constructor for arguments:
	// every parameter binds to the first declared field of exactly that
	// type, aliased, not yet copied. Two same-typed fields therefore bind a
	// two-parameter constructor of that type to the first field twice.
	for _, ct := range ctors {
		args, ok := bindArguments(src, ct.fn.Type())
		if !ok {
			continue
		}
		return c.constructAndCopy(src, ct, args, ctorParameterized, depth)
	}

	return reflect.Value{}, noConstructorError(t.String())
}

// constructAndCopy invokes a selected constructor and runs the field copy
// pass over the result.
func (c *Copier) constructAndCopy(src reflect.Value, ct constructor, args []reflect.Value, path string, depth int) (reflect.Value, error) {
	t := src.Type()
	out, err := callConstructor(ct, args, t)
	if err != nil {
		return reflect.Value{}, objectError(t.String(), path, err)
	}
	if err := c.copyFields(src, out, depth); err != nil {
		return reflect.Value{}, objectError(t.String(), path, err)
	}
	return out, nil
}

// bindArguments satisfies a constructor's parameter list from the struct's
// current field values. Returns false if any parameter type has no exact
// field type match.
func bindArguments(src reflect.Value, ft reflect.Type) ([]reflect.Value, bool) {
	t := src.Type()
	args := make([]reflect.Value, ft.NumIn())
	for i := 0; i < ft.NumIn(); i++ {
		pt := ft.In(i)
		found := false
		for j := 0; j < t.NumField(); j++ {
			if t.Field(j).Type == pt {
				args[i] = fieldValue(src, t.Field(j))
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return args, true
}

// callConstructor invokes a constructor and normalizes the result to an
// addressable value of t. Constructor panics surface as errors.
func callConstructor(ct constructor, args []reflect.Value, t reflect.Type) (out reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = reflect.Value{}
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()

	results := ct.fn.Call(args)
	if ct.returnsErr && !results[1].IsNil() {
		return reflect.Value{}, results[1].Interface().(error)
	}

	res := results[0]
	if ct.ptrResult {
		if res.IsNil() {
			return reflect.Value{}, fmt.Errorf("constructor returned nil %s", res.Type())
		}
		res = res.Elem()
	}

	out = reflect.New(t).Elem()
	out.Set(res)
	return out, nil
}
