package replica

import "reflect"

// copyRecord rebuilds a registered record through its canonical constructor.
// Every component is deep-copied before construction, so a partially built
// instance is never exposed.
func (c *Copier) copyRecord(v reflect.Value, depth int) (reflect.Value, error) {
	t := v.Type()
	rec, ok := lookupRecord(t)
	if !ok {
		// Unreachable through classify; kept as a guard for direct callers.
		return reflect.Value{}, recordError(t.String(), nil)
	}

	args := make([]reflect.Value, len(rec.components))
	for i, idx := range rec.components {
		comp, err := c.copyValue(v.Field(idx), depth+1)
		if err != nil {
			return reflect.Value{}, recordError(t.String(), err)
		}
		args[i] = comp
	}

	out, err := callConstructor(rec.ctor, args, t)
	if err != nil {
		return reflect.Value{}, recordError(t.String(), err)
	}
	return out, nil
}
