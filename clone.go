package replica

import "reflect"

// Cloner allows types to provide their own copy logic. During the field
// copy pass a value implementing Cloner is copied through its Clone method
// instead of the engine's recursive walk.
//
// Clone copies exactly one level deep; anything beyond is governed by the
// implementing type's own clone contract. A Clone that shares interior
// slices or maps with the receiver propagates that sharing into the copy.
//
// For simple value types with no pointers, slices, or maps, Clone can simply
// return the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with reference fields, copy them explicitly:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
//
// Clone must use a value receiver; the engine detects the capability on the
// value it reads out of a field.
type Cloner[T any] interface {
	Clone() T
}

// cloneMethod reports whether v's type satisfies Cloner and returns the
// bound method. The method set is checked reflectively because field values
// surface as arbitrary runtime types.
func cloneMethod(v reflect.Value) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	m := v.MethodByName("Clone")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != v.Type() {
		return reflect.Value{}, false
	}
	return m, true
}
