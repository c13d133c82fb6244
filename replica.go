// Package replica provides generic deep copying of arbitrary Go values.
//
// The package produces an independent copy of a value: mutations reachable
// from the copy never affect the original, and vice versa. Copying requires
// no per-type copy logic for plain structs, slices, arrays, maps, and
// pointers; types that need controlled reconstruction declare it through the
// registry.
//
// # Value Categories
//
// Every value routes through exactly one copy strategy, chosen in order:
//
//   - nil values are returned as nil
//   - scalars (booleans, numbers, strings) are returned unchanged
//   - registered enum values and interface-typed references are returned
//     unchanged (identity-preserving)
//   - registered records are rebuilt through their canonical constructor
//     from deep-copied components
//   - arrays and slices are rebuilt element by element
//   - pointers and maps are rebuilt around deep-copied contents
//   - remaining structs are rebuilt by the instantiation strategy and a
//     field-by-field copy
//
// # Instantiation
//
// A struct with no registered constructors starts from its zero value.
// When constructors are registered via RegisterConstructors, a
// zero-parameter constructor is preferred; otherwise each constructor is
// probed in registration order, binding every parameter to the first field
// of the same type. A struct whose registered constructors cannot all be
// satisfied fails with a "no suitable constructor" error.
//
// # Field Fallbacks
//
// During the field copy pass each field value is copied by capability,
// checked in order:
//
//  1. Interface-typed fields are assigned unchanged.
//  2. A type implementing Cloner is copied through its Clone method
//     (one level deep, per that type's own clone contract).
//  3. A type registered via RegisterEncodable is round-tripped through the
//     engine's codec (MessagePack by default).
//  4. Anything else recurses through the engine.
//
// # Basic Usage
//
//	type Profile struct {
//	    Name string
//	    Tags []string
//	}
//
//	copy, err := replica.Copy(original)
//
// # Limitations
//
// Cyclic graphs are not supported: recursion is bounded by a configurable
// depth limit and fails with a "maximum copy depth exceeded" error rather
// than overflowing the stack. Already-copied subgraphs are not memoized, so
// two fields aliasing the same object produce two independent copies.
package replica

import (
	"context"
	"reflect"
	"time"
)

// DefaultMaxDepth bounds recursion for the default engine. Cyclic graphs
// exhaust it and fail cleanly instead of overflowing the stack.
const DefaultMaxDepth = 1000

// Copier is a deep-copy engine. It holds no state between invocations and
// is safe for concurrent use; only the configured codec and depth limit are
// shared, and both are immutable after construction.
type Copier struct {
	codec    Codec
	maxDepth int
}

// Option configures a Copier.
type Option func(*Copier)

// WithCodec sets the codec used for the Encodable round-trip fallback.
// The default is MessagePack.
func WithCodec(c Codec) Option {
	return func(cp *Copier) { cp.codec = c }
}

// WithMaxDepth sets the recursion depth limit.
func WithMaxDepth(n int) Option {
	return func(cp *Copier) { cp.maxDepth = n }
}

// New creates a Copier.
func New(opts ...Option) *Copier {
	c := &Copier{
		codec:    MessagePack(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCopier = New()

// Copy returns a deep copy of v using the default engine.
//
// When T is an interface type the call short-circuits to identity: an
// interface-typed reference is copied by its concrete type only when the
// engine is invoked on that concrete type directly.
func Copy[T any](v T) (T, error) {
	return CopyWith(defaultCopier, v)
}

// CopyWith returns a deep copy of v using the given engine. It exists
// because Go methods cannot carry type parameters; it is the statically
// typed counterpart of [Copier.Copy].
func CopyWith[T any](c *Copier, v T) (T, error) {
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return v, nil
	}
	out, err := c.Copy(v)
	if err != nil {
		var zero T
		return zero, err
	}
	if out == nil {
		var zero T
		return zero, nil
	}
	return out.(T), nil
}

// Copy returns a deep copy of v. The result has the same dynamic type as v.
// A nil input yields a nil result.
func (c *Copier) Copy(v any) (any, error) {
	start := time.Now()
	ctx := context.Background()

	rv := reflect.ValueOf(v)
	typeName := "nil"
	if rv.IsValid() {
		typeName = rv.Type().String()
	}
	emitCopyStart(ctx, typeName, classify(rv).String())

	out, err := c.copyValue(rv, 0)
	emitCopyComplete(ctx, typeName, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if !out.IsValid() {
		return nil, nil
	}
	return out.Interface(), nil
}
