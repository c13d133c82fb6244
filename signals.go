package replica

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for copy events.
var (
	SignalCopyStart    = capitan.NewSignal("replica.copy.start", "Deep copy beginning")
	SignalCopyComplete = capitan.NewSignal("replica.copy.complete", "Deep copy finished")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyCategory = capitan.NewStringKey("category")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitCopyStart emits an event when a copy begins. Events fire at the public
// entry point only, not on recursive sub-calls.
func emitCopyStart(ctx context.Context, typeName, category string) {
	capitan.Emit(ctx, SignalCopyStart,
		KeyTypeName.Field(typeName),
		KeyCategory.Field(category),
	)
}

// emitCopyComplete emits an event when a copy finishes.
func emitCopyComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCopyComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCopyComplete, fields...)
	}
}
