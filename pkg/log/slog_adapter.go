package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes bridge events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.AccessoryID != "" {
		attrs = append(attrs, slog.String("accessory_id", event.AccessoryID))
	}

	switch {
	case event.Access != nil:
		attrs = append(attrs,
			slog.String("op", event.Access.Op.String()),
			slog.Uint64("char_type", uint64(event.Access.CharacteristicType)),
			slog.Uint64("payload", event.Access.Payload),
		)
		if event.Access.Length != 0 {
			attrs = append(attrs, slog.Int("length", event.Access.Length))
		}
		if event.Access.Value != nil {
			attrs = append(attrs, slog.Any("value", event.Access.Value))
		}
	case event.Service != nil:
		attrs = append(attrs,
			slog.Uint64("service_type", uint64(event.Service.ServiceType)),
			slog.Int("characteristics", event.Service.Characteristics),
			slog.Int("valid_value_arrays", event.Service.ValidValueArrays),
			slog.Bool("extended", event.Service.Extended),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "bridge", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
