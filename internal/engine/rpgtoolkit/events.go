package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Sheet event types published on the rpg-toolkit bus
const (
	EventSheetRecalculated  = "sheet.recalculated"
	EventArmorResultStale   = "sheet.armor_result_stale"
	EventArmorDetailUpdated = "sheet.armor_detail_updated"
)

// PublishSheetEvent publishes eventType for the sheet session with data
// copied into the event context. A nil bus publishes nothing.
func PublishSheetEvent(ctx context.Context, bus events.EventBus, eventType, sessionID string, data map[string]any) error {
	if bus == nil {
		return nil
	}

	event := events.NewGameEvent(eventType, NewSheetEntity(sessionID), nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	return bus.Publish(ctx, event)
}

// ContextInt reads an int from an event context
func ContextInt(event events.Event, key string) (int, bool) {
	if val, ok := event.Context().Get(key); ok {
		if i, ok := val.(int); ok {
			return i, true
		}
	}
	return 0, false
}

// ContextString reads a string from an event context
func ContextString(event events.Event, key string) (string, bool) {
	if val, ok := event.Context().Get(key); ok {
		if s, ok := val.(string); ok {
			return s, true
		}
	}
	return "", false
}

// LogSheetEvents logs every sheet event at debug level with logger. It
// returns the subscription ids so callers can unsubscribe.
func LogSheetEvents(bus events.EventBus, logger *slog.Logger) []string {
	if bus == nil || logger == nil {
		return nil
	}

	handler := func(ctx context.Context, e events.Event) error {
		attrs := []any{"event", e.Type()}
		if src := e.Source(); src != nil {
			attrs = append(attrs, "session_id", src.GetID())
		}
		for _, key := range []string{"revision", "armor_class", "hit_points", "initiative", "generation"} {
			if v, ok := ContextInt(e, key); ok {
				attrs = append(attrs, key, v)
			}
		}
		for _, key := range []string{"armor_id", "current_armor_id", "armor_status"} {
			if v, ok := ContextString(e, key); ok {
				attrs = append(attrs, key, v)
			}
		}
		logger.DebugContext(ctx, "Sheet event", attrs...)
		return nil
	}

	return []string{
		bus.SubscribeFunc(EventSheetRecalculated, 0, handler),
		bus.SubscribeFunc(EventArmorDetailUpdated, 0, handler),
		bus.SubscribeFunc(EventArmorResultStale, 0, handler),
	}
}
