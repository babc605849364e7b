package events

import (
	"context"
	"log/slog"
)

// RegisterAuditSubscriber attaches a logging handler to every gate-pass
// lifecycle event so the server keeps an audit trail without any external
// delivery channel.
func RegisterAuditSubscriber(bus *EventBus, logger *slog.Logger) {
	handler := func(ctx context.Context, event Event) error {
		logger.Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		EventTypeGatePassCreated,
		EventTypeGatePassApproved,
		EventTypeGatePassRejected,
		EventTypeEntryMarked,
		EventTypeExitMarked,
	} {
		bus.Subscribe(eventType, handler)
	}
}
