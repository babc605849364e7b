package cmd

import (
	"context"
	"fmt"

	"github.com/campuskit/gatepass-management/internal/core/events"
	"github.com/campuskit/gatepass-management/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Manage events: publish gate-pass lifecycle events against the audit subscriber`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a gate-pass lifecycle event",
	Long: `Publish one of the gate-pass lifecycle events through the event bus so the
audit subscriber's output can be inspected without running the server.
Known types: gatepass.created, gatepass.approved, gatepass.rejected,
gatelog.entry_marked, gatelog.exit_marked`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return publishLifecycleEvent(args[0])
	},
}

var (
	eventPassID   string
	eventMarkedBy string
)

func publishLifecycleEvent(eventType string) error {
	appLogger := logger.LoggerWrapper()

	eventBus := events.NewEventBus(appLogger)
	events.RegisterAuditSubscriber(eventBus, appLogger)

	var event events.Event
	switch eventType {
	case events.EventTypeGatePassCreated:
		event = events.NewGatePassCreatedEvent(eventPassID, 0, "", "")
	case events.EventTypeGatePassApproved:
		event = events.NewGatePassDecidedEvent(eventPassID, "approved", eventMarkedBy, "Approved")
	case events.EventTypeGatePassRejected:
		event = events.NewGatePassDecidedEvent(eventPassID, "rejected", eventMarkedBy, "Rejected")
	case events.EventTypeEntryMarked, events.EventTypeExitMarked:
		event = events.NewGateMovementEvent(eventType, "LOG0000", eventPassID, eventMarkedBy)
	default:
		return fmt.Errorf("unknown event type %q", eventType)
	}

	appLogger.Info("publishing event", "event_type", eventType, "event_id", event.EventID())

	// Synchronous publish so the audit handler runs before the command exits.
	if err := eventBus.PublishSync(context.Background(), event); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}

	appLogger.Info("event published successfully")
	return nil
}

func init() {
	publishEventCmd.Flags().StringVar(&eventPassID, "pass-id", "GP-00000000-0000", "Gate pass identifier to stamp on the event")
	publishEventCmd.Flags().StringVar(&eventMarkedBy, "by", "cli", "Actor name to stamp on the event")

	eventCmd.AddCommand(publishEventCmd)

	rootCmd.AddCommand(eventCmd)
}
