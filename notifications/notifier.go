package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"circular-lab/domain/event"
	"circular-lab/observability"

	"github.com/google/uuid"
)

// Notifier fans an issued circular out into one notification per recipient.
//
// Best effort with no delivery guarantees: a failed write is logged and
// skipped, never retried, and never fails the create that triggered it.
// The original behavior swallows notification failures the same way.
type Notifier struct {
	log        *slog.Logger
	repository INotificationRepository
	events     <-chan event.DomainEvent
	monitoring *observability.MonitoringManager
}

func NewNotifier(log *slog.Logger, repository INotificationRepository,
	events <-chan event.DomainEvent, monitoring *observability.MonitoringManager) *Notifier {
	return &Notifier{log: log, repository: repository, events: events, monitoring: monitoring}
}

// Run consumes domain events until the context is canceled. Only
// CircularIssued produces notifications; read and archive events pass
// through untouched.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-n.events:
			if issued, ok := evt.(event.CircularIssued); ok {
				n.fanout(issued)
			}
		case <-ctx.Done():
			n.log.Debug("Context done, stopping notifier")
			return nil
		}
	}
}

func (n *Notifier) fanout(issued event.CircularIssued) {
	title := "New Circular: " + issued.Title
	message := fmt.Sprintf("You have received a new circular from %s (%s)",
		issued.SenderName, strings.ToLower(issued.SenderRole))

	for _, recipient := range issued.Recipients {
		err := n.repository.Store(Notification{
			ID:         uuid.New(),
			UserID:     recipient,
			CircularID: issued.ID,
			Title:      title,
			Message:    message,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			n.log.Warn("Failed to store notification", "recipient", recipient, "circular", issued.ID, "err", err)
			continue
		}
		n.monitoring.IncrNotifications()
	}
}
