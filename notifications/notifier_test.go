package notifications_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"circular-lab/domain/event"
	"circular-lab/mocks"
	"circular-lab/notifications"
	"circular-lab/observability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifier_FansOutPerRecipient(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockINotificationRepository(ctrl)

	events := make(chan event.DomainEvent, 1)
	notifier := notifications.NewNotifier(slog.Default(), repo, events, observability.NewMonitoringManager())

	circularID := uuid.New()
	done := make(chan struct{})
	count := 0

	repo.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(n notifications.Notification) error {
			req.Equal(circularID, n.CircularID)
			req.Equal("New Circular: Exam schedule", n.Title)
			req.Equal("You have received a new circular from Farid Benali (management)", n.Message)
			count++
			if count == 2 {
				close(done)
			}
			return nil
		}).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = notifier.Run(ctx) }()

	events <- event.CircularIssued{
		ID:         circularID,
		Title:      "Exam schedule",
		SenderName: "Farid Benali",
		SenderRole: "MANAGEMENT",
		Recipients: []string{"student-1", "student-2"},
		At:         time.Now().UTC(),
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Both recipients should have been notified")
	}
}

func TestNotifier_OneFailureDoesNotStopTheFanout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockINotificationRepository(ctrl)

	events := make(chan event.DomainEvent, 1)
	notifier := notifications.NewNotifier(slog.Default(), repo, events, observability.NewMonitoringManager())

	done := make(chan struct{})
	gomock.InOrder(
		repo.EXPECT().Store(gomock.Any()).Return(context.DeadlineExceeded),
		repo.EXPECT().Store(gomock.Any()).DoAndReturn(func(n notifications.Notification) error {
			close(done)
			return nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = notifier.Run(ctx) }()

	events <- event.CircularIssued{
		ID:         uuid.New(),
		Title:      "Exam schedule",
		SenderName: "Farid Benali",
		SenderRole: "MANAGEMENT",
		Recipients: []string{"student-1", "student-2"},
		At:         time.Now().UTC(),
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("The second recipient should still have been notified")
	}
}

func TestNotifier_IgnoresOtherEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockINotificationRepository(ctrl)

	events := make(chan event.DomainEvent, 2)
	notifier := notifications.NewNotifier(slog.Default(), repo, events, observability.NewMonitoringManager())

	// Reads and archives never store anything
	repo.EXPECT().Store(gomock.Any()).Times(0)

	events <- event.CircularRead{ID: uuid.New(), UserID: "student-1", At: time.Now().UTC()}
	events <- event.CircularArchived{ID: uuid.New(), SenderID: "mgmt-1", At: time.Now().UTC()}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = notifier.Run(ctx)
}
