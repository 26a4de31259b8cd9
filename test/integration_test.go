package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"circular-lab/directory"
	"circular-lab/domain"
	"circular-lab/domain/event"
	"circular-lab/errors"
	"circular-lab/moderation"
	"circular-lab/notifications"
	"circular-lab/observability"
	"circular-lab/projection"
	"circular-lab/repositories"
	"circular-lab/resolver"
	"circular-lab/search"
	"circular-lab/services"
	"circular-lab/workers"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// Test_Scenario wires real components end to end: directory, resolver,
// store, index, moderation, notification fan-out. One circular goes through
// its whole life: issued, delivered, read, counted, archived.
func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 2 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer blugeWriter.Close()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// 1. Seed the campus directory
	dir := directory.NewBadgerDirectory(db, log)
	for _, u := range []directory.User{
		{ID: "student-1", Name: "Alice Martin", Role: domain.RoleStudent},
		{ID: "student-2", Name: "Bruno Costa", Role: domain.RoleStudent},
		{ID: "prof-1", Name: "Diane Keller", Role: domain.RoleProfessor},
		{ID: "mgmt-1", Name: "Farid Benali", Role: domain.RoleManagement},
	} {
		req.NoError(dir.AddUser(u))
	}

	// 2. Wire the service with every real collaborator
	moderator, err := moderation.NewModerator([]string{"scandal"}, '*')
	req.NoError(err)
	monitoring := observability.NewMonitoringManager()
	events := make(chan event.DomainEvent, 16)
	circularRepository := repositories.NewCircularRepository(db, log)
	notificationRepository := notifications.NewNotificationRepository(db)
	index := search.NewIndex(blugeWriter, log)
	res := resolver.NewResolver(log, dir, 3, time.Second)

	service := services.NewBroadcastService(
		log, circularRepository, res, dir, moderator, index, monitoring, events,
	)

	// 3. Run the notifier under supervision
	supervisorCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	sup := workers.NewSupervisor(log, 50*time.Millisecond)
	sup.Add(notifications.NewNotifier(log, notificationRepository, events, monitoring))
	go sup.Run(supervisorCtx)

	// 4. Management issues a circular to everyone
	created, err := service.Create(ctx, services.CreateCircularRequest{
		Title:      "Exam scandal update",
		Body:       "Exams start on Monday.",
		SenderID:   "mgmt-1",
		SenderRole: domain.RoleManagement,
		Groups:     []domain.GroupTag{domain.GroupAll},
	})
	req.NoError(err)
	req.Equal("Exam ******* update", created.Title)
	req.Equal("Farid Benali", created.SenderName)
	req.Equal(3, created.RecipientCount())
	req.False(created.IsRecipient("mgmt-1"))

	// 5. Every recipient sees it, with the correct unread accounting
	received, err := service.ListReceivedBy(ctx, "student-1")
	req.NoError(err)
	req.Len(received, 1)

	count, err := service.UnreadCount(ctx, "prof-1")
	req.NoError(err)
	req.Equal(1, count)

	// 6. The notifier fans out one notification per recipient
	req.Eventually(func() bool {
		feed, err := notificationRepository.ListForUser("student-2", 10)
		return err == nil && len(feed) == 1
	}, 2*time.Second, 20*time.Millisecond)

	feed, err := notificationRepository.ListForUser("student-2", 10)
	req.NoError(err)
	req.Equal("New Circular: Exam ******* update", feed[0].Title)
	req.Equal("You have received a new circular from Farid Benali (management)", feed[0].Message)

	// 7. One student reads it; stats move, repeats stay silent
	req.NoError(service.MarkRead(ctx, created.ID, "student-1"))
	req.NoError(service.MarkRead(ctx, created.ID, "student-1"))

	stats, err := service.ReadStats(ctx, created.ID)
	req.NoError(err)
	req.Equal(projection.ReadStats{ReadCount: 1, TotalRecipients: 3, Percentage: 33}, stats)

	count, err = service.UnreadCount(ctx, "student-1")
	req.NoError(err)
	req.Zero(count)

	// 8. Non-recipients stay out
	err = service.MarkRead(ctx, created.ID, "outsider")
	req.ErrorIs(err, errors.ErrNotRecipient)
	_, err = service.Get(ctx, created.ID, "outsider")
	req.ErrorIs(err, errors.ErrAccessDenied)

	// 9. Search finds it for a recipient
	hits, err := service.Search(ctx, "exam", "prof-1")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(created.ID, hits[0].ID)

	// 10. Only the sender archives, exactly once
	err = service.Archive(ctx, created.ID, "student-1")
	req.ErrorIs(err, errors.ErrNotOwner)

	req.NoError(service.Archive(ctx, created.ID, "mgmt-1"))
	err = service.Archive(ctx, created.ID, "mgmt-1")
	req.ErrorIs(err, errors.ErrAlreadyArchived)

	// 11. Archived circulars leave the active view but keep unread counts
	active, err := service.ListActive(ctx)
	req.NoError(err)
	req.Empty(active)

	count, err = service.UnreadCount(ctx, "student-2")
	req.NoError(err)
	req.Equal(1, count)

	// 12. Reading after archive still lands
	req.NoError(service.MarkRead(ctx, created.ID, "student-2"))
	stats, err = service.ReadStats(ctx, created.ID)
	req.NoError(err)
	req.Equal(2, stats.ReadCount)
}
