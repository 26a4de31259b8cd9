package repositories

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"circular-lab/domain"
	"circular-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func issuedCircular(title string, recipients ...string) domain.Circular {
	return domain.NewCircular(
		title, "Body of "+title,
		"mgmt-1", "Farid Benali", domain.RoleManagement,
		[]domain.GroupTag{domain.GroupStudents}, recipients,
	)
}

func TestCircularRepository_SaveAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	original := issuedCircular("Exam schedule", "student-1", "student-2")
	req.NoError(original.MarkRead("student-1", time.Now().UTC()))

	req.NoError(repo.Save(original))

	fetched, err := repo.Get(original.ID)
	req.NoError(err)
	req.Equal(original.ID, fetched.ID)
	req.Equal(original.Title, fetched.Title)
	req.Equal(original.Body, fetched.Body)
	req.Equal(original.SenderID, fetched.SenderID)
	req.Equal(original.SenderName, fetched.SenderName)
	req.Equal(original.SenderRole, fetched.SenderRole)
	req.Equal(original.RecipientGroups, fetched.RecipientGroups)
	req.Equal(original.RecipientSnapshot, fetched.RecipientSnapshot)
	req.Equal(original.ReadBy, fetched.ReadBy)
	req.Equal(original.Status, fetched.Status)
	req.True(original.CreatedAt.Equal(fetched.CreatedAt))
	req.True(original.UpdatedAt.Equal(fetched.UpdatedAt))
}

func TestCircularRepository_GetUnknown(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	_, err := repo.Get(uuid.New())

	req.ErrorIs(err, errors.ErrNotFound)
}

func TestCircularRepository_UpdatePersistsMutation(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	original := issuedCircular("Exam schedule", "student-1", "student-2")
	req.NoError(repo.Save(original))

	at := time.Now().UTC()
	updated, err := repo.Update(original.ID, func(c *domain.Circular) error {
		return c.MarkRead("student-2", at)
	})
	req.NoError(err)
	req.True(updated.IsReadBy("student-2"))

	fetched, err := repo.Get(original.ID)
	req.NoError(err)
	req.True(fetched.IsReadBy("student-2"))
	req.Equal(1, fetched.ReadCount())
}

func TestCircularRepository_UpdateFailureLeavesNoTrace(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	original := issuedCircular("Exam schedule", "student-1")
	req.NoError(repo.Save(original))

	_, err := repo.Update(original.ID, func(c *domain.Circular) error {
		return c.Archive("student-1", time.Now().UTC())
	})
	req.ErrorIs(err, errors.ErrNotOwner)

	fetched, err := repo.Get(original.ID)
	req.NoError(err)
	req.Equal(domain.StatusActive, fetched.Status)
}

func TestCircularRepository_UpdateUnknown(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	_, err := repo.Update(uuid.New(), func(c *domain.Circular) error { return nil })

	req.ErrorIs(err, errors.ErrNotFound)
}

func TestCircularRepository_ConcurrentMarkReadsAllLand(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	recipients := []string{"student-1", "student-2", "student-3", "student-4", "student-5"}
	original := issuedCircular("Exam schedule", recipients...)
	req.NoError(repo.Save(original))

	var wg sync.WaitGroup
	errs := make(chan error, len(recipients))
	for _, recipient := range recipients {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := repo.Update(original.ID, func(c *domain.Circular) error {
				return c.MarkRead(userID, time.Now().UTC())
			})
			errs <- err
		}(recipient)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		req.NoError(err)
	}

	fetched, err := repo.Get(original.ID)
	req.NoError(err)
	req.Equal(len(recipients), fetched.ReadCount())
}

func TestCircularRepository_ListSentBy_NewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	first := issuedCircular("First", "student-1")
	second := issuedCircular("Second", "student-1")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	third := issuedCircular("Third", "student-1")
	third.CreatedAt = first.CreatedAt.Add(2 * time.Minute)

	// Insertion order must not matter
	for _, c := range []domain.Circular{second, third, first} {
		req.NoError(repo.Save(c))
	}

	sent, err := repo.ListSentBy("mgmt-1")
	req.NoError(err)
	req.Len(sent, 3)
	req.Equal("Third", sent[0].Title)
	req.Equal("Second", sent[1].Title)
	req.Equal("First", sent[2].Title)

	none, err := repo.ListSentBy("prof-1")
	req.NoError(err)
	req.Empty(none)
}

func TestCircularRepository_ListReceivedBy(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	forStudent1 := issuedCircular("For one", "student-1")
	forBoth := issuedCircular("For both", "student-1", "student-2")
	forBoth.CreatedAt = forStudent1.CreatedAt.Add(time.Minute)

	req.NoError(repo.Save(forStudent1))
	req.NoError(repo.Save(forBoth))

	received, err := repo.ListReceivedBy("student-1")
	req.NoError(err)
	req.Len(received, 2)
	req.Equal("For both", received[0].Title)

	received, err = repo.ListReceivedBy("student-2")
	req.NoError(err)
	req.Len(received, 1)
	req.Equal("For both", received[0].Title)

	// The sender does not receive their own circular
	received, err = repo.ListReceivedBy("mgmt-1")
	req.NoError(err)
	req.Empty(received)
}

func TestCircularRepository_ListByStatus(t *testing.T) {
	req := require.New(t)
	repo := NewCircularRepository(openTestDB(t), slog.Default())

	active := issuedCircular("Still active", "student-1")
	archived := issuedCircular("Put away", "student-1")
	req.NoError(archived.Archive("mgmt-1", time.Now().UTC()))

	req.NoError(repo.Save(active))
	req.NoError(repo.Save(archived))

	actives, err := repo.ListByStatus(domain.StatusActive)
	req.NoError(err)
	req.Len(actives, 1)
	req.Equal("Still active", actives[0].Title)

	archiveds, err := repo.ListByStatus(domain.StatusArchived)
	req.NoError(err)
	req.Len(archiveds, 1)
	req.Equal("Put away", archiveds[0].Title)
}
