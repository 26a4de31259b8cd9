package search

import (
	"context"
	"log/slog"
	"testing"

	"circular-lab/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewIndex(writer, slog.Default())
}

func circularFor(title, body string) domain.Circular {
	return domain.NewCircular(
		title, body, "mgmt-1", "Farid Benali", domain.RoleManagement,
		[]domain.GroupTag{domain.GroupStudents}, []string{"student-1"},
	)
}

func TestIndex_SearchByTitle(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	exams := circularFor("Exam schedule", "Exams start on Monday.")
	cafeteria := circularFor("Cafeteria closure", "The cafeteria closes early on Friday.")
	req.NoError(index.Index(exams))
	req.NoError(index.Index(cafeteria))

	ids, err := index.Search(context.Background(), "exam", 10)

	req.NoError(err)
	req.Equal([]uuid.UUID{exams.ID}, ids)
}

func TestIndex_SearchByBody(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	cafeteria := circularFor("Cafeteria closure", "The cafeteria closes early on Friday.")
	req.NoError(index.Index(cafeteria))

	ids, err := index.Search(context.Background(), "friday", 10)

	req.NoError(err)
	req.Equal([]uuid.UUID{cafeteria.ID}, ids)
}

func TestIndex_SearchNoMatch(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	req.NoError(index.Index(circularFor("Exam schedule", "Exams start on Monday.")))

	ids, err := index.Search(context.Background(), "holidays", 10)

	req.NoError(err)
	req.Empty(ids)
}

func TestIndex_ReindexReplacesTheDocument(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	c := circularFor("Exam schedule", "Exams start on Monday.")
	req.NoError(index.Index(c))

	c.Title = "Updated exam schedule"
	c.Body = "Exams moved to Tuesday."
	req.NoError(index.Index(c))

	ids, err := index.Search(context.Background(), "tuesday", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{c.ID}, ids)

	ids, err = index.Search(context.Background(), "monday", 10)
	req.NoError(err)
	req.Empty(ids)
}

func TestIndex_SearchHonorsTheLimit(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	for range 5 {
		req.NoError(index.Index(circularFor("Exam schedule", "Exams start on Monday.")))
	}

	ids, err := index.Search(context.Background(), "exam", 2)

	req.NoError(err)
	req.Len(ids, 2)
}
