// Package search maintains a Bluge full-text index over circular titles
// and bodies. The index stores only IDs; hits are re-read from the store so
// search can never leak stale content.
package search

import (
	"context"
	"log/slog"

	"circular-lab/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

// Index upserts a circular into the full-text index.
func (i *Index) Index(c domain.Circular) error {
	doc := bluge.NewDocument(c.ID.String()).
		AddField(bluge.NewTextField("title", c.Title)).
		AddField(bluge.NewTextField("body", c.Body)).
		AddField(bluge.NewKeywordField("sender", c.SenderID))
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the IDs of circulars matching the query on title or body,
// best first, capped at limit. Access filtering belongs to the caller.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "err", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("title")).
		AddShould(bluge.NewMatchQuery(query).SetField("body"))

	iter, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for {
		match, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.Parse(string(value)); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
