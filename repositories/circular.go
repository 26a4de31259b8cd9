//go:generate go run go.uber.org/mock/mockgen -source=circular.go -destination=../mocks/mock_circular_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"circular-lab/domain"
	"circular-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// maxConflictRetries bounds the optimistic-concurrency loop on Update.
// Set-union commutes, so retrying a lost race always converges.
const maxConflictRetries = 5

type ICircularRepository interface {
	Save(c domain.Circular) error
	Get(id uuid.UUID) (domain.Circular, error)
	Update(id uuid.UUID, mutate func(*domain.Circular) error) (domain.Circular, error)
	ListSentBy(userID string) ([]domain.Circular, error)
	ListReceivedBy(userID string) ([]domain.Circular, error)
	ListByStatus(status domain.Status) ([]domain.Circular, error)
}

// CircularRepository persists circulars in BadgerDB.
// Keys:
//
//	circular:{id}                          -> CBOR-encoded record
//	idx:sent:{sender}:{ts_padded}:{id}     -> id
//	idx:rcpt:{user}:{ts_padded}:{id}       -> id
//
// The timestamp is zero-padded to 19 digits so a plain lexicographic scan
// yields chronological order; the UUID suffix disambiguates same-nanosecond
// creations. Index entries are written once at creation: the recipient
// snapshot is frozen, so the indexes never need maintenance.
type CircularRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCircularRepository(db *badger.DB, log *slog.Logger) *CircularRepository {
	return &CircularRepository{db: db, log: log}
}

type diskCircular struct {
	ID              string   `cbor:"1,keyasint"`
	Title           string   `cbor:"2,keyasint"`
	Body            string   `cbor:"3,keyasint"`
	SenderID        string   `cbor:"4,keyasint"`
	SenderName      string   `cbor:"5,keyasint"`
	SenderRole      string   `cbor:"6,keyasint"`
	RecipientGroups []string `cbor:"7,keyasint"`
	Recipients      []string `cbor:"8,keyasint"`
	Status          string   `cbor:"9,keyasint"`
	ReadBy          []string `cbor:"10,keyasint"`
	CreatedAt       int64    `cbor:"11,keyasint"`
	UpdatedAt       int64    `cbor:"12,keyasint"`
}

// Save persists a new circular and its sender/recipient index entries in a
// single transaction. Either everything lands or nothing does.
func (r *CircularRepository) Save(c domain.Circular) error {
	data, err := cbor.Marshal(toDisk(c))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primaryKey(c.ID), data); err != nil {
			return err
		}
		idBytes := []byte(c.ID.String())
		sentKey := fmt.Sprintf("idx:sent:%s:%019d:%s", c.SenderID, c.CreatedAt.UnixNano(), c.ID)
		if err := txn.Set([]byte(sentKey), idBytes); err != nil {
			return err
		}
		for recipient := range c.RecipientSnapshot {
			rcptKey := fmt.Sprintf("idx:rcpt:%s:%019d:%s", recipient, c.CreatedAt.UnixNano(), c.ID)
			if err := txn.Set([]byte(rcptKey), idBytes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CircularRepository) Get(id uuid.UUID) (domain.Circular, error) {
	var c domain.Circular
	err := r.db.View(func(txn *badger.Txn) error {
		loaded, err := getInTxn(txn, id)
		if err != nil {
			return err
		}
		c = loaded
		return nil
	})
	return c, err
}

// Update performs an optimistic read-modify-write on a single circular.
// Badger detects write conflicts at commit; a lost race is retried with a
// fresh read, so concurrent MarkRead calls from different recipients
// commute and duplicate Archive calls collapse to one transition.
//
// A mutation error aborts the transaction: no partial write survives.
func (r *CircularRepository) Update(id uuid.UUID, mutate func(*domain.Circular) error) (domain.Circular, error) {
	var c domain.Circular
	for attempt := 0; ; attempt++ {
		err := r.db.Update(func(txn *badger.Txn) error {
			loaded, err := getInTxn(txn, id)
			if err != nil {
				return err
			}
			if err := mutate(&loaded); err != nil {
				return err
			}
			data, err := cbor.Marshal(toDisk(loaded))
			if err != nil {
				return fmt.Errorf("marshal failed: %w", err)
			}
			if err := txn.Set(primaryKey(id), data); err != nil {
				return err
			}
			c = loaded
			return nil
		})
		if err == badger.ErrConflict && attempt < maxConflictRetries {
			r.log.Debug("Write conflict, retrying", "circular", id, "attempt", attempt+1)
			continue
		}
		return c, err
	}
}

// ListSentBy returns the circulars issued by userID, newest first.
func (r *CircularRepository) ListSentBy(userID string) ([]domain.Circular, error) {
	return r.listByIndex(fmt.Sprintf("idx:sent:%s:", userID))
}

// ListReceivedBy returns the circulars whose frozen snapshot contains
// userID, newest first, regardless of status.
func (r *CircularRepository) ListReceivedBy(userID string) ([]domain.Circular, error) {
	return r.listByIndex(fmt.Sprintf("idx:rcpt:%s:", userID))
}

// ListByStatus walks the primary records and filters. Used by the
// management view only; sender/recipient queries go through the indexes.
func (r *CircularRepository) ListByStatus(status domain.Status) ([]domain.Circular, error) {
	var out []domain.Circular
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("circular:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				c, err := Decode(val)
				if err != nil {
					return err
				}
				if c.Status == status {
					out = append(out, c)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *CircularRepository) listByIndex(prefixStr string) ([]domain.Circular, error) {
	var out []domain.Circular
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then walk backwards
		// so results come out newest first.
		seekKey := append([]byte(prefixStr), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			var id uuid.UUID
			err := it.Item().Value(func(val []byte) error {
				parsed, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				id = parsed
				return nil
			})
			if err != nil {
				return err
			}
			c, err := getInTxn(txn, id)
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func getInTxn(txn *badger.Txn, id uuid.UUID) (domain.Circular, error) {
	item, err := txn.Get(primaryKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Circular{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Circular{}, err
	}
	var c domain.Circular
	err = item.Value(func(val []byte) error {
		decoded, err := Decode(val)
		if err != nil {
			return err
		}
		c = decoded
		return nil
	})
	return c, err
}

func primaryKey(id uuid.UUID) []byte {
	return []byte("circular:" + id.String())
}

// Decode turns a stored value back into the domain entity. Exported for
// the inspect tooling, which reads the database directly.
func Decode(val []byte) (domain.Circular, error) {
	var d diskCircular
	if err := cbor.Unmarshal(val, &d); err != nil {
		return domain.Circular{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	return fromDisk(d)
}

func toDisk(c domain.Circular) diskCircular {
	groups := make([]string, len(c.RecipientGroups))
	for i, g := range c.RecipientGroups {
		groups[i] = string(g)
	}
	return diskCircular{
		ID:              c.ID.String(),
		Title:           c.Title,
		Body:            c.Body,
		SenderID:        c.SenderID,
		SenderName:      c.SenderName,
		SenderRole:      string(c.SenderRole),
		RecipientGroups: groups,
		Recipients:      sortedSet(c.RecipientSnapshot),
		Status:          string(c.Status),
		ReadBy:          sortedSet(c.ReadBy),
		CreatedAt:       c.CreatedAt.UnixNano(),
		UpdatedAt:       c.UpdatedAt.UnixNano(),
	}
}

func fromDisk(d diskCircular) (domain.Circular, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Circular{}, err
	}
	groups := make([]domain.GroupTag, len(d.RecipientGroups))
	for i, g := range d.RecipientGroups {
		groups[i] = domain.GroupTag(g)
	}
	return domain.Circular{
		ID:                id,
		Title:             d.Title,
		Body:              d.Body,
		SenderID:          d.SenderID,
		SenderName:        d.SenderName,
		SenderRole:        domain.Role(d.SenderRole),
		RecipientGroups:   groups,
		RecipientSnapshot: toSet(d.Recipients),
		Status:            domain.Status(d.Status),
		ReadBy:            toSet(d.ReadBy),
		CreatedAt:         time.Unix(0, d.CreatedAt).UTC(),
		UpdatedAt:         time.Unix(0, d.UpdatedAt).UTC(),
	}, nil
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
