//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_notification_repository.go -package=mocks
package notifications

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Notification is the per-recipient trace of an issued circular.
type Notification struct {
	ID         uuid.UUID
	UserID     string
	CircularID uuid.UUID
	Title      string
	Message    string
	CreatedAt  time.Time
}

type INotificationRepository interface {
	Store(n Notification) error
	ListForUser(userID string, limit int) ([]Notification, error)
}

// NotificationRepository persists notifications under
// "notif:{user}:{ts_padded}:{id}" so a reverse prefix scan yields a user's
// feed newest first.
type NotificationRepository struct {
	db *badger.DB
}

type diskNotification struct {
	ID         string `cbor:"1,keyasint"`
	UserID     string `cbor:"2,keyasint"`
	CircularID string `cbor:"3,keyasint"`
	Title      string `cbor:"4,keyasint"`
	Message    string `cbor:"5,keyasint"`
	CreatedAt  int64  `cbor:"6,keyasint"`
}

func NewNotificationRepository(db *badger.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Store(n Notification) error {
	key := fmt.Sprintf("notif:%s:%019d:%s", n.UserID, n.CreatedAt.UnixNano(), n.ID)
	data, err := cbor.Marshal(diskNotification{
		ID:         n.ID.String(),
		UserID:     n.UserID,
		CircularID: n.CircularID.String(),
		Title:      n.Title,
		Message:    n.Message,
		CreatedAt:  n.CreatedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (r *NotificationRepository) ListForUser(userID string, limit int) ([]Notification, error) {
	var out []Notification
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("notif:%s:", userID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append([]byte(prefixStr), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(out) == limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var d diskNotification
				if err := cbor.Unmarshal(val, &d); err != nil {
					return err
				}
				n, err := fromDiskNotification(d)
				if err != nil {
					return err
				}
				out = append(out, n)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

func fromDiskNotification(d diskNotification) (Notification, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Notification{}, err
	}
	circularID, err := uuid.Parse(d.CircularID)
	if err != nil {
		return Notification{}, err
	}
	return Notification{
		ID:         id,
		UserID:     d.UserID,
		CircularID: circularID,
		Title:      d.Title,
		Message:    d.Message,
		CreatedAt:  time.Unix(0, d.CreatedAt).UTC(),
	}, nil
}
