package directory

import (
	"context"
	"fmt"
	"log/slog"

	"circular-lab/domain"
	"circular-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// BadgerDirectory stores users in BadgerDB.
// Keys:
//
//	user:{id}          -> CBOR-encoded diskUser
//	role:{role}:{id}   -> user id (secondary index for role lookups)
//
// The role index makes LookupUsersByRole a single prefix scan instead of a
// full table walk.
type BadgerDirectory struct {
	db  *badger.DB
	log *slog.Logger
}

type diskUser struct {
	ID   string `cbor:"1,keyasint"`
	Name string `cbor:"2,keyasint"`
	Role string `cbor:"3,keyasint"`
}

func NewBadgerDirectory(db *badger.DB, log *slog.Logger) *BadgerDirectory {
	return &BadgerDirectory{db: db, log: log}
}

// AddUser persists a user and its role index entry in one transaction.
func (d *BadgerDirectory) AddUser(user User) error {
	data, err := cbor.Marshal(diskUser{ID: user.ID, Name: user.Name, Role: string(user.Role)})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return d.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("user:"+user.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(fmt.Sprintf("role:%s:%s", user.Role, user.ID)), []byte(user.ID))
	})
}

func (d *BadgerDirectory) LookupUsersByRole(ctx context.Context, role domain.Role) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ids []string
	err := d.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("role:%s:", role))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("role lookup failed: %w", err)
	}
	return ids, nil
}

func (d *BadgerDirectory) LookupUserName(ctx context.Context, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var u diskUser
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &u)
		})
	})
	if err == badger.ErrKeyNotFound {
		return "", errors.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return u.Name, nil
}
