// Package domain contains core concepts of the circular system.
// This file defines the Circular entity and its lifecycle rules.
// No storage, network, or UI logic should be added here.
package domain

import (
	"time"

	"circular-lab/errors"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a circular. DRAFT exists in the data
// shape for forward compatibility; no operation produces or accepts it.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
	StatusDraft    Status = "DRAFT"
)

// Circular is a broadcast announcement from one sender to a set of
// recipients frozen at creation time.
//
// RecipientSnapshot is never mutated after creation. ReadBy only grows and
// stays a subset of RecipientSnapshot.
type Circular struct {
	ID                uuid.UUID
	Title             string
	Body              string
	SenderID          string
	SenderName        string
	SenderRole        Role
	RecipientGroups   []GroupTag
	RecipientSnapshot map[string]struct{}
	Status            Status
	ReadBy            map[string]struct{}
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCircular builds an ACTIVE circular with an empty read set.
// Inputs are assumed validated and resolved by the service layer.
func NewCircular(title, body, senderID, senderName string, senderRole Role,
	groups []GroupTag, recipients []string) Circular {
	snapshot := make(map[string]struct{}, len(recipients))
	for _, id := range recipients {
		snapshot[id] = struct{}{}
	}
	now := time.Now().UTC()
	return Circular{
		ID:                uuid.New(),
		Title:             title,
		Body:              body,
		SenderID:          senderID,
		SenderName:        senderName,
		SenderRole:        senderRole,
		RecipientGroups:   groups,
		RecipientSnapshot: snapshot,
		Status:            StatusActive,
		ReadBy:            map[string]struct{}{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (c *Circular) IsRecipient(userID string) bool {
	_, ok := c.RecipientSnapshot[userID]
	return ok
}

func (c *Circular) IsReadBy(userID string) bool {
	_, ok := c.ReadBy[userID]
	return ok
}

// MarkRead inserts userID into the read set. Set semantics: a second call is
// a no-op, not an error. Archived circulars stay markable.
func (c *Circular) MarkRead(userID string, at time.Time) error {
	if !c.IsRecipient(userID) {
		return errors.ErrNotRecipient
	}
	if c.IsReadBy(userID) {
		return nil
	}
	if c.ReadBy == nil {
		c.ReadBy = map[string]struct{}{}
	}
	c.ReadBy[userID] = struct{}{}
	c.UpdatedAt = at
	return nil
}

// Archive transitions ACTIVE → ARCHIVED. One-way: archiving twice yields
// ErrAlreadyArchived and leaves the entity untouched.
func (c *Circular) Archive(requesterID string, at time.Time) error {
	if c.SenderID != requesterID {
		return errors.ErrNotOwner
	}
	if c.Status == StatusArchived {
		return errors.ErrAlreadyArchived
	}
	c.Status = StatusArchived
	c.UpdatedAt = at
	return nil
}

// Recipients returns the snapshot as a slice. Order is unspecified.
func (c *Circular) Recipients() []string {
	out := make([]string, 0, len(c.RecipientSnapshot))
	for id := range c.RecipientSnapshot {
		out = append(out, id)
	}
	return out
}

func (c *Circular) ReadCount() int       { return len(c.ReadBy) }
func (c *Circular) RecipientCount() int  { return len(c.RecipientSnapshot) }
func (c *Circular) UnreadBy(id string) bool {
	return c.IsRecipient(id) && !c.IsReadBy(id)
}
