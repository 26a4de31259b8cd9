package event

import (
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	CircularID() uuid.UUID
}

// CircularIssued is emitted once per successful create. Recipients is the
// frozen snapshot so consumers never re-resolve groups.
type CircularIssued struct {
	ID         uuid.UUID
	Title      string
	SenderName string
	SenderRole string
	Recipients []string
	At         time.Time
}

func (e CircularIssued) CircularID() uuid.UUID { return e.ID }

type CircularRead struct {
	ID     uuid.UUID
	UserID string
	At     time.Time
}

func (e CircularRead) CircularID() uuid.UUID { return e.ID }

type CircularArchived struct {
	ID       uuid.UUID
	SenderID string
	At       time.Time
}

func (e CircularArchived) CircularID() uuid.UUID { return e.ID }
