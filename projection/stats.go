// Package projection derives read-state views from circulars.
// Pure computations only; no storage or event handling here.
package projection

import (
	"math"

	"circular-lab/domain"
)

// ReadStats is the sent-view summary for a single circular.
type ReadStats struct {
	ReadCount       int `json:"readCount"`
	TotalRecipients int `json:"totalRecipients"`
	Percentage      int `json:"percentage"`
}

// NewReadStats computes read counts and a rounded percentage. Creation
// rejects empty recipient sets, so TotalRecipients is positive for every
// persisted circular; the zero guard only covers synthetic values.
func NewReadStats(c domain.Circular) ReadStats {
	stats := ReadStats{
		ReadCount:       c.ReadCount(),
		TotalRecipients: c.RecipientCount(),
	}
	if stats.TotalRecipients > 0 {
		stats.Percentage = int(math.Round(100 * float64(stats.ReadCount) / float64(stats.TotalRecipients)))
	}
	return stats
}

// UnreadCount counts the circulars userID received but has not read.
// Archive-inclusive: an unread archived circular still counts.
func UnreadCount(circulars []domain.Circular, userID string) int {
	count := 0
	for i := range circulars {
		if circulars[i].UnreadBy(userID) {
			count++
		}
	}
	return count
}

// UserStats is the per-user dashboard summary.
type UserStats struct {
	SentCount     int `json:"sentCount"`
	ReceivedCount int `json:"receivedCount"`
	ReadCount     int `json:"readCount"`
	UnreadCount   int `json:"unreadCount"`
}

func NewUserStats(sent, received []domain.Circular, userID string) UserStats {
	unread := UnreadCount(received, userID)
	return UserStats{
		SentCount:     len(sent),
		ReceivedCount: len(received),
		ReadCount:     len(received) - unread,
		UnreadCount:   unread,
	}
}
