package projection

import (
	"testing"
	"time"

	"circular-lab/domain"

	"github.com/stretchr/testify/require"
)

func circularWith(recipients []string, readers []string) domain.Circular {
	c := domain.NewCircular(
		"Title", "Body", "mgmt-1", "Farid Benali", domain.RoleManagement,
		[]domain.GroupTag{domain.GroupStudents}, recipients,
	)
	for _, r := range readers {
		_ = c.MarkRead(r, time.Now().UTC())
	}
	return c
}

func TestNewReadStats(t *testing.T) {
	tests := []struct {
		name       string
		recipients []string
		readers    []string
		want       ReadStats
	}{
		{
			name:       "nobody read yet",
			recipients: []string{"a", "b", "c"},
			readers:    nil,
			want:       ReadStats{ReadCount: 0, TotalRecipients: 3, Percentage: 0},
		},
		{
			name:       "half read",
			recipients: []string{"a", "b"},
			readers:    []string{"a"},
			want:       ReadStats{ReadCount: 1, TotalRecipients: 2, Percentage: 50},
		},
		{
			name:       "one third rounds down",
			recipients: []string{"a", "b", "c"},
			readers:    []string{"a"},
			want:       ReadStats{ReadCount: 1, TotalRecipients: 3, Percentage: 33},
		},
		{
			name:       "two thirds rounds up",
			recipients: []string{"a", "b", "c"},
			readers:    []string{"a", "b"},
			want:       ReadStats{ReadCount: 2, TotalRecipients: 3, Percentage: 67},
		},
		{
			name:       "everyone read",
			recipients: []string{"a", "b", "c"},
			readers:    []string{"a", "b", "c"},
			want:       ReadStats{ReadCount: 3, TotalRecipients: 3, Percentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := circularWith(tt.recipients, tt.readers)
			require.Equal(t, tt.want, NewReadStats(c))
		})
	}
}

func TestUnreadCount(t *testing.T) {
	req := require.New(t)

	read := circularWith([]string{"student-1", "student-2"}, []string{"student-1"})
	unread := circularWith([]string{"student-1"}, nil)
	notMine := circularWith([]string{"student-2"}, nil)

	req.Equal(1, UnreadCount([]domain.Circular{read, unread, notMine}, "student-1"))
	req.Equal(2, UnreadCount([]domain.Circular{read, unread, notMine}, "student-2"))
	req.Equal(0, UnreadCount(nil, "student-1"))
}

func TestUnreadCount_IncludesArchived(t *testing.T) {
	req := require.New(t)

	archived := circularWith([]string{"student-1"}, nil)
	req.NoError(archived.Archive("mgmt-1", time.Now().UTC()))

	// Archiving removes a circular from default views, not from unread math
	req.Equal(1, UnreadCount([]domain.Circular{archived}, "student-1"))
}

func TestNewUserStats(t *testing.T) {
	req := require.New(t)

	sent := []domain.Circular{
		circularWith([]string{"a"}, nil),
		circularWith([]string{"a"}, nil),
	}
	received := []domain.Circular{
		circularWith([]string{"student-1"}, []string{"student-1"}),
		circularWith([]string{"student-1"}, nil),
		circularWith([]string{"student-1"}, nil),
	}

	stats := NewUserStats(sent, received, "student-1")

	req.Equal(UserStats{SentCount: 2, ReceivedCount: 3, ReadCount: 1, UnreadCount: 2}, stats)
}
