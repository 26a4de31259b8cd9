package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager()

	mm.IncrIssued()
	mm.IncrIssued()
	mm.IncrArchived()
	mm.IncrReads()
	mm.IncrNotifications()
	mm.IncrDropped()

	stats := mm.GetLatest()
	req.Equal(uint64(2), stats.CircularsIssued)
	req.Equal(uint64(1), stats.CircularsArchived)
	req.Equal(uint64(1), stats.ReadsRecorded)
	req.Equal(uint64(1), stats.NotificationsSent)
	req.Equal(uint64(1), stats.EventsDropped)
}

func TestMonitoringManager_ConcurrentIncrements(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mm.IncrReads()
		}()
	}
	wg.Wait()

	req.Equal(uint64(100), mm.GetLatest().ReadsRecorded)
}

func TestMonitoringManager_ProcessStats(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager()

	mm.ReportProcessStats(12.5, 64<<20)

	stats := mm.GetLatest()
	req.Equal(12.5, stats.CPUPercent)
	req.Equal(uint64(64<<20), stats.RSSBytes)
}

func TestMonitoringManager_AsMap(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager()
	mm.IncrIssued()

	m := mm.AsMap()
	req.Equal(uint64(1), m["Issued"])
	req.Contains(m, "AllocMb")
}
