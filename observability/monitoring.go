// Package observability aggregates runtime counters for the debug surface.
package observability

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// MonitoringStats is the snapshot handed to the inspect page.
type MonitoringStats struct {
	CircularsIssued   uint64  `json:"circulars_issued"`
	CircularsArchived uint64  `json:"circulars_archived"`
	ReadsRecorded     uint64  `json:"reads_recorded"`
	NotificationsSent uint64  `json:"notifications_sent"`
	EventsDropped     uint64  `json:"events_dropped"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
	CPUPercent        float64 `json:"cpu_percent"`
	RSSBytes          uint64  `json:"rss_bytes"`
}

// MonitoringManager collects counters from the service and workers.
// Counters are atomic; the process stats are refreshed by the heartbeat
// worker and read under a lock.
type MonitoringManager struct {
	issued        uint64
	archived      uint64
	reads         uint64
	notifications uint64
	dropped       uint64

	mu         sync.RWMutex
	cpuPercent float64
	rssBytes   uint64
	lastBeat   time.Time
}

func NewMonitoringManager() *MonitoringManager {
	return &MonitoringManager{lastBeat: time.Now()}
}

func (mm *MonitoringManager) IncrIssued()        { atomic.AddUint64(&mm.issued, 1) }
func (mm *MonitoringManager) IncrArchived()      { atomic.AddUint64(&mm.archived, 1) }
func (mm *MonitoringManager) IncrReads()         { atomic.AddUint64(&mm.reads, 1) }
func (mm *MonitoringManager) IncrNotifications() { atomic.AddUint64(&mm.notifications, 1) }
func (mm *MonitoringManager) IncrDropped()       { atomic.AddUint64(&mm.dropped, 1) }

// ReportProcessStats is called by the heartbeat worker.
func (mm *MonitoringManager) ReportProcessStats(cpuPercent float64, rssBytes uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.cpuPercent = cpuPercent
	mm.rssBytes = rssBytes
	mm.lastBeat = time.Now()
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	mm.mu.RLock()
	cpu, rss := mm.cpuPercent, mm.rssBytes
	mm.mu.RUnlock()

	return MonitoringStats{
		CircularsIssued:   atomic.LoadUint64(&mm.issued),
		CircularsArchived: atomic.LoadUint64(&mm.archived),
		ReadsRecorded:     atomic.LoadUint64(&mm.reads),
		NotificationsSent: atomic.LoadUint64(&mm.notifications),
		EventsDropped:     atomic.LoadUint64(&mm.dropped),
		AllocMemMb:        mem.Alloc / 1024 / 1024,
		NumGC:             mem.NumGC,
		CPUPercent:        cpu,
		RSSBytes:          rss,
	}
}

// AsMap feeds the debug server's stats provider.
func (mm *MonitoringManager) AsMap() map[string]any {
	s := mm.GetLatest()
	return map[string]any{
		"Issued":        s.CircularsIssued,
		"Archived":      s.CircularsArchived,
		"Reads":         s.ReadsRecorded,
		"Notifications": s.NotificationsSent,
		"Dropped":       s.EventsDropped,
		"AllocMb":       s.AllocMemMb,
		"NumGC":         s.NumGC,
		"CPU%":          s.CPUPercent,
	}
}
