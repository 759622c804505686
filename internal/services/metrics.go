package services

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

type MetricSample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	ProcessRSSBytes   int64     `json:"processRssBytes"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
}

// CaptureMetrics samples process and host resource usage and persists the
// snapshot for the dashboard history endpoint.
func CaptureMetrics(db *sqlx.DB, diskPath string) (MetricSample, error) {
	proc, _ := process.NewProcess(int32(os.Getpid()))
	memStat, _ := mem.VirtualMemory()
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, _ = disk.Usage("/")
	}
	processRSS := int64(0)
	processCPU := float64(0)
	if proc != nil {
		rss, _ := proc.MemoryInfo()
		if rss != nil {
			processRSS = int64(rss.RSS)
		}
		cpuPerc, _ := proc.CPUPercent()
		processCPU = cpuPerc / 100.0
	}
	sysCPU, _ := cpu.Percent(0, false)
	sysCPUValue := 0.0
	if len(sysCPU) > 0 {
		sysCPUValue = sysCPU[0] / 100.0
	}
	sample := MetricSample{
		CapturedAt:        time.Now().UTC(),
		ProcessRSSBytes:   processRSS,
		SystemMemoryTotal: int64(memStat.Total),
		SystemMemoryUsed:  int64(memStat.Total - memStat.Available),
		DiskTotalBytes:    int64(diskStat.Total),
		DiskUsedBytes:     int64(diskStat.Used),
		ProcessCpuLoad:    processCPU,
		SystemCpuLoad:     sysCPUValue,
	}

	_, err = db.Exec(`
INSERT INTO server_metric_samples (
  id, captured_at, process_rss_bytes, system_memory_total_bytes,
  system_memory_used_bytes, disk_total_bytes, disk_used_bytes,
  process_cpu_load, system_cpu_load
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, uuid.NewString(), sample.CapturedAt, sample.ProcessRSSBytes, sample.SystemMemoryTotal,
		sample.SystemMemoryUsed, sample.DiskTotalBytes, sample.DiskUsedBytes,
		sample.ProcessCpuLoad, sample.SystemCpuLoad)
	if err != nil {
		return MetricSample{}, err
	}
	return sample, nil
}

// LatestMetrics returns up to limit samples, oldest first.
func LatestMetrics(db *sqlx.DB, limit int) ([]MetricSample, error) {
	type row struct {
		CapturedAt        time.Time `db:"captured_at"`
		ProcessRSSBytes   int64     `db:"process_rss_bytes"`
		SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
		SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
		DiskTotalBytes    int64     `db:"disk_total_bytes"`
		DiskUsedBytes     int64     `db:"disk_used_bytes"`
		ProcessCpuLoad    float64   `db:"process_cpu_load"`
		SystemCpuLoad     float64   `db:"system_cpu_load"`
	}
	rows := []row{}
	if err := db.Select(&rows, `
SELECT captured_at, process_rss_bytes, system_memory_total_bytes,
       system_memory_used_bytes, disk_total_bytes, disk_used_bytes,
       process_cpu_load, system_cpu_load
FROM server_metric_samples
ORDER BY captured_at DESC
LIMIT $1
`, limit); err != nil {
		return nil, err
	}
	items := make([]MetricSample, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		items = append(items, MetricSample{
			CapturedAt:        rows[i].CapturedAt,
			ProcessRSSBytes:   rows[i].ProcessRSSBytes,
			SystemMemoryTotal: rows[i].SystemMemoryTotal,
			SystemMemoryUsed:  rows[i].SystemMemoryUsed,
			DiskTotalBytes:    rows[i].DiskTotalBytes,
			DiskUsedBytes:     rows[i].DiskUsedBytes,
			ProcessCpuLoad:    rows[i].ProcessCpuLoad,
			SystemCpuLoad:     rows[i].SystemCpuLoad,
		})
	}
	return items, nil
}

// MetricsHub fans captured samples out to connected dashboard sockets.
type MetricsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan MetricSample
}

func NewMetricsHub() *MetricsHub {
	return &MetricsHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan MetricSample, 16),
	}
}

func (h *MetricsHub) Run(ctx context.Context) {
	for {
		select {
		case sample := <-h.ch:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.WriteJSON(sample)
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// Broadcast never blocks; a slow hub drops the sample.
func (h *MetricsHub) Broadcast(sample MetricSample) {
	select {
	case h.ch <- sample:
	default:
	}
}

func (h *MetricsHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *MetricsHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
