package metrics

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
)

// DiskUsage tracks the size of the node's state database.
type DiskUsage struct {
	dir    string
	bytes  prometheus.Gauge
	logger log.Logger
}

// NewDiskUsage registers a gauge reporting the size of dir with reg.
func NewDiskUsage(reg prometheus.Registerer, dir string, logger log.Logger) (*DiskUsage, error) {
	d := &DiskUsage{
		dir: dir,
		bytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "framedcoin_disk_space_bytes",
			Help: "Disk space used by the framedcoin state database in bytes",
		}),
		logger: logger.With("module", "disk_space_metrics"),
	}
	if err := reg.Register(d.bytes); err != nil {
		return nil, err
	}
	return d, nil
}

// Run refreshes the gauge every interval until ctx is done.
func (d *DiskUsage) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.update()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.update()
		}
	}
}

func (d *DiskUsage) update() {
	size, err := dirSize(d.dir)
	if err != nil {
		// the directory might not exist yet
		d.logger.Debug("failed to calculate disk space", "dir", d.dir, "error", err)
		d.bytes.Set(0)
		return
	}
	d.bytes.Set(float64(size))
}

func dirSize(dir string) (int64, error) {
	var size int64
	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}
