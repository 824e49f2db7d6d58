// Package procstat reports the memory footprint of the running process.
package procstat

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/process"
)

// Snapshot is the memory usage of one process.
type Snapshot struct {
	PID int32
	RSS uint64
	VMS uint64
}

// Current samples the calling process.
func Current(ctx context.Context) (Snapshot, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot get process %d: %w", pid, err)
	}
	mem, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read memory of process %d: %w", pid, err)
	}
	return Snapshot{PID: pid, RSS: mem.RSS, VMS: mem.VMS}, nil
}

func (s Snapshot) String() string {
	return fmt.Sprintf("pid=%d rss=%s vms=%s",
		s.PID, units.BytesSize(float64(s.RSS)), units.BytesSize(float64(s.VMS)))
}
