package utils

import (
	"log"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type SystemMetrics struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
}

// GetSystemMetrics samples current CPU and memory usage for the health
// endpoint. Failures degrade to zero values rather than failing the check.
func GetSystemMetrics() SystemMetrics {
	var metrics SystemMetrics

	percentages, err := cpu.Percent(0, false)
	if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
	} else if len(percentages) > 0 {
		metrics.CPUPercent = percentages[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Error getting memory usage: %v", err)
	} else {
		metrics.MemoryPercent = vm.UsedPercent
		metrics.MemoryUsedMB = vm.Used / 1024 / 1024
	}

	return metrics
}
