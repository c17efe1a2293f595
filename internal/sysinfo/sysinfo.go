// Package sysinfo gathers the handful of host facts shown in the stat panel.
// Facts come from gopsutil and the environment; anything that cannot be read
// shows as "unknown" rather than failing the frame.
package sysinfo

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/san-kum/glitch/internal/render"
)

const unknown = "unknown"

var labels = map[string]string{
	"distro": "dis",
	"dis":    "dis",
	"kernel": "ker",
	"ker":    "ker",
	"uptime": "upt",
	"upt":    "upt",
	"mem":    "mem",
	"memory": "mem",
	"host":   "hst",
	"user":   "usr",
	"shell":  "shl",
	"cpu":    "cpu",
	"os":     "os",
}

// Label is the upper-case panel label for key.
func Label(key string) string {
	l, ok := labels[key]
	if !ok {
		l = key
	}
	if len(l) > 7 {
		l = l[:7]
	}
	return strings.ToUpper(l)
}

// Source supplies the raw host readings.
type Source interface {
	HostInfo() (*host.InfoStat, error)
	VirtualMemory() (*mem.VirtualMemoryStat, error)
	CPUInfo() ([]cpu.InfoStat, error)
}

type gopsutil struct{}

func (gopsutil) HostInfo() (*host.InfoStat, error) { return host.Info() }
func (gopsutil) VirtualMemory() (*mem.VirtualMemoryStat, error) { return mem.VirtualMemory() }
func (gopsutil) CPUInfo() ([]cpu.InfoStat, error) { return cpu.Info() }

type Host struct {
	Source Source
	Getenv func(string) string
}

// Local reads the running machine.
func Local() Host {
	return Host{Source: gopsutil{}, Getenv: os.Getenv}
}

func (h Host) env(k string) string {
	if h.Getenv == nil {
		return ""
	}
	return h.Getenv(k)
}

// Collect returns one stat per key, in order. Each reading is taken at most
// once per call.
func (h Host) Collect(keys []string) []render.Stat {
	r := &reading{src: h.Source}
	out := make([]render.Stat, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		out = append(out, render.Stat{Key: k, Label: Label(k), Value: h.value(r, k)})
	}
	return out
}

// Value looks up one fact.
func (h Host) Value(key string) string {
	return h.value(&reading{src: h.Source}, key)
}

func (h Host) value(r *reading, key string) string {
	switch key {
	case "distro", "dis":
		return r.distro()
	case "kernel", "ker":
		if info := r.host(); info != nil {
			return orUnknown(info.KernelVersion)
		}
		return unknown
	case "uptime", "upt":
		if info := r.host(); info != nil {
			return FormatUptime(int64(info.Uptime))
		}
		return unknown
	case "mem", "memory":
		return r.memory()
	case "host":
		if info := r.host(); info != nil {
			return orUnknown(info.Hostname)
		}
		return unknown
	case "user":
		return orUnknown(h.env("USER"))
	case "shell":
		return orUnknown(h.env("SHELL"))
	case "cpu":
		return r.cpu()
	case "os":
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	return ""
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return unknown
	}
	return s
}

// reading memoizes the source calls made while drawing one panel.
type reading struct {
	src Source

	hostDone bool
	hostInfo *host.InfoStat
	memDone  bool
	memInfo  *mem.VirtualMemoryStat
	cpuDone  bool
	cpuInfo  []cpu.InfoStat
}

func (r *reading) host() *host.InfoStat {
	if !r.hostDone && r.src != nil {
		info, err := r.src.HostInfo()
		if err != nil {
			slog.Debug("host info unavailable", "err", err)
		}
		r.hostInfo = info
	}
	r.hostDone = true
	return r.hostInfo
}

func (r *reading) mem() *mem.VirtualMemoryStat {
	if !r.memDone && r.src != nil {
		vm, err := r.src.VirtualMemory()
		if err != nil {
			slog.Debug("memory info unavailable", "err", err)
		}
		r.memInfo = vm
	}
	r.memDone = true
	return r.memInfo
}

func (r *reading) cpus() []cpu.InfoStat {
	if !r.cpuDone && r.src != nil {
		info, err := r.src.CPUInfo()
		if err != nil {
			slog.Debug("cpu info unavailable", "err", err)
		}
		r.cpuInfo = info
	}
	r.cpuDone = true
	return r.cpuInfo
}

// distro is the platform name and version, or GOOS when neither is known.
func (r *reading) distro() string {
	info := r.host()
	if info == nil {
		return runtime.GOOS
	}
	name := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if name == "" {
		return runtime.GOOS
	}
	return name
}

// memory reports used and total memory in GiB. Free counts buffers and free
// swap.
func (r *reading) memory() string {
	vm := r.mem()
	if vm == nil || vm.Total == 0 {
		return unknown
	}
	free := vm.Free + vm.Buffers + vm.SwapFree
	used := int64(vm.Total) - int64(free)
	const gib = 1024 * 1024 * 1024
	return fmt.Sprintf("%.2f GiB / %.2f GiB", float64(used)/gib, float64(vm.Total)/gib)
}

func (r *reading) cpu() string {
	for _, c := range r.cpus() {
		if c.ModelName != "" {
			return strings.TrimSpace(c.ModelName)
		}
	}
	return unknown
}

// FormatUptime renders seconds the way the panel shows them.
func FormatUptime(sec int64) string {
	days := sec / 86400
	hours := (sec % 86400) / 3600
	minutes := (sec % 3600) / 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", sec)
}
