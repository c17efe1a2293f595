package config

import "sort"

var Presets = map[string]*Config{
	"calm": {
		Noise: "drift", Mask: "ellipse", SpeedMs: 120, DurationMs: 3000,
	},
	"storm": {
		Noise: "storm", Mask: "wave", SpeedMs: 30, DurationMs: 2000,
	},
	"matrix": {
		Noise: "matrix", Mask: "rect", SpeedMs: 40, DurationMs: 2500,
	},
	"pulse": {
		Noise: "pulse", Char: "█", Mask: "pill", SpeedMs: 60,
	},
	"still": {
		Noise: "default", Once: true,
	},
	"fetch": {
		Stats: []string{"user", "host", "distro", "kernel", "uptime", "mem", "shell", "cpu"},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Stats = append([]string(nil), p.Stats...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
