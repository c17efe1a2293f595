package viz

import (
	"fmt"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/glitch/internal/palette"
)

// BucketGraph plots bucket populations ordered from darkest to brightest.
// It returns the empty string when there is nothing to plot.
func BucketGraph(buckets []palette.Bucket, width, height int) string {
	if len(buckets) == 0 {
		return ""
	}
	sorted := make([]palette.Bucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return palette.Luminance(sorted[i].Mean) < palette.Luminance(sorted[j].Mean)
	})

	data := make([]float64, len(sorted))
	for i, b := range sorted {
		data[i] = float64(b.Count)
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(max(height, 2)),
		asciigraph.Width(max(width, 10)),
		asciigraph.Caption(fmt.Sprintf("%d buckets, dark to bright", len(sorted))),
	)
}
