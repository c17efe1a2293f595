package palette

import "fmt"

const (
	// SampleTarget bounds the sampled grid to roughly this many pixels per axis.
	SampleTarget = 96

	// MinAlpha is the lowest alpha a pixel needs to be counted.
	MinAlpha = 10

	bucketCount = 16 * 16 * 16
	pickCount   = 4
)

// Pixels is a row-major RGBA8 buffer, 4 bytes per pixel, top to bottom.
type Pixels struct {
	Pix    []uint8
	Width  int
	Height int
}

// Validate reports ErrImageEmpty for zero-area images and short buffers.
func (p Pixels) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrImageEmpty, p.Width, p.Height)
	}
	if want := p.Width * p.Height * 4; len(p.Pix) < want {
		return fmt.Errorf("%w: buffer holds %d bytes, want %d", ErrImageEmpty, len(p.Pix), want)
	}
	return nil
}

// Stride returns the sampling step used along both axes.
func (p Pixels) Stride() int {
	return max(1, max(p.Width, p.Height)/SampleTarget)
}

// Bucket is one populated cell of the 4-bit-per-channel histogram.
type Bucket struct {
	Key   int
	Count int
	Mean  RGB
}

// BucketKey quantizes c to its 12-bit histogram key.
func BucketKey(c RGB) int {
	return (int(c.R>>4) << 8) | (int(c.G>>4) << 4) | int(c.B>>4)
}

// Histogram samples p and returns the populated buckets in ascending key order.
// Means are truncated integer averages.
func Histogram(p Pixels) ([]Bucket, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var sums [bucketCount][4]uint64
	stride := p.Stride()
	for y := 0; y < p.Height; y += stride {
		row := p.Pix[y*p.Width*4:]
		for x := 0; x < p.Width; x += stride {
			px := row[x*4 : x*4+4]
			if px[3] < MinAlpha {
				continue
			}
			k := BucketKey(RGB{px[0], px[1], px[2]})
			sums[k][0] += uint64(px[0])
			sums[k][1] += uint64(px[1])
			sums[k][2] += uint64(px[2])
			sums[k][3]++
		}
	}

	var out []Bucket
	for k, s := range sums {
		n := s[3]
		if n == 0 {
			continue
		}
		out = append(out, Bucket{
			Key:   k,
			Count: int(n),
			Mean:  RGB{uint8(s[0] / n), uint8(s[1] / n), uint8(s[2] / n)},
		})
	}
	return out, nil
}

// Rank keeps the four largest buckets, scanning in the given order. A bucket
// displaces a ranked one only with a strictly larger count, so ties keep the
// earlier bucket. The second result is how many slots were filled.
func Rank(buckets []Bucket) ([pickCount]Bucket, int) {
	var picks [pickCount]Bucket
	filled := 0
	for _, b := range buckets {
		for j := 0; j < pickCount; j++ {
			if b.Count > picks[j].Count {
				copy(picks[j+1:], picks[j:pickCount-1])
				picks[j] = b
				if filled < pickCount {
					filled++
				}
				break
			}
		}
	}
	return picks, filled
}

// sortByLuminance orders colors ascending with a pairwise exchange pass.
func sortByLuminance(c *[pickCount]RGB) {
	for i := 0; i < pickCount; i++ {
		for j := i + 1; j < pickCount; j++ {
			if Luminance(c[i]) > Luminance(c[j]) {
				c[i], c[j] = c[j], c[i]
			}
		}
	}
}

// Correct nudges colors that are too dark or too bright to carry text.
func Correct(c RGB) RGB {
	l := Luminance(c)
	switch {
	case l < 0.08:
		return Mix(c, White, 0.5)
	case l > 0.92:
		return Mix(c, Black, 0.4)
	case l < 0.12:
		return Mix(c, White, 0.35)
	}
	return c
}

// Sample extracts four corrected background colors from p, ordered by
// ascending luminance. Missing slots repeat the most populated bucket.
func Sample(p Pixels) ([pickCount]RGB, error) {
	var bg [pickCount]RGB

	buckets, err := Histogram(p)
	if err != nil {
		return bg, err
	}
	picks, filled := Rank(buckets)
	if filled == 0 {
		return bg, ErrNoBuckets
	}
	for i := range picks {
		if i >= filled {
			picks[i] = picks[0]
		}
		bg[i] = picks[i].Mean
	}

	sortByLuminance(&bg)
	for i := range bg {
		bg[i] = Correct(bg[i])
	}
	// correction can lift a dark color past its neighbours
	sortByLuminance(&bg)
	return bg, nil
}
