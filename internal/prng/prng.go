// Package prng implements the xorshift64* generator that drives every
// random choice in a render: mask shape, noise set, variant image and
// per-cell glyphs.
//
// The generator is deterministic for a given seed and is not safe for
// concurrent use. It is not a cryptographic source; Fill prefers the
// operating system and only falls back to the generator when that fails.
package prng

import (
	"crypto/rand"
	"io"
	"log/slog"
)

const (
	// InitialState is the state of a freshly constructed generator.
	InitialState uint64 = 0x9e3779b97f4a7c15

	// ZeroSeedSubstitute replaces a zero seed so the state never collapses.
	ZeroSeedSubstitute uint64 = 0xfeedbeefcafef00d

	multiplier uint64 = 0x2545F4914F6CDD1D
)

// Rand is a xorshift64* generator.
type Rand struct {
	state uint64
}

// New returns a generator in the fixed initial state.
func New() *Rand {
	return &Rand{state: InitialState}
}

// NewSeeded returns a generator seeded with v.
func NewSeeded(v uint64) *Rand {
	r := New()
	r.Seed(v)
	return r
}

// State returns the raw 64-bit state.
func (r *Rand) State() uint64 {
	return r.state
}

func (r *Rand) step() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x
}

// Seed mixes v into the current state and advances once.
// A zero v is replaced by ZeroSeedSubstitute.
func (r *Rand) Seed(v uint64) {
	if v == 0 {
		v = ZeroSeedSubstitute
	}
	r.state ^= v
	r.step()
}

// Uint32 advances the state and returns the high 32 bits of the scrambled product.
func (r *Rand) Uint32() uint32 {
	x := r.step()
	return uint32((x * multiplier) >> 32)
}

// Range returns a value in [0, n). It returns 0 when n <= 0.
// The modulo reduction is slightly biased for n that do not divide 2^32.
func (r *Rand) Range(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint32() % uint32(n))
}

// FillInsecure writes generator output into buf, one byte per draw.
// The bytes are predictable and must not be used for secrets.
func (r *Rand) FillInsecure(buf []byte) {
	for i := range buf {
		buf[i] = byte(r.Uint32() & 0xFF)
	}
}

// Fill reads len(buf) bytes from the system entropy source. When that read
// fails the buffer is filled from the generator instead and secure is false.
func (r *Rand) Fill(buf []byte) (secure bool) {
	return r.fillFrom(rand.Reader, buf)
}

func (r *Rand) fillFrom(src io.Reader, buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	_, err := io.ReadFull(src, buf)
	if err == nil {
		return true
	}
	slog.Debug("prng: system entropy unavailable, using generator bytes", "err", err, "n", len(buf))
	r.FillInsecure(buf)
	return false
}
