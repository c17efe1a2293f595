package palette

import (
	"fmt"
	"log/slog"
)

// Tier is the fallback level that produced a palette.
type Tier int

const (
	TierImage Tier = iota
	TierConfig
	TierDefault
)

func (t Tier) String() string {
	switch t {
	case TierImage:
		return "image"
	case TierConfig:
		return "config"
	case TierDefault:
		return "default"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Decoder turns an image path into pixels.
type Decoder interface {
	Decode(path string) (Pixels, error)
}

// Options configures Resolve. Zero values skip the corresponding tier.
type Options struct {
	ImagePath string
	Decoder   Decoder
	Store     *Store
	// ReadOnly stops an image-derived palette from being written to Store.
	ReadOnly bool
}

// Result is the outcome of Resolve.
type Result struct {
	Palette Palette
	Tier    Tier
	// Skipped explains each tier that was passed over, as *SourceError.
	Skipped []error
	// Persisted is set when an image palette was written to the store.
	Persisted bool
}

// Resolve walks image, stored config and defaults in order and returns the
// first palette that can be built. It never fails.
func Resolve(opts Options) Result {
	var res Result

	if opts.ImagePath != "" && opts.Decoder != nil {
		p, err := fromImage(opts.Decoder, opts.ImagePath)
		if err == nil {
			res.Palette, res.Tier = p, TierImage
			if opts.Store != nil && !opts.ReadOnly {
				if err := opts.Store.Save(p); err != nil {
					slog.Warn("palette: could not persist colors", "path", opts.Store.Path(), "err", err)
				} else {
					res.Persisted = true
				}
			}
			return res
		}
		slog.Debug("palette: image tier failed", "path", opts.ImagePath, "err", err)
		res.Skipped = append(res.Skipped, &SourceError{Tier: TierImage, Path: opts.ImagePath, Err: err})
	}

	if opts.Store != nil {
		p, lr, err := opts.Store.Load()
		if err == nil {
			slog.Debug("palette: loaded stored colors", "path", opts.Store.Path(), "applied", lr.Applied, "skipped", lr.Skipped+lr.Unknown)
			res.Palette, res.Tier = p, TierConfig
			return res
		}
		res.Skipped = append(res.Skipped, &SourceError{Tier: TierConfig, Path: opts.Store.Path(), Err: err})
	}

	res.Palette, res.Tier = Default(), TierDefault
	return res
}

func fromImage(dec Decoder, path string) (Palette, error) {
	px, err := dec.Decode(path)
	if err != nil {
		return Palette{}, err
	}
	return FromPixels(px, path)
}
