// Package variant manages a directory of <noise-name>.png images. Each
// image pairs a noise set with the picture shown beside it and seeds the
// palette for runs that use it.
package variant

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"

	"github.com/san-kum/glitch/internal/imagesrc"
	"github.com/san-kum/glitch/internal/noise"
)

// ErrUnknownNoise is returned when an image is imported under a name that is
// not in the noise catalog.
var ErrUnknownNoise = errors.New("variant: name is not a noise set")

// Dir is a variants directory.
type Dir struct {
	Path string
}

func New(path string) Dir {
	return Dir{Path: path}
}

// ImagePath is where the variant for name lives.
func (d Dir) ImagePath(name string) string {
	return filepath.Join(d.Path, name+".png")
}

// Has reports whether name has a readable PNG.
func (d Dir) Has(name string) bool {
	if d.Path == "" || name == "" {
		return false
	}
	return imagesrc.IsPNG(d.ImagePath(name))
}

// Candidates lists catalog names that have a variant, in catalog order.
func (d Dir) Candidates() []string {
	var out []string
	for _, name := range noise.Names() {
		if d.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// Selection is the noise name and image chosen for a run.
type Selection struct {
	Noise string
	Image string
	// Locked is set when the noise name must not be re-picked.
	Locked bool
}

// Ranger draws a uniform index in [0, n).
type Ranger interface {
	Range(n int) int
}

// Select resolves the run's variant. A forced variant with an image wins
// and also names the noise. A forced noise only attaches its own image.
// Otherwise one variant is drawn at random from those on disk.
func (d Dir) Select(forcedVariant, forcedNoise string, r Ranger) Selection {
	if forcedVariant != "" && d.Has(forcedVariant) {
		return Selection{Noise: forcedVariant, Image: d.ImagePath(forcedVariant), Locked: true}
	}

	if forcedNoise != "" {
		sel := Selection{Noise: forcedNoise, Locked: true}
		if d.Has(forcedNoise) {
			sel.Image = d.ImagePath(forcedNoise)
		}
		return sel
	}

	candidates := d.Candidates()
	if len(candidates) == 0 {
		return Selection{}
	}
	choice := candidates[r.Range(len(candidates))]
	return Selection{Noise: choice, Image: d.ImagePath(choice), Locked: true}
}

// ImportOptions shapes an imported image.
type ImportOptions struct {
	// MaxSize downsizes the square to at most this many pixels per side.
	MaxSize int
	// Circle clears everything outside the inscribed circle.
	Circle bool
}

// Import center-crops src to a square and stores it as the variant for name.
func (d Dir) Import(src, name string, opts ImportOptions) (string, error) {
	if noise.Index(name) < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownNoise, name)
	}
	img, err := imagesrc.Open(src)
	if err != nil {
		return "", err
	}

	out := Square(img, opts.MaxSize)
	if opts.Circle {
		out = CircleMask(out)
	}

	if err := os.MkdirAll(d.Path, 0755); err != nil {
		return "", err
	}
	dst := d.ImagePath(name)
	if err := writePNG(dst, out); err != nil {
		return "", err
	}
	slog.Debug("variant: imported", "src", src, "dst", dst, "size", out.Bounds().Dx())
	return dst, nil
}

// Square crops img to its centered square, then shrinks it to maxSize when
// maxSize is positive and smaller.
func Square(img image.Image, maxSize int) *image.NRGBA {
	b := img.Bounds()
	size := min(b.Dx(), b.Dy())

	g := gift.New(gift.CropToSize(size, size, gift.CenterAnchor))
	if maxSize > 0 && size > maxSize {
		g.Add(gift.Resize(maxSize, maxSize, gift.LanczosResampling))
	}
	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst
}

type circle struct {
	size int
}

func (c circle) ColorModel() color.Model { return color.AlphaModel }

func (c circle) Bounds() image.Rectangle { return image.Rect(0, 0, c.size, c.size) }

func (c circle) At(x, y int) color.Color {
	r := float64(c.size) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// CircleMask keeps only the circle inscribed in a square image.
func CircleMask(img *image.NRGBA) *image.NRGBA {
	size := img.Bounds().Dx()
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(dst, dst.Bounds(), img, img.Bounds().Min, circle{size: size}, image.Point{}, draw.Src)
	return dst
}

func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Prune deletes all but the newest keep PNGs and returns what it removed.
func (d Dir) Prune(keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, err
	}

	type file struct {
		path string
		mod  int64
	}
	var files []file
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, file{filepath.Join(d.Path, e.Name()), info.ModTime().UnixNano()})
	}
	if len(files) <= keep {
		return nil, nil
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].mod != files[j].mod {
			return files[i].mod < files[j].mod
		}
		return files[i].path < files[j].path
	})

	var removed []string
	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(f.path); err != nil {
			return removed, err
		}
		removed = append(removed, f.path)
	}
	return removed, nil
}
