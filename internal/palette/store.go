package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SourceKey holds the free-text origin of a stored palette.
const SourceKey = "PRIMARY"

// Store persists a palette as KEY=#rrggbb lines.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// LoadResult counts what a decode pass did with each line.
type LoadResult struct {
	Applied int
	Skipped int
	Unknown int
}

func backgroundKey(i int) string {
	return "BG" + strconv.Itoa(i+1)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// oneLine keeps free text on a single config line.
func oneLine(s string) string {
	return lineBreaks.Replace(s)
}

// Encode writes p in config form. Line breaks in name and the source become
// spaces.
func Encode(w io.Writer, p Palette, name string) error {
	source := oneLine(p.Source)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", oneLine(name))
	fmt.Fprintf(bw, "# Auto-generated from %s\n", source)
	for i, c := range p.Background {
		fmt.Fprintf(bw, "%s=%s\n", backgroundKey(i), c.Hex())
	}
	for i, c := range p.Foreground {
		fmt.Fprintf(bw, "%s=%s\n", Role(i).Key(), c.Hex())
	}
	fmt.Fprintf(bw, "%s=%s\n", SourceKey, source)
	return bw.Flush()
}

// Decode reads config lines over the defaults. Lines without '=', comments,
// unknown keys and bad colors leave the defaults untouched.
func Decode(r io.Reader) (Palette, LoadResult, error) {
	p := Default()
	var res LoadResult

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			res.Skipped++
			continue
		}
		key = strings.TrimSpace(key)
		if err := apply(&p, key, val); err != nil {
			if errors.Is(err, errUnknownKey) {
				res.Unknown++
			} else {
				res.Skipped++
			}
			continue
		}
		res.Applied++
	}
	if err := sc.Err(); err != nil {
		return p, res, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}
	return p, res, nil
}

var errUnknownKey = fmt.Errorf("%w: unknown key", ErrMalformedLine)

func apply(p *Palette, key, val string) error {
	if key == SourceKey {
		p.Source = strings.TrimSpace(val)
		return nil
	}

	slot := func() *RGB {
		for i := range p.Background {
			if key == backgroundKey(i) {
				return &p.Background[i]
			}
		}
		for i := range p.Foreground {
			if key == Role(i).Key() {
				return &p.Foreground[i]
			}
		}
		return nil
	}()
	if slot == nil {
		return errUnknownKey
	}

	c, err := ParseHex(val)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedLine, key, err)
	}
	*slot = c
	return nil
}

// Load reads the stored palette. A missing or unreadable file yields
// ErrConfigRead.
func (s *Store) Load() (Palette, LoadResult, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return Default(), LoadResult{}, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}
	defer f.Close()
	return Decode(f)
}

// Save writes p to a temp file beside the target and renames it into place.
func (s *Store) Save(p Palette) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}

	if err := Encode(tmp, p, filepath.Base(s.path)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	return nil
}
