package render

import (
	"strings"

	"github.com/san-kum/glitch/internal/imagesrc"
)

const (
	// ImageCols is the nominal width of a displayed image in cells.
	ImageCols = 18

	// ImagePad is the blank margin on each side of the image lane.
	ImagePad = 1

	// FrameTop is the 1-based terminal row the panel starts on.
	FrameTop = 1
)

// Image is a PNG the terminal will draw beside the noise column.
type Image struct {
	Path string
}

// Placement tells an image transport where to draw. This package never sends
// pixels to the terminal: the lane only reserves the disc, and the caller's
// transport, if any, draws the image at this position. Without one the disc
// stays empty.
type Placement struct {
	Path string
	Row  int
	Col  int
	Cols int
	Rows int
}

// Placement anchors the image in the lane for a panel of rows lines. It only
// computes the position; nothing is drawn.
func (img *Image) Placement(rows int) Placement {
	return Placement{
		Path: img.Path,
		Row:  FrameTop,
		Col:  ShapeCols + ImagePad + 1,
		Cols: ImageCols,
		Rows: max(rows, 1),
	}
}

// SupportsImages reports whether the terminal advertises the kitty graphics
// protocol. getenv is usually os.Getenv.
func SupportsImages(getenv func(string) string) bool {
	term := getenv("TERM")
	for _, name := range []string{"kitty", "ghostty", "wezterm"} {
		if strings.Contains(term, name) {
			return true
		}
	}
	prog := getenv("TERM_PROGRAM")
	for _, name := range []string{"Ghostty", "WezTerm", "kitty"} {
		if strings.Contains(prog, name) {
			return true
		}
	}
	return getenv("GLITCH_FORCE_KITTY") != ""
}

// DetectImage returns the image to display, or nil when the terminal cannot
// show it or path is not a readable PNG.
func DetectImage(path string, getenv func(string) string) *Image {
	if path == "" || !SupportsImages(getenv) || !imagesrc.IsPNG(path) {
		return nil
	}
	return &Image{Path: path}
}
