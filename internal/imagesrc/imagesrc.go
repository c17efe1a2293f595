// Package imagesrc decodes image files into the RGBA8 buffers the palette
// extractor samples.
package imagesrc

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/san-kum/glitch/internal/palette"
)

// PNGSignature is the 8-byte header every PNG file starts with.
var PNGSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Decoder reads images from disk. It satisfies palette.Decoder.
type Decoder struct{}

func (Decoder) Decode(path string) (palette.Pixels, error) {
	img, err := Open(path)
	if err != nil {
		return palette.Pixels{}, err
	}
	return ToPixels(img), nil
}

// Open decodes the image at path. Failures wrap palette.ErrImageDecode.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", palette.ErrImageDecode, err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes an image from r.
func Read(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", palette.ErrImageDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s image is %dx%d", palette.ErrImageEmpty, format, b.Dx(), b.Dy())
	}
	return img, nil
}

// ToPixels converts img to non-premultiplied RGBA8, origin at the top left.
func ToPixels(img image.Image) palette.Pixels {
	b := img.Bounds()
	dst, ok := img.(*image.NRGBA)
	if !ok || dst.Rect.Min != (image.Point{}) || dst.Stride != b.Dx()*4 {
		dst = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	}
	return palette.Pixels{Pix: dst.Pix, Width: b.Dx(), Height: b.Dy()}
}

// IsPNG reports whether the file at path is readable and carries the PNG
// signature.
func IsPNG(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, len(PNGSignature))
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return bytes.Equal(head, PNGSignature)
}
