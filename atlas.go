package tiles

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// DecodeAtlas decodes an atlas image of any registered format into RGBA.
// Rows are flipped so the first row in memory is the bottom of the image,
// which is the order glTexImage2D expects.
func DecodeAtlas(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	return transform.FlipV(img), nil
}

// LoadAtlas opens and decodes the atlas at path. The file is streamed,
// so there is no limit on its size.
func LoadAtlas(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()

	img, err := DecodeAtlas(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
