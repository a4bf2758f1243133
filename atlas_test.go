package tiles_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/go-theft-auto/tiles"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// twoRowImage is 3x2 with a red top row and a blue bottom row.
func twoRowImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func TestDecodeAtlasFlipsRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRowImage()))

	img, err := tiles.DecodeAtlas(&buf)
	require.NoError(t, err)

	assert.Equal(t, image.Pt(3, 2), img.Rect.Size())
	assert.Equal(t, blue, img.RGBAAt(0, 0), "first row in memory is the bottom of the image")
	assert.Equal(t, red, img.RGBAAt(2, 1))
	assert.Len(t, img.Pix, 3*2*4)
}

func TestDecodeAtlasBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, twoRowImage()))

	img, err := tiles.DecodeAtlas(&buf)
	require.NoError(t, err)
	assert.Equal(t, blue, img.RGBAAt(1, 0))
}

func TestDecodeAtlasInvalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("definitely not an image"),
		"truncated": pngBytes(t)[:20],
	} {
		img, err := tiles.DecodeAtlas(bytes.NewReader(data))
		assert.Error(t, err, name)
		assert.Nil(t, img, name)
	}
}

func TestLoadAtlas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0o644))

	img, err := tiles.LoadAtlas(path)
	require.NoError(t, err)
	assert.Equal(t, blue, img.RGBAAt(0, 0))
}

func TestLoadAtlasLargeFile(t *testing.T) {
	// Far beyond any fixed read buffer.
	big := image.NewRGBA(image.Rect(0, 0, 512, 512))
	rand.New(rand.NewSource(1)).Read(big.Pix)
	for i := 3; i < len(big.Pix); i += 4 {
		big.Pix[i] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, big))
	require.Greater(t, buf.Len(), 64*1024)

	path := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := tiles.LoadAtlas(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(512, 512), img.Rect.Size())
	assert.Equal(t, big.RGBAAt(10, 511), img.RGBAAt(10, 0))
}

func TestLoadAtlasMissing(t *testing.T) {
	_, err := tiles.LoadAtlas(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRowImage()))
	return buf.Bytes()
}
