package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeLogoReencodesAsWebp(t *testing.T) {
	out, err := NormalizeLogo(pngFixture(t, 100, 80))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestNormalizeLogoCapsWidth(t *testing.T) {
	out, err := NormalizeLogo(pngFixture(t, 1024, 512))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, maxLogoWidth, img.Bounds().Dx())
	// proporção preservada
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestNormalizeLogoRejectsGarbage(t *testing.T) {
	_, err := NormalizeLogo([]byte("isto não é imagem"))
	assert.Error(t, err)
}
