package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	maxLogoWidth = 512
	webpQuality  = 80
)

// NormalizeLogo decodifica o que veio do formulário (png/jpeg/webp),
// limita a largura e reencoda em webp para subir leve ao bucket.
func NormalizeLogo(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// tenta webp, que não registra no image.Decode
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode logo: %w", err)
		}
	}

	img = capWidth(img, maxLogoWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

func capWidth(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= max {
		return img
	}

	ratio := float64(max) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, max, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
