package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const thumbWidth = 320

// Thumbnail decodes a jpg/png upload and re-encodes a width-bounded webp
// copy for listing pages. Source images narrower than the bound are kept
// at their own size.
func Thumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w > thumbWidth {
		h = h * thumbWidth / w
		w = thumbWidth
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// ThumbName derives the stored thumbnail name from the original stored
// name: menuimg-<uuid>.jpg -> menuimg-<uuid>.webp.
func ThumbName(storedName string) string {
	for i := len(storedName) - 1; i >= 0; i-- {
		if storedName[i] == '.' {
			return storedName[:i] + ".webp"
		}
	}
	return storedName + ".webp"
}
