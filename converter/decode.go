package converter

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
)

var ErrNotAnImage = errors.New("data is not a supported image")

// Decode sniffs the content type of data and decodes it into an
// in-memory raster. The detected type is returned alongside so callers
// can re-encode to the same format later.
func Decode(data []byte) (image.Image, Type, error) {
	ct := http.DetectContentType(data)

	t, err := MakeFromString(ct)
	if err != nil {
		return nil, Type{}, ErrNotAnImage
	}

	var img image.Image
	switch t {
	case JPEG, JPG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case PNG:
		img, err = png.Decode(bytes.NewReader(data))
	case GIF:
		img, err = gif.Decode(bytes.NewReader(data))
	case BMP:
		img, err = bmp.Decode(bytes.NewReader(data))
	case WEBP:
		img, err = webp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, t, err
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, t, ErrNotAnImage
	}

	return img, t, nil
}
