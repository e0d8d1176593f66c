package converter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noisyImage fills a raster with random pixels so lossy encoders have
// something to compress and quality actually moves the output size.
func noisyImage(w, h int) image.Image {
	rnd := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rnd.Intn(256)),
				G: uint8(rnd.Intn(256)),
				B: uint8(rnd.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func TestJpegEncode_QualityAffectsSize(t *testing.T) {
	s := MustStrategy(zap.NewNop())
	e := s.Apply(JPEG)
	img := noisyImage(128, 96)

	low, err := e.Encode(context.Background(), img, 10)
	require.NoError(t, err)
	high, err := e.Encode(context.Background(), img, 90)
	require.NoError(t, err)

	require.NotEmpty(t, low)
	require.NotEmpty(t, high)
	if len(low) >= len(high) {
		t.Fatalf("expected quality 10 smaller than quality 90, got %d >= %d", len(low), len(high))
	}
}

func TestJpegEncode_ZeroQualityUsesDefault(t *testing.T) {
	s := MustStrategy(zap.NewNop())
	e := s.Apply(JPEG)
	img := noisyImage(64, 48)

	byDefault, err := e.Encode(context.Background(), img, 0)
	require.NoError(t, err)
	explicit, err := e.Encode(context.Background(), img, DefaultQuality)
	require.NoError(t, err)

	require.Equal(t, explicit, byDefault)
}

func TestEncode_OutputDecodes(t *testing.T) {
	s := MustStrategy(zap.NewNop())
	img := noisyImage(64, 48)

	for _, typ := range []Type{JPEG, PNG, GIF, BMP, WEBP} {
		t.Run(typ.String(), func(t *testing.T) {
			data, err := s.Apply(typ).Encode(context.Background(), img, 0)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			decoded, _, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, 64, decoded.Bounds().Dx())
			require.Equal(t, 48, decoded.Bounds().Dy())
		})
	}
}

func TestDecode_DetectsType(t *testing.T) {
	img := noisyImage(32, 32)

	var jpegBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, img, nil))
	_, typ, err := Decode(jpegBuf.Bytes())
	require.NoError(t, err)
	require.Equal(t, JPEG, typ)

	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	_, typ, err = Decode(pngBuf.Bytes())
	require.NoError(t, err)
	require.Equal(t, PNG, typ)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	require.ErrorIs(t, err, ErrNotAnImage)
}

func TestDecode_RejectsTruncatedImage(t *testing.T) {
	img := noisyImage(32, 32)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	_, _, err := Decode(buf.Bytes()[:64])
	require.Error(t, err)
}
