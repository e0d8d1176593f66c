package converter

import (
	"context"
	"image"

	"go.uber.org/zap"
)

// Encoder serializes pixel data into the bytes of one image format.
// Quality is on the 0-100 scale; encoders whose format has no lossy
// quality knob ignore it and report SupportsQuality false, so callers
// can skip quality searches for them.
type Encoder interface {
	Encode(ctx context.Context, img image.Image, quality int) ([]byte, error)
	SupportsQuality() bool
}

type Strategy struct {
	m    map[Type]Encoder
	jpeg Encoder
}

func MustStrategy(logger *zap.Logger) *Strategy {
	jpeg := mustJpeg(logger)

	m := map[Type]Encoder{
		JPEG: jpeg,
		JPG:  jpeg,
		PNG:  mustPng(logger),
		GIF:  mustGif(logger),
		BMP:  mustBmp(logger),
		WEBP: mustWebp(logger),
	}

	return &Strategy{m: m, jpeg: jpeg}
}

// Apply returns the encoder for t. Unknown types get the jpeg encoder
// rather than an error.
func (s *Strategy) Apply(t Type) Encoder {
	if e, ok := s.m[t]; ok {
		return e
	}
	return s.jpeg
}

// Select resolves a raw content-type string to an encoder, falling back
// to jpeg for anything unrecognized.
func (s *Strategy) Select(contentType string) Encoder {
	t, err := MakeFromString(contentType)
	if err != nil {
		return s.jpeg
	}
	return s.Apply(t)
}
