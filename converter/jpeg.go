package converter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	"go.uber.org/zap"

	"shrinker/shared/log"
)

// DefaultQuality is used when the caller does not ask for a specific
// jpeg quality.
const DefaultQuality = 90

type Jpeg struct {
	logger *zap.Logger
}

func mustJpeg(logger *zap.Logger) *Jpeg {
	return &Jpeg{logger: logger}
}

func (w *Jpeg) SupportsQuality() bool {
	return true
}

func (w *Jpeg) Encode(ctx context.Context, img image.Image, quality int) ([]byte, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)

	if quality <= 0 {
		quality = DefaultQuality
	}
	if quality > 100 {
		quality = 100
	}

	logger.Debug(fmt.Sprintf("Encoding image to jpeg with quality: %d", quality))

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		logger.Error("Error encoding image to jpeg", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
