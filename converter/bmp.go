package converter

import (
	"bytes"
	"context"
	"image"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"shrinker/shared/log"
)

type Bmp struct {
	logger *zap.Logger
}

func mustBmp(logger *zap.Logger) *Bmp {
	return &Bmp{logger: logger}
}

func (w *Bmp) SupportsQuality() bool {
	return false
}

func (w *Bmp) Encode(ctx context.Context, img image.Image, _ int) ([]byte, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	logger.Debug("Encoding image to bmp")

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		logger.Error("Error encoding image to bmp", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
