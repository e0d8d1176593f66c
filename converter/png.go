package converter

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"go.uber.org/zap"

	"shrinker/shared/log"
)

type Png struct {
	logger *zap.Logger
}

func mustPng(logger *zap.Logger) *Png {
	return &Png{logger: logger}
}

func (w *Png) SupportsQuality() bool {
	return false
}

func (w *Png) Encode(ctx context.Context, img image.Image, _ int) ([]byte, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	logger.Debug("Encoding image to png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		logger.Error("Error encoding image to png", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
