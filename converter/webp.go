package converter

import (
	"bytes"
	"context"
	"image"

	"github.com/chai2010/webp"
	"go.uber.org/zap"

	"shrinker/shared/log"
)

type Webp struct {
	logger *zap.Logger
}

func mustWebp(logger *zap.Logger) *Webp {
	return &Webp{logger: logger}
}

func (w *Webp) SupportsQuality() bool {
	return false
}

func (w *Webp) Encode(ctx context.Context, img image.Image, _ int) ([]byte, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	logger.Debug("Encoding image to webp")

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		logger.Error("Error encoding image to webp", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
