package converter

import (
	"bytes"
	"context"
	"image"
	"image/gif"

	"go.uber.org/zap"

	"shrinker/shared/log"
)

type Gif struct {
	logger *zap.Logger
}

func mustGif(logger *zap.Logger) *Gif {
	return &Gif{logger: logger}
}

func (w *Gif) SupportsQuality() bool {
	return false
}

func (w *Gif) Encode(ctx context.Context, img image.Image, _ int) ([]byte, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	logger.Debug("Encoding image to gif")

	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		logger.Error("Error encoding image to gif", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
