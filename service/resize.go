package service

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"shrinker/api/model"
	"shrinker/converter"
	"shrinker/shared/log"
)

// ResizeByDimensions scales img down so it fits within the supplied
// bounds, preserving aspect ratio and never upscaling. A zero bound is
// unconstrained; at least one must be positive. The result is encoded
// in the original format at default quality.
func (i *ImageService) ResizeByDimensions(ctx context.Context, img image.Image, maxWidth, maxHeight int, t converter.Type) (*model.EncodedResult, error) {
	logger := log.LoggerWithTrace(ctx, i.logger)

	resized := fitWithin(img, maxWidth, maxHeight)

	data, err := i.strategy.Apply(t).Encode(ctx, resized, 0)
	if err != nil {
		logger.Error("Error encoding resized image", zap.Error(err))
		return nil, err
	}

	return &model.EncodedResult{
		Data:        data,
		ContentType: t,
		TargetMet:   true,
		Attempts:    1,
	}, nil
}

// ResizeByTargetSize lowers jpeg quality stepwise until the encoded
// buffer fits targetBytes. Pixel dimensions are left alone. When even
// the floor quality is too large, the floor encoding is returned with
// TargetMet false; the caller still gets a valid image. Formats without
// a quality knob are encoded exactly once at defaults.
func (i *ImageService) ResizeByTargetSize(ctx context.Context, img image.Image, targetBytes int64, t converter.Type) (*model.EncodedResult, error) {
	logger := log.LoggerWithTrace(ctx, i.logger)

	encoder := i.strategy.Apply(t)

	if !encoder.SupportsQuality() {
		data, err := encoder.Encode(ctx, img, 0)
		if err != nil {
			logger.Error("Error encoding image", zap.Error(err))
			return nil, err
		}

		return &model.EncodedResult{
			Data:        data,
			ContentType: t,
			TargetMet:   int64(len(data)) <= targetBytes,
			Attempts:    1,
		}, nil
	}

	quality := i.config.QualityStart
	attempts := 0

	var data []byte
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		encoded, err := encoder.Encode(ctx, img, quality)
		if err != nil {
			logger.Error("Error encoding image", zap.Error(err))
			return nil, err
		}
		data = encoded
		attempts++

		if int64(len(data)) <= targetBytes {
			return &model.EncodedResult{
				Data:        data,
				ContentType: t,
				TargetMet:   true,
				Attempts:    attempts,
			}, nil
		}

		if quality <= i.config.QualityFloor {
			break
		}
		quality -= i.config.QualityStep
	}

	logger.Warn("Target size not met at quality floor",
		zap.Int64("target_bytes", targetBytes),
		zap.Int("encoded_bytes", len(data)),
		zap.Int("quality", quality),
		zap.Int("attempts", attempts),
	)

	return &model.EncodedResult{
		Data:        data,
		ContentType: t,
		TargetMet:   false,
		Attempts:    attempts,
	}, nil
}

// fitWithin returns img unchanged when it already satisfies the bounds.
// Otherwise it resamples to the largest size fitting them, aspect ratio
// preserved. The input raster is never mutated.
func fitWithin(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch {
	case maxWidth > 0 && maxHeight > 0:
		if width <= maxWidth && height <= maxHeight {
			return img
		}
		return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	case maxWidth > 0:
		if width <= maxWidth {
			return img
		}
		return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	case maxHeight > 0:
		if height <= maxHeight {
			return img
		}
		return imaging.Resize(img, 0, maxHeight, imaging.Lanczos)
	}

	return img
}
