package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"go.uber.org/zap"

	"shrinker/api/model"
	"shrinker/config"
	"shrinker/converter"
	"shrinker/shared/log"
)

// EncoderSelector maps a content type to the encoder that writes it.
// *converter.Strategy is the production implementation.
type EncoderSelector interface {
	Apply(t converter.Type) converter.Encoder
}

type ImageService struct {
	config *config.Config

	s3       *s3.S3
	strategy EncoderSelector
	logger   *zap.Logger
}

func NewImageService(s3 *s3.S3, c *config.Config, strategy EncoderSelector, logger *zap.Logger) *ImageService {
	return &ImageService{s3: s3, config: c, strategy: strategy, logger: logger}
}

// Process fetches a source image from the bucket and scales it down to
// the bounds of the request, keeping the stored format for the output.
func (i *ImageService) Process(ctx context.Context, params model.ImageRequest) (*model.EncodedResult, error) {
	logger := log.LoggerWithTrace(ctx, i.logger)

	fileKey := fmt.Sprintf("%s/%s", params.EntityID, params.FileID)

	input := &s3.GetObjectInput{
		Bucket: aws.String(i.config.S3Bucket),
		Key:    aws.String(fileKey),
	}

	object, err := i.s3.GetObjectWithContext(ctx, input)
	if err != nil {
		logger.Error("Error fetching object from s3", zap.Error(err))
		return nil, err
	}
	defer object.Body.Close()

	data, err := io.ReadAll(object.Body)
	if err != nil {
		logger.Error("Error reading object body", zap.Error(err))
		return nil, err
	}

	img, t, err := converter.Decode(data)
	if err != nil {
		logger.Error("Error decoding source image", zap.Error(err))
		return nil, err
	}

	return i.ResizeByDimensions(ctx, img, params.Width, params.Height, t)
}
