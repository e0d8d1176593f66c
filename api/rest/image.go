package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shrinker/api/model"
	"shrinker/config"
	"shrinker/converter"
	"shrinker/service"
	"shrinker/shared/log"
)

type ImageController struct {
	cfg      *config.Config
	service  *service.ImageService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewImageController(app *fiber.App, cfg *config.Config, service *service.ImageService, validate *validator.Validate, logger *zap.Logger) *ImageController {
	i := &ImageController{cfg: cfg, service: service, validate: validate, logger: logger}

	app.Post("/resize", i.Resize)
	app.Get("/images/:entity/:file/:width/:height", i.Process)

	return i
}

// Resize an uploaded image
//
//	@Summary		Resize an uploaded image to fit bounds or a byte budget
//	@Description	Accepts a multipart upload and either pixel bounds (width/height) or a target byte size. Output keeps the uploaded format.
//	@Tags			image
//	@Accept			multipart/form-data
//	@Produce		image/jpeg,image/png,image/gif,image/bmp,image/webp
//	@Param			file	formData	file	true	"Image file"
//	@Param			width	query		int		false	"Max width in pixels"
//	@Param			height	query		int		false	"Max height in pixels"
//	@Param			size	query		int		false	"Target size in bytes"
//	@Success		200		{file}		file	"Returns the resized image"
//	@Router			/resize [post]
func (i *ImageController) Resize(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second*30)
	defer cancel()
	logger := log.LoggerWithTrace(ctx, i.logger)

	params := &model.ResizeRequest{}

	if err := c.QueryParser(params); err != nil {
		logger.Error("Error parsing params", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid resize parameters")
	}

	if err := i.validate.Struct(params); err != nil {
		logger.Error("Invalid resize parameters", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "resize parameters out of range")
	}

	if !params.SizeMode() && !params.DimensionMode() {
		return fiber.NewError(fiber.StatusBadRequest, "width, height or size is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Error("Missing file in form", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	if fileHeader.Size > i.cfg.MaxUploadBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Error opening uploaded file", zap.Error(err))
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Error reading uploaded file", zap.Error(err))
		return err
	}

	img, t, err := converter.Decode(data)
	if err != nil {
		logger.Error("Error decoding uploaded image", zap.Error(err))
		if errors.Is(err, converter.ErrNotAnImage) {
			return fiber.NewError(fiber.StatusBadRequest, "unsupported image format")
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid image")
	}

	logger.Debug(fmt.Sprintf("Resizing %s upload with params: %++v", t, params))

	var result *model.EncodedResult
	if params.SizeMode() {
		result, err = i.service.ResizeByTargetSize(ctx, img, params.TargetSize, t)
	} else {
		result, err = i.service.ResizeByDimensions(ctx, img, params.Width, params.Height, t)
	}
	if err != nil {
		logger.Error("Error resizing image", zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, result.ContentType.String())
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(result.Data)))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", fileHeader.Filename))

	return c.Send(result.Data)
}

// Process image from storage
//
//	@Summary		Resize a stored image to fit bounds
//	@Description	Fetches an object from the bucket and scales it down to the given width/height bounds, keeping its format.
//	@Tags			image
//	@Produce		image/jpeg,image/png,image/gif,image/bmp,image/webp
//	@Param			entity	path	string	true	"Entity"
//	@Param			file	path	string	true	"File name"
//	@Param			width	path	int		true	"Max width, 0 for unconstrained"
//	@Param			height	path	int		true	"Max height, 0 for unconstrained"
//	@Success		200		{file}	file	"Returns the resized image"
//	@Router			/images/{entity}/{file}/{width}/{height} [get]
func (i *ImageController) Process(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second*10)
	defer cancel()
	logger := log.LoggerWithTrace(ctx, i.logger)

	params := &model.ImageRequest{}

	if err := c.ParamsParser(params); err != nil {
		logger.Error("Error parsing params", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid path parameters")
	}

	if err := i.validate.Struct(params); err != nil {
		logger.Error("Invalid path parameters", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "path parameters out of range")
	}

	if params.Width == 0 && params.Height == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "width or height is required")
	}

	logger.Debug(fmt.Sprintf("Processing stored image with params: %++v", params))

	result, err := i.service.Process(ctx, *params)
	if err != nil {
		logger.Error("Error processing image", zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, result.ContentType.String())
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(result.Data)))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", params.FileID))

	return c.Send(result.Data)
}
