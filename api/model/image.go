package model

import "shrinker/converter"

// ResizeRequest carries the validated constraint for one resize call.
// Size mode wins over dimension mode when both are present, matching
// the branching order of the handlers.
type ResizeRequest struct {
	Width      int   `form:"width" query:"width" validate:"omitempty,min=1,max=10000"`
	Height     int   `form:"height" query:"height" validate:"omitempty,min=1,max=10000"`
	TargetSize int64 `form:"size" query:"size" validate:"omitempty,min=1024,max=104857600"`
}

func (r *ResizeRequest) SizeMode() bool {
	return r.TargetSize > 0
}

func (r *ResizeRequest) DimensionMode() bool {
	return r.Width > 0 || r.Height > 0
}

// ImageRequest addresses a source object in the S3 bucket plus its
// dimension bounds, parsed from the path.
type ImageRequest struct {
	EntityID string `params:"entity"`
	FileID   string `params:"file"`
	Width    int    `params:"width" validate:"omitempty,min=1,max=10000"`
	Height   int    `params:"height" validate:"omitempty,min=1,max=10000"`
}

// EncodedResult is the engine's output: one encoded buffer and the
// content type it was encoded under. TargetMet is false only on the
// size-constrained path, when even the quality floor produced a buffer
// larger than requested.
type EncodedResult struct {
	Data        []byte
	ContentType converter.Type

	TargetMet bool
	Attempts  int
}
