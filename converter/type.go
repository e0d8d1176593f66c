package converter

import (
	"fmt"
	"strings"
)

type Type struct {
	s string
}

var (
	JPEG = Type{"image/jpeg"}
	JPG  = Type{"image/jpg"}
	PNG  = Type{"image/png"}
	GIF  = Type{"image/gif"}
	BMP  = Type{"image/bmp"}
	WEBP = Type{"image/webp"}
)

func (t Type) String() string {
	return t.s
}

// IsJpeg reports whether the type is one of the two jpeg spellings.
func (t Type) IsJpeg() bool {
	return t == JPEG || t == JPG
}

func MakeFromString(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case JPEG.s:
		return JPEG, nil
	case JPG.s:
		return JPG, nil
	case PNG.s:
		return PNG, nil
	case GIF.s:
		return GIF, nil
	case BMP.s:
		return BMP, nil
	case WEBP.s:
		return WEBP, nil
	}

	return Type{}, fmt.Errorf("unknown type: %s", s)
}
