package intake

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"regexp"

	"golang.org/x/image/draw"
)

// Output geometry and encoding.
const (
	TargetWidth  = 512
	TargetHeight = 512
	JPEGQuality  = 90

	// MaxPixels bounds the decoded size of a source image. A small file can
	// declare dimensions that would need gigabytes once decoded.
	MaxPixels = 50_000_000
)

// Image is a normalized upload: a TargetWidth x TargetHeight JPEG.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
	Width       int
	Height      int
}

// DataURL returns the image as a data: URL suitable for previews.
func (i *Image) DataURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

var extPattern = regexp.MustCompile(`\.[^/.]+$`)

// JPEGName replaces the last extension of name with ".jpg". Names without an
// extension are returned unchanged.
func JPEGName(name string) string {
	return extPattern.ReplaceAllString(name, ".jpg")
}

// Normalize decodes r, stretches the picture to 512x512 and encodes it as a
// JPEG. Transparent areas come out black. Images over MaxPixels are rejected
// before their pixels are decoded.
func Normalize(r io.Reader, name string) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDecodeFailed, cfg.Width, cfg.Height, MaxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, TargetWidth, TargetHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &Image{
		Name:        JPEGName(name),
		ContentType: ContentTypeJPEG,
		Data:        buf.Bytes(),
		Width:       TargetWidth,
		Height:      TargetHeight,
	}, nil
}
