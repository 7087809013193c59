package imageconv

import (
	"context"
	"image"

	// Source decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

//go:generate mockgen -source=transformer.go -destination=mock_transformer_test.go -package=imageconv

// Transformer rasterizes an encoded source image to cfg.Width x cfg.Height
// and encodes the result in cfg.Format at cfg.Quality.
type Transformer interface {
	Transform(ctx context.Context, input []byte, cfg Config) ([]byte, error)
}

// NewTransformer returns the transformer for the current build: libvips when
// built with the govips tag and cgo, the pure Go implementation otherwise.
func NewTransformer() (Transformer, error) {
	return newTransformer()
}

// DecodeConfig reports the format name and dimensions of an encoded image
// without decoding its pixels.
func DecodeConfig(data []byte) (image.Config, string, error) {
	return image.DecodeConfig(bytesReader(data))
}
