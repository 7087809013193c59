package imageconv

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/image/draw"
)

type stdlibTransformer struct{}

func (t stdlibTransformer) Transform(ctx context.Context, input []byte, cfg Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytesReader(input))
	if err != nil {
		return nil, errors.Errorf("decode source image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst := rasterize(src, cfg.Width, cfg.Height)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return encodeImage(dst, cfg.Format, cfg.Quality)
}

// rasterize draws src scaled to width x height onto a fresh surface.
func rasterize(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func encodeImage(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatJPEG:
		if quality <= 0 || quality > MaxQuality {
			quality = DefaultQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, errors.Errorf("encode jpeg: %w", err)
		}
	case FormatPNG:
		encoder := png.Encoder{CompressionLevel: png.DefaultCompression}
		if err := encoder.Encode(&buf, img); err != nil {
			return nil, errors.Errorf("encode png: %w", err)
		}
	case FormatWebP:
		return nil, errors.Errorf("%w: webp export requires the govips build tag", ErrUnsupportedFormat)
	default:
		return nil, errors.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}
