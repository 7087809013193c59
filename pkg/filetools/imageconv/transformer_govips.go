//go:build govips && cgo

package imageconv

import (
	"context"

	"github.com/davidbyttow/govips/v2/vips"
	"gitlab.com/tozd/go/errors"
)

type govipsTransformer struct{}

func (t govipsTransformer) Transform(ctx context.Context, input []byte, cfg Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := vips.NewImageFromBuffer(input)
	if err != nil {
		return nil, errors.Errorf("decode source image: %w", err)
	}
	defer img.Close()

	if img.Width() <= 0 || img.Height() <= 0 {
		return nil, errors.New("source image has invalid dimensions")
	}

	hscale := float64(cfg.Width) / float64(img.Width())
	vscale := float64(cfg.Height) / float64(img.Height())
	if err := img.ResizeWithVScale(hscale, vscale, vips.KernelLanczos3); err != nil {
		return nil, errors.Errorf("resize image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return exportGovipsImage(img, cfg.Format, cfg.Quality)
}

func exportGovipsImage(img *vips.ImageRef, format Format, quality int) ([]byte, error) {
	switch format {
	case FormatJPEG:
		params := vips.NewJpegExportParams()
		if quality > 0 && quality <= MaxQuality {
			params.Quality = quality
		}
		data, _, err := img.ExportJpeg(params)
		if err != nil {
			return nil, errors.Errorf("encode jpeg: %w", err)
		}
		return data, nil
	case FormatPNG:
		data, _, err := img.ExportPng(vips.NewPngExportParams())
		if err != nil {
			return nil, errors.Errorf("encode png: %w", err)
		}
		return data, nil
	case FormatWebP:
		params := vips.NewWebpExportParams()
		if quality > 0 && quality <= MaxQuality {
			params.Quality = quality
		}
		data, _, err := img.ExportWebp(params)
		if err != nil {
			return nil, errors.Errorf("encode webp: %w", err)
		}
		return data, nil
	default:
		return nil, errors.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
