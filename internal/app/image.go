package app

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"

	"github.com/ukaji3/filetools-go/internal/logger"
	"github.com/ukaji3/filetools-go/pkg/filetools/imageconv"
)

// ErrUnknownPreset indicates a preset name that is not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// ImageRequest describes one image conversion. Zero dimensions keep the
// source size or are coupled through the aspect ratio.
type ImageRequest struct {
	// Input is the image file to convert.
	Input string
	// Width and Height are the target dimensions in pixels.
	Width  int
	Height int
	// Preset names a dimension preset applied before Width and Height.
	Preset string
}

// ExecuteImage converts one image file with the configured quality, format
// and aspect ratio settings and writes "<name>_converted.<ext>".
func ExecuteImage(ctx context.Context, env *Env, transformer imageconv.Transformer, req ImageRequest) (*imageconv.Output, string, error) {
	cfg := env.Config
	params := cfg.ImageDefaults()

	if req.Preset != "" {
		preset, ok := imageconv.FindPreset(req.Preset)
		if !ok {
			return nil, "", errors.Errorf("%w: %q", ErrUnknownPreset, req.Preset)
		}

		params = preset.Apply(params)
		logger.DebugKV(ctx, "Preset applied", "preset", preset.Name, "width", preset.Width, "height", preset.Height)
	}

	if req.Width > 0 {
		params.Width = req.Width
	}

	if req.Height > 0 {
		params.Height = req.Height
	}

	dir := outputDir(cfg.OutputDir, req.Input)
	if err := ensureDir(dir); err != nil {
		return nil, "", err
	}

	converter := imageconv.NewConverter(transformer, cfg.ParsedMaxUploadSize)

	out, target, err := converter.ConvertFile(ctx, req.Input, params, dir)
	if err != nil {
		return nil, "", err
	}

	logger.InfoKV(ctx, "Image converted",
		"file", target,
		"width", out.Config.Width,
		"height", out.Config.Height,
		"format", out.Config.Format,
		"quality", out.Config.Quality,
		"original_size", out.OriginalSize,
		"size", out.Size())
	env.Notifier.Success(ctx, "Image processed successfully!", out.Summary())
	env.Notifier.Info(ctx, "Saved",
		fmt.Sprintf("%s (%dx%d, %s quality %d%%)", target, out.Config.Width, out.Config.Height,
			imageconv.QualityLabel(out.Config.Quality), out.Config.Quality))

	return out, target, nil
}
