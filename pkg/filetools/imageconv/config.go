// Package imageconv resizes images and re-encodes them as JPEG, PNG or WebP.
package imageconv

import (
	"math"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Format is an output image format.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

const (
	// MinQuality is the lowest accepted encoder quality.
	MinQuality = 10
	// MaxQuality is the highest accepted encoder quality.
	MaxQuality = 100
	// DefaultQuality is the encoder quality used when none is given.
	DefaultQuality = 80
	// DefaultMaxUploadSize is the largest accepted source file, in bytes.
	DefaultMaxUploadSize = 10 * 1024 * 1024
	// MaxDimension is the largest accepted width or height, in pixels.
	MaxDimension = 16384
	// MaxPixels is the largest accepted width x height, for sources and targets.
	MaxPixels = 1 << 26
)

var (
	// ErrUnsupportedFormat indicates an output format that cannot be produced.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrInvalidQuality indicates a quality outside MinQuality..MaxQuality.
	ErrInvalidQuality = errors.New("invalid quality")
	// ErrInvalidDimensions indicates a non-positive target width or height.
	ErrInvalidDimensions = errors.New("width and height must be positive")
	// ErrDimensionsTooLarge indicates a width, height or pixel count above
	// MaxDimension or MaxPixels.
	ErrDimensionsTooLarge = errors.New("image dimensions too large")
	// ErrFileTooLarge indicates a source file above the upload limit.
	ErrFileTooLarge = errors.New("file too large")
)

// ParseFormat converts a user-supplied format name. "jpg" is accepted as JPEG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", errors.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// MIMEType returns the media type for the format.
func (f Format) MIMEType() string {
	return "image/" + string(f)
}

// Config holds the conversion parameters.
type Config struct {
	// Width is the target width in pixels. Zero means "derive".
	Width int
	// Height is the target height in pixels. Zero means "derive".
	Height int
	// Quality is the encoder quality (MinQuality..MaxQuality). Ignored for PNG.
	Quality int
	// Format is the output format.
	Format Format
	// MaintainAspectRatio couples a missing dimension to the given one using
	// the source aspect ratio.
	MaintainAspectRatio bool
}

// DefaultConfig returns the default conversion parameters.
func DefaultConfig() Config {
	return Config{
		Quality:             DefaultQuality,
		Format:              FormatJPEG,
		MaintainAspectRatio: true,
	}
}

// Resolve fills in zero dimensions for a source of origW x origH pixels.
// With no dimensions the source size is kept. With one dimension the other is
// coupled through the aspect ratio, or taken from the source when
// MaintainAspectRatio is off.
func (c Config) Resolve(origW, origH int) Config {
	switch {
	case c.Width == 0 && c.Height == 0:
		c.Width, c.Height = origW, origH
	case c.Height == 0:
		if c.MaintainAspectRatio {
			c.Height = CoupleHeight(c.Width, origW, origH)
		} else {
			c.Height = origH
		}
	case c.Width == 0:
		if c.MaintainAspectRatio {
			c.Width = CoupleWidth(c.Height, origW, origH)
		} else {
			c.Width = origW
		}
	}
	return c
}

// Validate checks that the configuration can be rendered.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if err := checkDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.Quality < MinQuality || c.Quality > MaxQuality {
		return errors.Errorf("%w: %d (must be between %d and %d)", ErrInvalidQuality, c.Quality, MinQuality, MaxQuality)
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}

// checkDimensions rejects sizes that cannot be rasterized within MaxDimension
// and MaxPixels.
func checkDimensions(width, height int) error {
	if width > MaxDimension || height > MaxDimension || int64(width)*int64(height) > MaxPixels {
		return errors.Errorf("%w: %dx%d (limit %d per side, %d pixels)",
			ErrDimensionsTooLarge, width, height, MaxDimension, MaxPixels)
	}
	return nil
}

// CoupleHeight returns the height matching width for an origW x origH source.
func CoupleHeight(width, origW, origH int) int {
	if origW <= 0 || origH <= 0 {
		return 0
	}
	aspectRatio := float64(origW) / float64(origH)
	return int(math.Round(float64(width) / aspectRatio))
}

// CoupleWidth returns the width matching height for an origW x origH source.
func CoupleWidth(height, origW, origH int) int {
	if origW <= 0 || origH <= 0 {
		return 0
	}
	aspectRatio := float64(origW) / float64(origH)
	return int(math.Round(float64(height) * aspectRatio))
}

// QualityLabel describes a quality value in words.
func QualityLabel(quality int) string {
	switch {
	case quality >= 90:
		return "excellent"
	case quality >= 70:
		return "good"
	case quality >= 50:
		return "medium"
	default:
		return "low"
	}
}
