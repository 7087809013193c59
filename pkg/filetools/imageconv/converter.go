package imageconv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"gitlab.com/tozd/go/errors"
)

// Source is an encoded image accepted for conversion.
type Source struct {
	// Name is the source file name.
	Name string
	// Data holds the encoded image.
	Data []byte
	// Format is the detected source format (e.g. "png").
	Format string
	// Width and Height are the source dimensions in pixels.
	Width  int
	Height int
}

// Size returns the encoded source size in bytes.
func (s *Source) Size() int64 {
	return int64(len(s.Data))
}

// Output is the result of a conversion.
type Output struct {
	// Name is the suggested output file name.
	Name string
	// Data holds the encoded result.
	Data []byte
	// Config is the resolved configuration that produced Data.
	Config Config
	// OriginalSize is the source size in bytes.
	OriginalSize int64
}

// Size returns the encoded output size in bytes.
func (o *Output) Size() int64 {
	return int64(len(o.Data))
}

// Savings returns the size reduction in percent. It is negative when the
// output is larger than the source.
func (o *Output) Savings() float64 {
	if o.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(o.Size())/float64(o.OriginalSize)) * 100
}

// Summary describes the size change in one line.
func (o *Output) Summary() string {
	return fmt.Sprintf("Original size: %s -> New size: %s (%.1f%% reduction)",
		humanize.IBytes(uint64(o.OriginalSize)), humanize.IBytes(uint64(o.Size())), o.Savings())
}

// Converter checks sources against the upload limit and runs them through a
// Transformer.
type Converter struct {
	transformer   Transformer
	maxUploadSize int64
}

// NewConverter creates a Converter. A non-positive maxUploadSize selects
// DefaultMaxUploadSize.
func NewConverter(t Transformer, maxUploadSize int64) *Converter {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &Converter{transformer: t, maxUploadSize: maxUploadSize}
}

// Inspect validates the size of data and reads its dimensions.
func (c *Converter) Inspect(name string, data []byte) (*Source, error) {
	if err := c.checkSize(int64(len(data))); err != nil {
		return nil, err
	}

	cfg, format, err := DecodeConfig(data)
	if err != nil {
		return nil, errors.Errorf("read image %q: %w", name, err)
	}
	if err := checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, errors.Errorf("source %q: %w", name, err)
	}

	return &Source{
		Name:   name,
		Data:   data,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Convert resolves cfg against the source dimensions, validates it and
// transforms the source.
func (c *Converter) Convert(ctx context.Context, src *Source, cfg Config) (*Output, error) {
	cfg = cfg.Resolve(src.Width, src.Height)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := c.transformer.Transform(ctx, src.Data, cfg)
	if err != nil {
		return nil, errors.Errorf("convert %q: %w", src.Name, err)
	}
	if len(data) == 0 {
		return nil, errors.Errorf("convert %q: encoder produced no data", src.Name)
	}

	return &Output{
		Name:         OutputName(src.Name, cfg.Format),
		Data:         data,
		Config:       cfg,
		OriginalSize: src.Size(),
	}, nil
}

// ConvertFile converts the image at path and writes the result into outDir.
// It returns the conversion output and the written file path.
func (c *Converter) ConvertFile(ctx context.Context, path string, cfg Config, outDir string) (*Output, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", errors.Errorf("stat source: %w", err)
	}
	if err := c.checkSize(info.Size()); err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Errorf("read source: %w", err)
	}

	src, err := c.Inspect(filepath.Base(path), data)
	if err != nil {
		return nil, "", err
	}

	out, err := c.Convert(ctx, src, cfg)
	if err != nil {
		return nil, "", err
	}

	target := filepath.Join(outDir, out.Name)
	if err := os.WriteFile(target, out.Data, 0o644); err != nil {
		return nil, "", errors.Errorf("write output: %w", err)
	}

	return out, target, nil
}

func (c *Converter) checkSize(size int64) error {
	if size > c.maxUploadSize {
		return errors.Errorf("%w: %s exceeds the %s limit",
			ErrFileTooLarge, humanize.IBytes(uint64(size)), humanize.IBytes(uint64(c.maxUploadSize)))
	}
	return nil
}

// OutputName builds "<name>_converted.<ext>", where name is the source file
// name up to its first dot.
func OutputName(sourceName string, format Format) string {
	base, _, _ := strings.Cut(filepath.Base(sourceName), ".")
	return fmt.Sprintf("%s_converted.%s", base, format.Extension())
}
