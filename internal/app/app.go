package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/ukaji3/filetools-go/internal/config"
	"github.com/ukaji3/filetools-go/internal/notify"
	"github.com/ukaji3/filetools-go/pkg/filetools/imageconv"
	"github.com/ukaji3/filetools-go/pkg/filetools/pathedit"
	"github.com/ukaji3/filetools-go/pkg/filetools/textcase"
)

// Env bundles the dependencies shared by every command.
type Env struct {
	// Config is the validated configuration.
	Config *config.Config
	// Notifier prints user notices.
	Notifier *notify.Notifier
	// Out receives command results (previews, converted text).
	Out io.Writer
}

// NewEnv creates an Env writing results to out and notices to console.
// Nil writers select stdout and stderr.
func NewEnv(cfg *config.Config, out, console io.Writer) *Env {
	if out == nil {
		out = os.Stdout
	}

	if console == nil {
		console = os.Stderr
	}

	return &Env{
		Config:   cfg,
		Notifier: notify.New(console),
		Out:      out,
	}
}

// Report prints err as an error notice, with a title chosen from the error kind.
func Report(ctx context.Context, n *notify.Notifier, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		n.Warning(ctx, "Cancelled", "The operation was interrupted.")
		return
	}

	n.Error(ctx, errorTitle(err), err.Error())
}

func errorTitle(err error) string {
	var (
		decodeErr     *pathedit.DecodeError
		validationErr *pathedit.ValidationError
		encodeErr     *pathedit.EncodeError
	)

	switch {
	case errors.As(err, &decodeErr):
		return "Could not load the Excel file."
	case errors.As(err, &validationErr):
		if errors.Is(err, pathedit.ErrAlreadyProcessed) {
			return "Already processed."
		}
		return "Missing data."
	case errors.As(err, &encodeErr):
		return "Could not save the modified file."
	case errors.Is(err, imageconv.ErrFileTooLarge):
		return "File too large."
	case errors.Is(err, imageconv.ErrUnsupportedFormat),
		errors.Is(err, imageconv.ErrInvalidQuality),
		errors.Is(err, imageconv.ErrInvalidDimensions),
		errors.Is(err, imageconv.ErrDimensionsTooLarge),
		errors.Is(err, ErrUnknownPreset):
		return "Invalid image settings."
	case errors.Is(err, textcase.ErrUnknownMode), errors.Is(err, ErrEmptyText):
		return "Invalid text input."
	default:
		return "Error."
	}
}

// outputDir picks the directory for results: the configured one, or the
// directory of the input file.
func outputDir(configured, input string) string {
	if configured != "" {
		return configured
	}

	return filepath.Dir(input)
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Errorf("create output directory: %w", err)
	}

	return nil
}
