package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"

	"github.com/ukaji3/filetools-go/internal/logger"
	"github.com/ukaji3/filetools-go/pkg/filetools/textcase"
)

// ErrEmptyText indicates there is no text to convert.
var ErrEmptyText = errors.New("no text to convert")

// CaseRequest describes one case conversion. Text wins over File; with
// neither, Stdin is read.
type CaseRequest struct {
	Text  string
	File  string
	Stdin io.Reader
	// Mode overrides the configured mode when set.
	Mode string
}

// ExecuteCase converts text casing and prints the result.
func ExecuteCase(ctx context.Context, env *Env, req CaseRequest) (string, error) {
	mode := env.Config.ParsedCaseMode
	if req.Mode != "" {
		var err error

		mode, err = textcase.ParseMode(req.Mode)
		if err != nil {
			return "", err
		}
	}

	text, err := readCaseInput(req)
	if err != nil {
		return "", err
	}

	if textcase.Strip(text) == "" {
		return "", ErrEmptyText
	}

	result, err := textcase.Convert(text, mode)
	if err != nil {
		return "", err
	}

	logger.DebugKV(ctx, "Text converted", "mode", mode, "input_length", len(text), "output_length", len(result))

	if _, err = fmt.Fprintln(env.Out, result); err != nil {
		return "", errors.Errorf("write result: %w", err)
	}

	return result, nil
}

func readCaseInput(req CaseRequest) (string, error) {
	switch {
	case req.Text != "":
		return req.Text, nil
	case req.File != "":
		data, err := os.ReadFile(req.File)
		if err != nil {
			return "", errors.Errorf("read text file: %w", err)
		}

		return string(data), nil
	case req.Stdin != nil:
		data, err := io.ReadAll(req.Stdin)
		if err != nil {
			return "", errors.Errorf("read standard input: %w", err)
		}

		return string(data), nil
	default:
		return "", ErrEmptyText
	}
}
