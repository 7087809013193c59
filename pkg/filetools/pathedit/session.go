package pathedit

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/filetools-go/pkg/filetools/models"
	"github.com/ukaji3/filetools-go/pkg/filetools/output"
	"github.com/ukaji3/filetools-go/pkg/filetools/parser"
	"gitlab.com/tozd/go/errors"
)

// Session holds one loaded spreadsheet and tracks whether its rows have
// been rewritten. A Session is not safe for concurrent use.
type Session struct {
	opts      Options
	source    string
	sheet     *models.Sheet
	rows      []models.Row
	processed bool
}

// NewSession creates an empty session. Zero fields in opts take their defaults.
func NewSession(opts Options) *Session {
	return &Session{opts: opts.withDefaults()}
}

// Load decodes the spreadsheet at path, replacing any previously loaded data.
// On failure the previous data is kept and a *DecodeError is returned.
func (s *Session) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &DecodeError{Source: path, Err: err}
	}
	defer f.Close()

	return s.LoadReader(filepath.Base(path), f)
}

// LoadReader decodes a spreadsheet read from r. name is the file name used
// to build the output name.
func (s *Session) LoadReader(name string, r io.Reader) error {
	sheet, err := parser.DecodeRows(r)
	if err != nil {
		return &DecodeError{Source: name, Err: err}
	}

	s.source = name
	s.sheet = sheet
	s.rows = sheet.Rows
	s.processed = false

	return nil
}

// Process rewrites every loaded row with rule. It refuses to run with an
// incomplete rule, without rows, or a second time on the same load.
func (s *Session) Process(rule models.PathRewriteRule) error {
	switch {
	case !rule.Complete():
		return &ValidationError{Op: "process", Err: ErrEmptyRule}
	case len(s.rows) == 0:
		return &ValidationError{Op: "process", Err: ErrNoRows}
	case s.processed:
		return &ValidationError{Op: "process", Err: ErrAlreadyProcessed}
	}

	s.rows = Rewrite(s.rows, rule)
	s.processed = true

	return nil
}

// WriteTo encodes the processed rows as a workbook to w.
func (s *Session) WriteTo(w io.Writer) error {
	if err := s.checkSavable(); err != nil {
		return err
	}

	if err := output.EncodeRows(w, s.rows, s.opts.SheetName); err != nil {
		return &EncodeError{Target: s.OutputName(), Err: err}
	}

	return nil
}

// Save writes the processed rows to dir/OutputName() and returns the path.
// The file is written to a temporary name first so a failed save leaves no
// partial output.
func (s *Session) Save(dir string) (string, error) {
	if err := s.checkSavable(); err != nil {
		return "", err
	}

	target := filepath.Join(dir, s.OutputName())

	var buf bytes.Buffer
	if err := output.EncodeRows(&buf, s.rows, s.opts.SheetName); err != nil {
		return "", &EncodeError{Target: target, Err: err}
	}

	if err := writeFileAtomic(target, buf.Bytes()); err != nil {
		return "", &EncodeError{Target: target, Err: err}
	}

	return target, nil
}

// Rows returns the current rows: decoded rows before Process, rewritten rows after.
func (s *Session) Rows() []models.Row {
	return s.rows
}

// Sheet returns the decoded sheet metadata, or nil when nothing is loaded.
func (s *Session) Sheet() *models.Sheet {
	return s.sheet
}

// Processed reports whether the loaded rows have been rewritten.
func (s *Session) Processed() bool {
	return s.processed
}

// Source returns the name of the loaded file.
func (s *Session) Source() string {
	return s.source
}

// OutputName returns the output file name: the configured prefix followed by
// the source file name.
func (s *Session) OutputName() string {
	name := s.source
	if name == "" {
		name = s.opts.DefaultFilename
	}
	return s.opts.FilenamePrefix + name
}

func (s *Session) checkSavable() error {
	if len(s.rows) == 0 {
		return &ValidationError{Op: "save", Err: ErrNoRows}
	}
	if !s.processed {
		return &ValidationError{Op: "save", Err: ErrNotProcessed}
	}
	return nil
}

func writeFileAtomic(target string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*.xlsx")
	if err != nil {
		return errors.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("rename output: %w", err)
	}

	return nil
}
