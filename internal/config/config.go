// Package config loads filetools settings from an optional YAML file.
package config

import (
	"context"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/filetools-go/internal/logger"
	"github.com/ukaji3/filetools-go/pkg/filetools/imageconv"
	"github.com/ukaji3/filetools-go/pkg/filetools/pathedit"
	"github.com/ukaji3/filetools-go/pkg/filetools/textcase"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// OutputDir is the directory where converted files are written.
	// Empty means next to the input file.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// PathEdit holds the spreadsheet path editor settings.
	PathEdit PathEditConfig `mapstructure:"path_edit" yaml:"path_edit"`
	// Image holds the image converter settings.
	Image ImageConfig `mapstructure:"image" yaml:"image"`
	// Case holds the text case converter settings.
	Case CaseConfig `mapstructure:"case" yaml:"case"`

	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedMaxUploadSize is the parsed image upload limit in bytes.
	ParsedMaxUploadSize int64 `mapstructure:"-" yaml:"-"`
	// ParsedImageFormat is the parsed default output format.
	ParsedImageFormat imageconv.Format `mapstructure:"-" yaml:"-"`
	// ParsedCaseMode is the parsed default case mode.
	ParsedCaseMode textcase.Mode `mapstructure:"-" yaml:"-"`
}

// PathEditConfig configures the spreadsheet path editor.
type PathEditConfig struct {
	// SheetName is the name of the output sheet.
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	// FilenamePrefix is prepended to the input name to build the output name.
	FilenamePrefix string `mapstructure:"filename_prefix" yaml:"filename_prefix"`
	// PreviewRows is the number of processed rows shown after a run.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`
}

// ImageConfig configures the image converter.
type ImageConfig struct {
	// Quality is the default encoder quality (10-100).
	Quality int `mapstructure:"quality" yaml:"quality"`
	// Format is the default output format (jpeg, png, webp).
	Format string `mapstructure:"format" yaml:"format"`
	// MaintainAspectRatio couples width and height when only one is given.
	MaintainAspectRatio bool `mapstructure:"maintain_aspect_ratio" yaml:"maintain_aspect_ratio"`
	// MaxUploadSize is the largest accepted source file (e.g. "10MB").
	MaxUploadSize string `mapstructure:"max_upload_size" yaml:"max_upload_size"`
}

// CaseConfig configures the text case converter.
type CaseConfig struct {
	// Mode is the default conversion mode.
	Mode string `mapstructure:"mode" yaml:"mode"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".filetools.yaml"

	// DefaultPreviewRows is the number of rows shown by default after processing.
	DefaultPreviewRows = 5

	// DefaultMaxUploadSize is the default image upload limit.
	DefaultMaxUploadSize = "10MiB"

	// EnvPrefix prefixes environment variables that override file settings.
	EnvPrefix = "FILETOOLS"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidPreviewRows indicates a negative preview row count.
	ErrInvalidPreviewRows = errors.New("preview_rows cannot be negative")
	// ErrInvalidMaxUploadSize indicates a zero or unparsable upload limit.
	ErrInvalidMaxUploadSize = errors.New("max_upload_size must be a positive size")
	// ErrEmptySheetName indicates a blank output sheet name.
	ErrEmptySheetName = errors.New("sheet_name cannot be empty")
	// ErrConfigExists indicates that config init would overwrite a file.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		PathEdit: PathEditConfig{
			SheetName:      pathedit.DefaultOptions().SheetName,
			FilenamePrefix: pathedit.DefaultOptions().FilenamePrefix,
			PreviewRows:    DefaultPreviewRows,
		},
		Image: ImageConfig{
			Quality:             imageconv.DefaultQuality,
			Format:              string(imageconv.FormatJPEG),
			MaintainAspectRatio: true,
			MaxUploadSize:       DefaultMaxUploadSize,
		},
		Case: CaseConfig{
			Mode: string(textcase.ModeSentence),
		},
	}
}

// LoadConfig loads configuration settings from a YAML file. An empty
// filename looks for DefaultConfigFilename in the working directory and
// falls back to the defaults when it does not exist. An explicit filename
// must exist.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
			return nil, errors.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Errorf("failed to unmarshal config: %w", err)
	}

	logger.Debugf(context.Background(), "Configuration file: %s", v.ConfigFileUsed())

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("path_edit.sheet_name", d.PathEdit.SheetName)
	v.SetDefault("path_edit.filename_prefix", d.PathEdit.FilenamePrefix)
	v.SetDefault("path_edit.preview_rows", d.PathEdit.PreviewRows)
	v.SetDefault("image.quality", d.Image.Quality)
	v.SetDefault("image.format", d.Image.Format)
	v.SetDefault("image.maintain_aspect_ratio", d.Image.MaintainAspectRatio)
	v.SetDefault("image.max_upload_size", d.Image.MaxUploadSize)
	v.SetDefault("case.mode", d.Case.Mode)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return errors.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if strings.TrimSpace(cfg.PathEdit.SheetName) == "" {
		return ErrEmptySheetName
	}

	if cfg.PathEdit.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	if cfg.Image.Quality < imageconv.MinQuality || cfg.Image.Quality > imageconv.MaxQuality {
		return errors.Errorf("%w: must be between %d and %d",
			imageconv.ErrInvalidQuality, imageconv.MinQuality, imageconv.MaxQuality)
	}

	format, err := imageconv.ParseFormat(cfg.Image.Format)
	if err != nil {
		return err
	}

	cfg.ParsedImageFormat = format

	maxUploadSize, err := humanize.ParseBytes(strings.TrimSpace(cfg.Image.MaxUploadSize))
	if err != nil {
		return errors.Errorf("%w: %v", ErrInvalidMaxUploadSize, err)
	}

	if maxUploadSize == 0 || maxUploadSize > uint64(1<<62) {
		return errors.Errorf("%w: '%s'", ErrInvalidMaxUploadSize, cfg.Image.MaxUploadSize)
	}

	cfg.ParsedMaxUploadSize = int64(maxUploadSize)

	mode, err := textcase.ParseMode(cfg.Case.Mode)
	if err != nil {
		return err
	}

	cfg.ParsedCaseMode = mode

	return nil
}

// PathEditOptions returns the session options described by the configuration.
func (c *Config) PathEditOptions() pathedit.Options {
	opts := pathedit.DefaultOptions()
	opts.SheetName = c.PathEdit.SheetName
	opts.FilenamePrefix = c.PathEdit.FilenamePrefix

	return opts
}

// ImageDefaults returns the conversion parameters described by the
// configuration. Dimensions are left for the caller.
func (c *Config) ImageDefaults() imageconv.Config {
	return imageconv.Config{
		Quality:             c.Image.Quality,
		Format:              c.ParsedImageFormat,
		MaintainAspectRatio: c.Image.MaintainAspectRatio,
	}
}

// WriteDefault writes the built-in configuration as YAML.
func WriteDefault(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(Default()); err != nil {
		return errors.Errorf("failed to marshal YAML: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return errors.Errorf("failed to flush YAML: %w", err)
	}

	return nil
}

// SaveDefault creates a configuration file with the built-in settings.
// An existing file is only replaced when force is set.
func SaveDefault(path string, force bool) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.Errorf("%w: %s", ErrConfigExists, path)
		}

		return errors.Errorf("failed to create config file: %w", err)
	}

	if err = WriteDefault(file); err != nil {
		_ = file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return errors.Errorf("failed to write config file: %w", err)
	}

	return nil
}
