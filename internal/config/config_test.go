package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/filetools-go/pkg/filetools/imageconv"
	"github.com/ukaji3/filetools-go/pkg/filetools/textcase"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "overrides nested keys",
			content: `log_level: debug
output_dir: /tmp/out
path_edit:
  sheet_name: Paths
  preview_rows: 10
image:
  quality: 60
  format: png
  max_upload_size: 5MB
case:
  mode: upper
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "/tmp/out", cfg.OutputDir)
				assert.Equal(t, "Paths", cfg.PathEdit.SheetName)
				assert.Equal(t, "modified_", cfg.PathEdit.FilenamePrefix)
				assert.Equal(t, 10, cfg.PathEdit.PreviewRows)
				assert.Equal(t, 60, cfg.Image.Quality)
				assert.Equal(t, "png", cfg.Image.Format)
				assert.True(t, cfg.Image.MaintainAspectRatio)
				assert.Equal(t, "5MB", cfg.Image.MaxUploadSize)
				assert.Equal(t, "upper", cfg.Case.Mode)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadConfig(writeConfig(t, tt.content))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("explicit file missing", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "image: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoadConfigDefaultFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFilename), []byte("log_level: warn\n"), 0o600))

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("FILETOOLS_IMAGE_QUALITY", "55")
	t.Setenv("FILETOOLS_CASE_MODE", "lower")

	cfg, err := LoadConfig(writeConfig(t, "image:\n  quality: 90\n"))
	require.NoError(t, err)
	assert.Equal(t, 55, cfg.Image.Quality)
	assert.Equal(t, "lower", cfg.Case.Mode)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.LogLevel = "loud" }, wantErr: ErrUnknownLogLevel},
		{name: "empty sheet name", mutate: func(cfg *Config) { cfg.PathEdit.SheetName = " " }, wantErr: ErrEmptySheetName},
		{name: "negative preview", mutate: func(cfg *Config) { cfg.PathEdit.PreviewRows = -1 }, wantErr: ErrInvalidPreviewRows},
		{name: "quality too low", mutate: func(cfg *Config) { cfg.Image.Quality = 5 }, wantErr: imageconv.ErrInvalidQuality},
		{name: "quality too high", mutate: func(cfg *Config) { cfg.Image.Quality = 101 }, wantErr: imageconv.ErrInvalidQuality},
		{name: "unknown format", mutate: func(cfg *Config) { cfg.Image.Format = "gif" }, wantErr: imageconv.ErrUnsupportedFormat},
		{name: "bad upload size", mutate: func(cfg *Config) { cfg.Image.MaxUploadSize = "lots" }, wantErr: ErrInvalidMaxUploadSize},
		{name: "zero upload size", mutate: func(cfg *Config) { cfg.Image.MaxUploadSize = "0" }, wantErr: ErrInvalidMaxUploadSize},
		{name: "unknown case mode", mutate: func(cfg *Config) { cfg.Case.Mode = "title" }, wantErr: textcase.ErrUnknownMode},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfigDerivedFields(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.Image.Format = "jpg"
	cfg.Image.MaxUploadSize = "2 MB"
	cfg.Case.Mode = "UPPER"

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, imageconv.FormatJPEG, cfg.ParsedImageFormat)
	assert.Equal(t, int64(2_000_000), cfg.ParsedMaxUploadSize)
	assert.Equal(t, textcase.ModeUpper, cfg.ParsedCaseMode)

	assert.Equal(t, imageconv.Config{
		Quality:             imageconv.DefaultQuality,
		Format:              imageconv.FormatJPEG,
		MaintainAspectRatio: true,
	}, cfg.ImageDefaults())

	opts := cfg.PathEditOptions()
	assert.Equal(t, "Modified Data", opts.SheetName)
	assert.Equal(t, "modified_", opts.FilenamePrefix)
	assert.Equal(t, "data.xlsx", opts.DefaultFilename)
}

func TestDefaultUploadSizeMatchesConverter(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, int64(imageconv.DefaultMaxUploadSize), cfg.ParsedMaxUploadSize)
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDefault(&buf))

	var decoded Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *Default(), decoded)
	assert.Contains(t, buf.String(), "max_upload_size: 10MiB")
	assert.NotContains(t, buf.String(), "parsed")
}

func TestSaveDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "filetools.yaml")
	require.NoError(t, SaveDefault(path, false))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = SaveDefault(path, false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, SaveDefault(path, true))
}
