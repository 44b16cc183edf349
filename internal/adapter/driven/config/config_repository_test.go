package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriellafis/data-report-cli/internal/shared/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_Formats(t *testing.T) {
	repo := NewConfigRepository()

	cases := map[string]string{
		"config.toml": "author = \"Jane Roe\"\ndefault_source = \"file\"\nexport_formats = [\"json\", \"pdf\"]\n",
		"config.yaml": "author: Jane Roe\ndefault_source: file\nexport_formats: [json, pdf]\n",
		"config.json": `{"author": "Jane Roe", "default_source": "file", "export_formats": ["json", "pdf"]}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeConfig(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "Jane Roe", cfg.Author)
			assert.Equal(t, types.SourceFile, cfg.DefaultSource)
			assert.Equal(t, []string{"json", "pdf"}, cfg.ExportFormats)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeConfig(t, "config.ini", "author=x"))
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)

	_, err = repo.LoadConfigFile(writeConfig(t, "config.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")

	_, err = repo.LoadConfigFile(writeConfig(t, "config.yaml", "default_source: ftp\n"))
	assert.ErrorIs(t, err, types.ErrUnknownSource)
}

func TestConfigMerge(t *testing.T) {
	base := types.DefaultConfig("1.0.0")
	merged := base.Merge(&types.Config{Author: "Jane Roe", AWSRegion: "eu-west-1"})

	assert.Equal(t, "Jane Roe", merged.Author)
	assert.Equal(t, "1.0.0", merged.Version)
	assert.Equal(t, "summary", merged.DefaultReportType)
	assert.Equal(t, types.SourceSample, merged.DefaultSource)
	assert.Equal(t, "eu-west-1", merged.AWSRegion)

	assert.Equal(t, base, base.Merge(nil))
}
