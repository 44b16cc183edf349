package types

// Source names accepted by --source.
const (
	SourceSample = "sample"
	SourceFile   = "file"
	SourceS3     = "s3"
)

// DefaultAuthor is the author stamped on reports when no configuration overrides it.
const DefaultAuthor = "Gabriel Demetrios Lafis"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Author            string   `json:"author" yaml:"author" toml:"author"`
	Version           string   `json:"version" yaml:"version" toml:"version"`
	DefaultReportType string   `json:"default_report_type" yaml:"default_report_type" toml:"default_report_type"`
	DefaultSource     string   `json:"default_source" yaml:"default_source" toml:"default_source"`
	ExportDir         string   `json:"export_dir" yaml:"export_dir" toml:"export_dir"`
	ExportFormats     []string `json:"export_formats" yaml:"export_formats" toml:"export_formats"`
	AWSProfile        string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion         string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig(version string) Config {
	return Config{
		Author:            DefaultAuthor,
		Version:           version,
		DefaultReportType: "summary",
		DefaultSource:     SourceSample,
	}
}

// Merge overlays the non-empty fields of other onto c.
func (c Config) Merge(other *Config) Config {
	if other == nil {
		return c
	}
	if other.Author != "" {
		c.Author = other.Author
	}
	if other.Version != "" {
		c.Version = other.Version
	}
	if other.DefaultReportType != "" {
		c.DefaultReportType = other.DefaultReportType
	}
	if other.DefaultSource != "" {
		c.DefaultSource = other.DefaultSource
	}
	if other.ExportDir != "" {
		c.ExportDir = other.ExportDir
	}
	if len(other.ExportFormats) > 0 {
		c.ExportFormats = other.ExportFormats
	}
	if other.AWSProfile != "" {
		c.AWSProfile = other.AWSProfile
	}
	if other.AWSRegion != "" {
		c.AWSRegion = other.AWSRegion
	}
	return c
}
