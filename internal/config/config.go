package config

import "fmt"

type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Chunking ChunkingConfig `yaml:"chunking"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Logging  LoggingConfig  `yaml:"logging"`
	Export   ExportConfig   `yaml:"export"`
	Summary  SummaryConfig  `yaml:"summary"`
}

type PathsConfig struct {
	Audio  string `yaml:"audio"`
	Chunks string `yaml:"chunks"`
	Report string `yaml:"report"`
}

type ChunkingConfig struct {
	LengthSeconds int `yaml:"length_seconds"`
}

type FFmpegConfig struct {
	Binary      string `yaml:"binary"`
	ProbeBinary string `yaml:"probe_binary"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ExportConfig struct {
	Docx bool   `yaml:"docx"`
	Path string `yaml:"path"`
}

type SummaryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no config file is present:
// recordings under "audio", chunks under "chunks", 20 second chunks, one
// report file at the top level.
func Default() *Config {
	cfg := &Config{}
	cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Chunking.LengthSeconds < 0 {
		return fmt.Errorf("chunking.length_seconds must be positive")
	}

	if c.Paths.Audio == "" {
		c.Paths.Audio = "audio"
	}
	if c.Paths.Chunks == "" {
		c.Paths.Chunks = "chunks"
	}
	if c.Paths.Report == "" {
		c.Paths.Report = "transcription_results.txt"
	}
	if c.Chunking.LengthSeconds == 0 {
		c.Chunking.LengthSeconds = 20
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = "ffprobe"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Export.Path == "" {
		c.Export.Path = "transcription_results.docx"
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}
	if c.Summary.Path == "" {
		c.Summary.Path = "transcription_summary.md"
	}

	return nil
}
