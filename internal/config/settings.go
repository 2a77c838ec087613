package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings keys (environment variables)
const (
	KeyBinary       = "YTPICK_BINARY"
	KeyMergeFormat  = "YTPICK_MERGE_FORMAT"
	KeyFetchTimeout = "YTPICK_FETCH_TIMEOUT"
	KeyLogLevel     = "YTPICK_LOG_LEVEL"
	KeyLogJSON      = "YTPICK_LOG_JSON"
	KeyLanguage     = "YTPICK_LANGUAGE"
	KeyMetricsFile  = "YTPICK_METRICS_FILE"
	KeyColor        = "YTPICK_COLOR"
)

// Default values
const (
	DefaultBinary       = "yt-dlp"
	DefaultMergeFormat  = "mp4"
	DefaultFetchTimeout = 60 * time.Second
	DefaultLogLevel     = "warn"
	DefaultLanguage     = "en"
	DefaultEnvFile      = ".env"
)

// Keys returns every recognised environment variable
func Keys() []string {
	return []string{
		KeyBinary,
		KeyMergeFormat,
		KeyFetchTimeout,
		KeyLogLevel,
		KeyLogJSON,
		KeyLanguage,
		KeyMetricsFile,
		KeyColor,
	}
}

// Settings reads application configuration from the environment
type Settings struct {
	lookup func(string) (string, bool)
}

// NewSettings creates a settings manager backed by the process environment
func NewSettings() *Settings {
	return &Settings{lookup: os.LookupEnv}
}

// Load reads the given .env files into the process environment. Variables that are
// already set win. A missing file is not an error; with no paths ".env" is tried.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// GetBinary returns the yt-dlp executable name or path
func (s *Settings) GetBinary() string {
	return s.getString(KeyBinary, DefaultBinary)
}

// GetMergeFormat returns the container used when video and audio are merged
func (s *Settings) GetMergeFormat() string {
	return s.getString(KeyMergeFormat, DefaultMergeFormat)
}

// GetFetchTimeout returns the metadata fetch timeout. Zero or negative disables it.
func (s *Settings) GetFetchTimeout() time.Duration {
	v, ok := s.lookup(KeyFetchTimeout)
	if !ok || strings.TrimSpace(v) == "" {
		return DefaultFetchTimeout
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return DefaultFetchTimeout
	}
	return d
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return strings.ToLower(s.getString(KeyLogLevel, DefaultLogLevel))
}

// GetLogJSON returns whether logs are written as JSON
func (s *Settings) GetLogJSON() bool {
	return s.getBool(KeyLogJSON, false)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return strings.ToLower(s.getString(KeyLanguage, DefaultLanguage))
}

// GetMetricsFile returns the textfile path for run metrics, empty when disabled
func (s *Settings) GetMetricsFile() string {
	return s.getString(KeyMetricsFile, "")
}

// GetColor returns whether console output may use colors
func (s *Settings) GetColor() bool {
	return s.getBool(KeyColor, true)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

func (s *Settings) getString(key, fallback string) string {
	if v, ok := s.lookup(key); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return fallback
}

func (s *Settings) getBool(key string, fallback bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
