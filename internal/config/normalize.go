package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDelimiters()
	c.normalizeClassify()
	c.normalizeReport()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.Input) == "" {
		c.Paths.Input = envOr(EnvInput, defaultInputPath)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = envOr(EnvOutput, defaultOutputPath)
	}

	var err error
	if c.Paths.Input, err = expandPath(strings.TrimSpace(c.Paths.Input)); err != nil {
		return fmt.Errorf("paths.input: %w", err)
	}
	if c.Paths.Output, err = expandPath(strings.TrimSpace(c.Paths.Output)); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if c.Paths.ArtistTable, err = expandPath(strings.TrimSpace(c.Paths.ArtistTable)); err != nil {
		return fmt.Errorf("paths.artist_table: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (c *Config) normalizeDelimiters() {
	if c.Input.Delimiter == "" {
		c.Input.Delimiter = defaultInputDelimiter
	}
	if c.Output.Delimiter == "" {
		c.Output.Delimiter = defaultOutputDelim
	}
}

func (c *Config) normalizeClassify() {
	if c.Classify.Workers == 0 {
		c.Classify.Workers = defaultWorkers
	}
	c.Classify.HeavyRockKeywords = cleanKeywords(c.Classify.HeavyRockKeywords)
	c.Classify.DanceKeywords = cleanKeywords(c.Classify.DanceKeywords)
}

func cleanKeywords(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func (c *Config) normalizeReport() {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultReportColor
	}
}

func (c *Config) normalizeLogging() error {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level

	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

// ParseDelimiter converts a configured delimiter into a field separator rune.
// Besides a literal single character it accepts the names "tab", "comma",
// "semicolon", and "pipe".
func ParseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("delimiter %q is not allowed", value)
	}
	return r, nil
}

// InputComma returns the input field separator.
func (c *Config) InputComma() rune {
	r, err := ParseDelimiter(c.Input.Delimiter)
	if err != nil {
		return ','
	}
	return r
}

// OutputComma returns the output field separator.
func (c *Config) OutputComma() rune {
	r, err := ParseDelimiter(c.Output.Delimiter)
	if err != nil {
		return '\t'
	}
	return r
}
