package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDelimiters(); err != nil {
		return err
	}
	if err := c.validateClassify(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Input == "" {
		return errors.New("paths.input must be set")
	}
	if c.Paths.Output == "" {
		return errors.New("paths.output must be set")
	}
	if c.Paths.Input == c.Paths.Output {
		return fmt.Errorf("paths.output must differ from paths.input (%s)", c.Paths.Input)
	}
	if c.Artists.ReplaceBuiltin && c.Paths.ArtistTable == "" {
		return errors.New("artists.replace_builtin requires paths.artist_table")
	}
	return nil
}

func (c *Config) validateDelimiters() error {
	if _, err := ParseDelimiter(c.Input.Delimiter); err != nil {
		return fmt.Errorf("input.delimiter: %w", err)
	}
	if _, err := ParseDelimiter(c.Output.Delimiter); err != nil {
		return fmt.Errorf("output.delimiter: %w", err)
	}
	return nil
}

func (c *Config) validateClassify() error {
	if c.Classify.Workers < 1 || c.Classify.Workers > maxWorkers {
		return fmt.Errorf("classify.workers must be between 1 and %d", maxWorkers)
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Format {
	case ReportFormatTable, ReportFormatJSON:
	default:
		return fmt.Errorf("report.format must be %q or %q", ReportFormatTable, ReportFormatJSON)
	}
	if c.Report.SampleHead < 0 {
		return errors.New("report.sample_head must be non-negative")
	}
	if c.Report.SampleTail < 0 {
		return errors.New("report.sample_tail must be non-negative")
	}
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		return errors.New("report.color must be auto, always, or never")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\"")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognised", c.Logging.Level)
	}
	return nil
}
