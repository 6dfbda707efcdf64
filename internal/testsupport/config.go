package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"lomtag/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose input and output live in a fresh temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Input = filepath.Join(base, "Dziesmas.csv")
	cfgVal.Paths.Output = filepath.Join(base, "Dziesmas_updated.tsv")
	cfgVal.Report.Color = "never"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithWorkers sets the classification worker count.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Classify.Workers = n
	}
}

// WithArtistTable writes contents to an artist table file next to the
// catalog and points the config at it. ext selects the format (".toml",
// ".yaml").
func WithArtistTable(ext, contents string, replaceBuiltin bool) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "artists"+ext)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			b.t.Fatalf("write artist table: %v", err)
		}
		b.cfg.Paths.ArtistTable = path
		b.cfg.Artists.ReplaceBuiltin = replaceBuiltin
	}
}

// WithBackup enables copying an existing output before it is replaced.
func WithBackup() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Backup = true
	}
}

// WithSamples sizes the report sample lists.
func WithSamples(head, tail int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.SampleHead = head
		b.cfg.Report.SampleTail = tail
	}
}

// WriteConfig encodes cfg into a TOML file inside the config's base
// directory and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "lomtag.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Input)
}
