package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"lomtag/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.EnvInput, "")
	t.Setenv(config.EnvOutput, "")
	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantResolved := filepath.Join(tempHome, ".config", "lomtag", "config.toml")
	if resolved != wantResolved {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantResolved)
	}
	if cfg.Paths.Input != filepath.Join(workDir, "Dziesmas.csv") {
		t.Fatalf("unexpected input path: %q", cfg.Paths.Input)
	}
	if cfg.Paths.Output != filepath.Join(workDir, "Dziesmas_updated.tsv") {
		t.Fatalf("unexpected output path: %q", cfg.Paths.Output)
	}
	if cfg.Paths.ArtistTable != "" {
		t.Fatalf("expected no artist table by default, got %q", cfg.Paths.ArtistTable)
	}
	if cfg.InputComma() != ',' {
		t.Fatalf("unexpected input delimiter %q", cfg.InputComma())
	}
	if cfg.OutputComma() != '\t' {
		t.Fatalf("unexpected output delimiter %q", cfg.OutputComma())
	}
	if !cfg.Output.IncludeHeader {
		t.Fatal("expected header row to be written by default")
	}
	if cfg.Output.Backup {
		t.Fatal("expected backups disabled by default")
	}
	if cfg.Classify.Workers != 1 {
		t.Fatalf("expected 1 worker, got %d", cfg.Classify.Workers)
	}
	if strings.Join(cfg.Classify.HeavyRockKeywords, ",") != "rock,metal,punk" {
		t.Fatalf("unexpected heavy rock keywords: %v", cfg.Classify.HeavyRockKeywords)
	}
	if strings.Join(cfg.Classify.DanceKeywords, ",") != "disco,disko" {
		t.Fatalf("unexpected dance keywords: %v", cfg.Classify.DanceKeywords)
	}
	if cfg.Report.Format != config.ReportFormatTable || cfg.Report.SampleHead != 15 || cfg.Report.SampleTail != 10 {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadPrefersProjectFileWhenHomeConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	t.Chdir(workDir)
	if err := os.WriteFile(filepath.Join(workDir, "lomtag.toml"), []byte("[classify]\nworkers = 3\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != filepath.Join(workDir, "lomtag.toml") {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Classify.Workers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Classify.Workers)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "lomtag.toml")

	type payload struct {
		Paths struct {
			Input       string `toml:"input"`
			Output      string `toml:"output"`
			ArtistTable string `toml:"artist_table"`
		} `toml:"paths"`
		Output struct {
			Delimiter     string `toml:"delimiter"`
			IncludeHeader bool   `toml:"include_header"`
		} `toml:"output"`
		Classify struct {
			Workers           int      `toml:"workers"`
			HeavyRockKeywords []string `toml:"heavy_rock_keywords"`
		} `toml:"classify"`
	}
	custom := payload{}
	custom.Paths.Input = filepath.Join(tempDir, "in.csv")
	custom.Paths.Output = filepath.Join(tempDir, "out.csv")
	custom.Paths.ArtistTable = filepath.Join(tempDir, "artists.yaml")
	custom.Output.Delimiter = ";"
	custom.Classify.Workers = 4
	custom.Classify.HeavyRockKeywords = []string{" Rock ", "rock", "", "grunge"}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.Input != custom.Paths.Input || cfg.Paths.Output != custom.Paths.Output {
		t.Fatalf("unexpected paths: %+v", cfg.Paths)
	}
	if cfg.Paths.ArtistTable != custom.Paths.ArtistTable {
		t.Fatalf("unexpected artist table: %q", cfg.Paths.ArtistTable)
	}
	if cfg.OutputComma() != ';' {
		t.Fatalf("expected ';' output delimiter, got %q", cfg.OutputComma())
	}
	if cfg.Output.IncludeHeader {
		t.Fatal("expected include_header false from file")
	}
	if cfg.Classify.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Classify.Workers)
	}
	if got := strings.Join(cfg.Classify.HeavyRockKeywords, ","); got != "rock,grunge" {
		t.Fatalf("expected cleaned keywords, got %q", got)
	}
	if got := strings.Join(cfg.Classify.DanceKeywords, ","); got != "disco,disko" {
		t.Fatalf("expected default dance keywords, got %q", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lomtag.toml")
	if err := os.WriteFile(path, []byte("[classify]\nthreads = 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvVarFallbackForPaths(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Chdir(tempDir)
	t.Setenv(config.EnvInput, filepath.Join(tempDir, "env-in.csv"))
	t.Setenv(config.EnvOutput, filepath.Join(tempDir, "env-out.tsv"))

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.Input != filepath.Join(tempDir, "env-in.csv") {
		t.Fatalf("expected input from env, got %q", cfg.Paths.Input)
	}
	if cfg.Paths.Output != filepath.Join(tempDir, "env-out.tsv") {
		t.Fatalf("expected output from env, got %q", cfg.Paths.Output)
	}

	configPath := filepath.Join(tempDir, "explicit.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\ninput = \"file-in.csv\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err = config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.Input != filepath.Join(tempDir, "file-in.csv") {
		t.Fatalf("expected file value to win over env, got %q", cfg.Paths.Input)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/catalog/songs.csv")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "catalog", "songs.csv") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "heavy_rock_keywords") {
		t.Fatalf("sample config missing keyword lists: %s", contents)
	}

	// The sample must load cleanly through the full pipeline.
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.OutputComma() != '\t' {
		t.Fatalf("unexpected sample output delimiter %q", cfg.OutputComma())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Input = "/tmp/in.csv"
	cfg.Paths.Output = "/tmp/out.tsv"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal encoded config: %v", err)
	}
	if decoded.Paths.Output != "/tmp/out.tsv" || decoded.Report.SampleHead != 15 {
		t.Fatalf("unexpected round trip: %+v", decoded)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "tab", want: '\t'},
		{in: "TAB", want: '\t'},
		{in: "\t", want: '\t'},
		{in: ",", want: ','},
		{in: "comma", want: ','},
		{in: "semicolon", want: ';'},
		{in: "pipe", want: '|'},
		{in: "|", want: '|'},
		{in: "", wantErr: true},
		{in: ",,", wantErr: true},
		{in: "\"", wantErr: true},
		{in: "\n", wantErr: true},
	}
	for _, tt := range tests {
		got, err := config.ParseDelimiter(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseDelimiter(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDelimiter(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		cfg.Paths.Input = "/tmp/in.csv"
		cfg.Paths.Output = "/tmp/out.tsv"
		return cfg
	}

	if cfg := valid(); cfg.Validate() != nil {
		t.Fatalf("expected valid config, got %v", cfg.Validate())
	}

	cases := map[string]func(*config.Config){
		"same input and output": func(c *config.Config) { c.Paths.Output = c.Paths.Input },
		"missing output":        func(c *config.Config) { c.Paths.Output = "" },
		"replace without table": func(c *config.Config) { c.Artists.ReplaceBuiltin = true },
		"bad input delimiter":   func(c *config.Config) { c.Input.Delimiter = "ab" },
		"bad output delimiter":  func(c *config.Config) { c.Output.Delimiter = "\"" },
		"zero workers":          func(c *config.Config) { c.Classify.Workers = 0 },
		"too many workers":      func(c *config.Config) { c.Classify.Workers = 100000 },
		"unknown report format": func(c *config.Config) { c.Report.Format = "xml" },
		"negative sample head":  func(c *config.Config) { c.Report.SampleHead = -1 },
		"negative sample tail":  func(c *config.Config) { c.Report.SampleTail = -1 },
		"unknown color mode":    func(c *config.Config) { c.Report.Color = "rainbow" },
		"unknown log format":    func(c *config.Config) { c.Logging.Format = "xml" },
		"unknown log level":     func(c *config.Config) { c.Logging.Level = "trace" },
	}
	for name, mutate := range cases {
		cfg := valid()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
