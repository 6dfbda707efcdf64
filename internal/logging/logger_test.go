package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lomtag/internal/config"
	"lomtag/internal/logging"
)

func TestNewFromConfigWritesToStderrAndFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "lomtag.log")

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("classified", logging.Int("songs", 3))
	logger.Debug("hidden at info level")

	if !strings.Contains(stderr.String(), "classified") {
		t.Fatalf("expected message on stderr, got %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "hidden at info level") {
		t.Fatalf("expected debug message to be filtered, got %q", stderr.String())
	}
	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "songs: 3") {
		t.Fatalf("expected attributes in log file, got %q", content)
	}
}

func TestNewFromConfigNil(t *testing.T) {
	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(nil, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("careful")
	if !strings.Contains(stderr.String(), "WARN") {
		t.Fatalf("expected WARN label, got %q", stderr.String())
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerLayout(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "tagger").With(logging.String(logging.FieldRunID, "abc"))
	logger.Warn("unknown year", logging.Int(logging.FieldLine, 7), logging.String("year", "19x5"))

	out := buf.String()
	for _, want := range []string{"WARN [tagger] line 7 – unknown year", "    - year: 19x5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "run_id") {
		t.Fatalf("expected run_id hidden at info level, got %q", out)
	}
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With(logging.String(logging.FieldRunID, "abc")).Error("write failed", logging.Error(errors.New("disk full")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line: %v (%q)", err, buf.String())
	}
	if payload["level"] != "error" {
		t.Fatalf("expected lower-case level, got %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
	if payload["run_id"] != "abc" || payload["error"] != "disk full" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 12) {
		t.Fatal("expected no-op logger to be disabled")
	}
	logging.NewComponentLogger(nil, "x").Info("dropped")
}
