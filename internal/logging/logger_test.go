package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultConfig_Environment(t *testing.T) {
	cases := []struct {
		name   string
		env    map[string]string
		format string
		level  slog.Level
	}{
		{"local", map[string]string{}, "text", slog.LevelInfo},
		{"lambda", map[string]string{"AWS_LAMBDA_FUNCTION_NAME": "lettrix"}, "json", slog.LevelInfo},
		{"forced json", map[string]string{"LOG_FORMAT": "json"}, "json", slog.LevelInfo},
		{"forced text in lambda", map[string]string{"AWS_LAMBDA_FUNCTION_NAME": "lettrix", "LOG_FORMAT": "text"}, "text", slog.LevelInfo},
		{"unknown format ignored", map[string]string{"LOG_FORMAT": "xml"}, "text", slog.LevelInfo},
		{"debug", map[string]string{"DEBUG": "1"}, "text", slog.LevelDebug},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"AWS_LAMBDA_FUNCTION_NAME", "LOG_FORMAT", "DEBUG"} {
				t.Setenv(k, tc.env[k])
			}

			cfg := DefaultConfig()
			if cfg.Format != tc.format {
				t.Errorf("format = %s, want %s", cfg.Format, tc.format)
			}
			if cfg.Level != tc.level {
				t.Errorf("level = %s, want %s", cfg.Level, tc.level)
			}
		})
	}
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := WithComponent(New(Config{Level: slog.LevelInfo, Format: "json", Output: &buf}), "quota")

	logger.Debug("hidden")
	logger.Info("export refused", "user_id", "u1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["component"] != "quota" || rec["user_id"] != "u1" || rec["msg"] != "export refused" {
		t.Errorf("unexpected record: %v", rec)
	}
}
