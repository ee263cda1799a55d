package integration

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/document"
)

func runSearch(t *testing.T, args []string, env map[string]string) (string, error) {
	t.Helper()

	cfg, err := config.Resolve(args, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	app := application.New(cfg, zaptest.NewLogger(t), application.WithOutput(&out))
	err = app.Run()
	return out.String(), err
}

func TestSearchPipeline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	if err := os.WriteFile(path, []byte("Rust:\r\nsafe. fast. productive.\r\nPick three.\r\nTrust me.\r\n"), 0o600); err != nil {
		t.Fatalf("write poem: %v", err)
	}

	t.Run("case sensitive", func(t *testing.T) {
		out, err := runSearch(t, []string{"duct", path}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "safe. fast. productive.\n"; out != want {
			t.Fatalf("expected %q, got %q", want, out)
		}
	})

	t.Run("case insensitive via environment", func(t *testing.T) {
		out, err := runSearch(t, []string{"rUsT", path}, map[string]string{config.IgnoreCaseEnv: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "Rust:\nTrust me.\n"; out != want {
			t.Fatalf("expected %q, got %q", want, out)
		}
	})

	t.Run("case insensitive via settings file", func(t *testing.T) {
		settings := filepath.Join(dir, "minigrep.yaml")
		if err := os.WriteFile(settings, []byte("ignore_case: true\n"), 0o600); err != nil {
			t.Fatalf("write settings: %v", err)
		}
		out, err := runSearch(t, []string{"PICK", path}, map[string]string{config.ConfigFileEnv: settings})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "Pick three.\n"; out != want {
			t.Fatalf("expected %q, got %q", want, out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		out, err := runSearch(t, []string{"duct", filepath.Join(dir, "absent.txt")}, nil)
		if !errors.Is(err, document.ErrIO) {
			t.Fatalf("expected ErrIO, got %v", err)
		}
		if out != "" {
			t.Fatalf("expected no output, got %q", out)
		}
	})

	t.Run("missing arguments", func(t *testing.T) {
		if _, err := runSearch(t, nil, nil); !errors.Is(err, config.ErrMissingQuery) {
			t.Fatalf("expected ErrMissingQuery, got %v", err)
		}
		if _, err := runSearch(t, []string{"duct"}, nil); !errors.Is(err, config.ErrMissingFilePath) {
			t.Fatalf("expected ErrMissingFilePath, got %v", err)
		}
	})
}
