package shellconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/config"
)

// manageTestFile writes content to path, creating parent directories.
func manageTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestDefaultPath(t *testing.T) {
	want := filepath.Join("/home/user", ".tinysh", "config.yaml")
	if got := DefaultPath("/home/user"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestNewShellConfigAccessor(t *testing.T) {
	t.Run("empty path loads defaults", func(t *testing.T) {
		cfg, err := NewShellConfigAccessor("", "/home/user").Load()
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cfg, config.Config{}) {
			t.Errorf("Load() = %+v, want an empty Config", cfg)
		}
	})

	t.Run("path is kept", func(t *testing.T) {
		sca := NewShellConfigAccessor("/tmp/cfg.yaml", "")
		if sca.Path() != "/tmp/cfg.yaml" {
			t.Errorf("Path() = %q, want %q", sca.Path(), "/tmp/cfg.yaml")
		}
	})
}

func TestShellConfigAccessor_Load(t *testing.T) {
	prompt := "tiny> "
	verbose := true

	tests := []struct {
		name              string
		content           *string
		want              config.Config
		wantErrorContains string
	}{
		{
			name:    "missing file yields defaults",
			content: nil,
			want:    config.Config{},
		},
		{
			name:    "empty file yields defaults",
			content: new(string),
			want:    config.Config{},
		},
		{
			name:    "values are read",
			content: ptr("prompt: \"tiny> \"\nverbose: true\n"),
			want:    config.Config{Prompt: &prompt, Verbose: &verbose},
		},
		{
			name:              "unknown field names the file",
			content:           ptr("colour: true\n"),
			wantErrorContains: "~/.tinysh/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			path := DefaultPath(home)
			if tt.content != nil {
				manageTestFile(t, path, []byte(*tt.content))
			}

			got, err := NewShellConfigAccessor(path, home).Load()

			if tt.wantErrorContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Fatalf("Load() error = %v, want it to contain %q", err, tt.wantErrorContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShellConfigAccessor_Load_Unreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	path := filepath.Join(dir, "config.yaml")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	if _, err := NewShellConfigAccessor(path, "").Load(); err == nil {
		t.Error("Load() error = nil, want a read error")
	}
}

func ptr(s string) *string { return &s }
