package shellconfig

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/config"
)

func stringp(s string) *string { return &s }
func boolp(b bool) *bool       { return &b }

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    config.Config
		wantErr bool
	}{
		{
			name:    "empty content",
			content: "",
			want:    config.Config{},
		},
		{
			name:    "whitespace only",
			content: "  \n\t\n",
			want:    config.Config{},
		},
		{
			name:    "comments only",
			content: "# nothing here\n---\n",
			want:    config.Config{},
		},
		{
			name:    "all fields",
			content: "prompt: \"tiny> \"\ncolor: false\nverbose: true\nalways_prompt: true\n",
			want: config.Config{
				Prompt:       stringp("tiny> "),
				Color:        boolp(false),
				Verbose:      boolp(true),
				AlwaysPrompt: boolp(true),
			},
		},
		{
			name:    "partial fields leave the rest unset",
			content: "verbose: true\n",
			want:    config.Config{Verbose: boolp(true)},
		},
		{
			name:    "empty prompt is kept as set",
			content: "prompt: \"\"\n",
			want:    config.Config{Prompt: stringp("")},
		},
		{
			name:    "unknown key is rejected",
			content: "promt: \"> \"\n",
			wantErr: true,
		},
		{
			name:    "wrong type is rejected",
			content: "color: maybe\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "prompt: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeConfig([]byte(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	tests := []struct {
		name    string
		absPath string
		home    string
		want    string
	}{
		{"path under home", "/home/user/.tinysh/config.yaml", "/home/user", "~/.tinysh/config.yaml"},
		{"home itself", "/home/user", "/home/user", "~"},
		{"path outside home", "/etc/tinysh.yaml", "/home/user", "/etc/tinysh.yaml"},
		{"shared prefix is not home", "/home/username/x", "/home/user", "/home/username/x"},
		{"no home known", "/home/user/x", "", "/home/user/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.absPath, tt.home); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q, %q) = %q, want %q", tt.absPath, tt.home, got, tt.want)
			}
		})
	}
}
