package shellconfig

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/config"
	"gopkg.in/yaml.v3"
)

// decodeConfig parses one YAML document. Unknown keys are rejected so typos
// in the file surface instead of being ignored.
func decodeConfig(data []byte) (config.Config, error) {
	var cfg config.Config
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// A file with only comments or "---" holds no document.
		if errors.Is(err, io.EOF) {
			return config.Config{}, nil
		}
		return config.Config{}, err
	}
	return cfg, nil
}

// toUserFriendlyPath replaces a leading home directory with "~".
func toUserFriendlyPath(absPath, home string) string {
	if home == "" {
		return absPath
	}
	if absPath == home {
		return "~"
	}
	if strings.HasPrefix(absPath, home+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, home+string(os.PathSeparator)))
	}
	return absPath
}
