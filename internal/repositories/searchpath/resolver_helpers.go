package searchpath

import (
	"os"
	"path/filepath"
	"runtime"
)

// searchDirectories splits the search list with the platform separator,
// keeping the listed order and dropping empty entries.
func searchDirectories(searchList string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(searchList) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// isExecutableFile reports whether path is a regular file with an execute bit set.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		// No execute bits on Windows; existence is the best signal available.
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// toAbsolutePath converts path to an absolute one, falling back to path itself.
func toAbsolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
