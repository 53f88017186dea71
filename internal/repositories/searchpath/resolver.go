package searchpath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// pathVariable is the environment variable holding the search list.
const pathVariable = "PATH"

/*
PathResolver locates executables by walking the directories of the PATH
variable in order. It implements the ports.PathResolver interface.
*/
type PathResolver struct {
	env ports.Environment
}

// NewPathResolver creates a new PathResolver reading PATH through env.
// It panics if env is nil.
func NewPathResolver(env ports.Environment) ports.PathResolver {
	if env == nil {
		panic("environment cannot be nil")
	}
	return &PathResolver{env: env}
}

// Resolve implements the ports.PathResolver interface.
// The first directory holding an executable regular file named name wins.
// An unset PATH resolves nothing.
func (r *PathResolver) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	// A name with a separator is a path already; it is not searched for.
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		if isExecutableFile(name) {
			return toAbsolutePath(name), true
		}
		return "", false
	}

	searchList, ok := r.env.LookupEnv(pathVariable)
	if !ok {
		return "", false
	}

	for _, dir := range searchDirectories(searchList) {
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return toAbsolutePath(candidate), true
		}
	}
	return "", false
}
