package builtins

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
)

const homePrefix = "~"

// expandHome replaces a leading "~" with the home directory.
// Any other target is returned untouched and home is never looked up.
func (s *service) expandHome(target string) (string, error) {
	if target != homePrefix && !strings.HasPrefix(target, homePrefix+"/") {
		return target, nil
	}
	home, err := s.env.HomeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", errors.New("home directory is empty")
	}
	return home + strings.TrimPrefix(target, homePrefix), nil
}

// chdirFailureText gives the user-facing reason a directory change failed.
func chdirFailureText(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, syscall.ENOTDIR):
		return "Not a directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	default:
		return osErrorText(err)
	}
}

// osErrorText strips the operation and path that *fs.PathError adds.
func osErrorText(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

func writeError(kind command.Kind, name string, err error) *shellerror.CommandError {
	return &shellerror.CommandError{
		Kind:   kind,
		Name:   name,
		Msg:    "failed to write output: " + err.Error(),
		Status: shellerror.Errno(err),
		Err:    err,
	}
}
