package platform

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytget/ytpick/internal/errs"
)

// Path constants
const (
	HomePrefix        = "~"
	WriteProbePattern = ".ytpick-write-*"
	OSWindows         = "windows"
)

// lookupUser resolves "~name" prefixes
var lookupUser = user.Lookup

// ExpandPath trims the input and replaces a leading "~" or "~name" with the matching
// home directory. Unknown users leave the path untouched.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, HomePrefix) {
		return path, nil
	}

	name, rest := path[len(HomePrefix):], ""
	if i := strings.IndexFunc(name, isPathSeparator); i >= 0 {
		name, rest = name[:i], name[i+1:]
	}

	var homeDir string
	if name == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		homeDir = dir
	} else {
		u, err := lookupUser(name)
		if err != nil {
			return path, nil
		}
		homeDir = u.HomeDir
	}

	if rest == "" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, rest), nil
}

func isPathSeparator(r rune) bool {
	return r == '/' || (runtime.GOOS == OSWindows && r == '\\')
}

// ValidateDestination checks that dir exists, is a directory and accepts new files.
func ValidateDestination(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty path", errs.ErrInvalidPath)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidPath, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", errs.ErrInvalidPath, dir)
	}

	probe, err := os.CreateTemp(dir, WriteProbePattern)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errs.ErrPathNotWritable, dir, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return nil
}
