package rounddiff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the suffix a file must carry to be part of a round.
const Ext string = ".fa"

// ErrNotDirectory is returned when a round directory is missing or is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ListFa returns the names of the regular .fa files directly inside dir, sorted
// by name. Subdirectories are not descended into. A missing dir is an error
// rather than an empty round so that a typo cannot produce a complete looking report.
func ListFa(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		// stat rather than e.Type() so symlinks to files are followed
		info, err = os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
