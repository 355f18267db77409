// Package rounddiff reports sequence-cluster files from one clustering round that
// are absent from a later round. Files are matched by the cluster identifier at
// the end of their name (see clusterid) rather than by exact filename.
package rounddiff

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OutputName is the name of the report written into the round 1 directory.
const OutputName string = "only_in_R1.by_lastnum.csv"

// Config holds the two round directories to compare.
type Config struct {
	Round1Dir string
	Round2Dir string
}

// OutputPath is where Run writes the report.
func (c Config) OutputPath() string {
	return filepath.Join(c.Round1Dir, OutputName)
}

func (c Config) Validate() error {
	if c.Round1Dir == "" || c.Round2Dir == "" {
		return errors.New("both round directories must be set")
	}
	return nil
}

// Result summarizes a completed run.
type Result struct {
	Round1  int      // .fa files in round 1
	Round2  int      // .fa files in round 2
	Missing []string // round 1 files with no round 2 counterpart, sorted
	Output  string   // report path
}

// Run lists both rounds, writes the round 1 files missing from round 2 to
// cfg.OutputPath() and prints a two line summary to diag. Both directories are
// checked before the report is created, so a failed run leaves no output behind.
func Run(cfg Config, diag io.Writer) (Result, error) {
	var res Result
	if err := cfg.Validate(); err != nil {
		return res, err
	}

	r1, err := ListFa(cfg.Round1Dir)
	if err != nil {
		return res, err
	}
	r2, err := ListFa(cfg.Round2Dir)
	if err != nil {
		return res, err
	}

	res.Round1, res.Round2 = len(r1), len(r2)
	res.Missing = Missing(r1, r2)
	res.Output = cfg.OutputPath()

	WriteReport(res.Missing, res.Output)
	Summarize(diag, res)
	return res, nil
}

// ExpandHome replaces a leading "~" in path with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
