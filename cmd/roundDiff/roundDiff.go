package main

import (
	"fmt"
	"github.com/dasnellings/roundDiff/rounddiff"
	"os"
)

// Edit these to point at the two clustering rounds. The report is written into round1Dir.
const round1Dir string = "~/data/fasta/prelim/round1/subtrees1/fastafromFiles"
const round2Dir string = "~/data/fasta/prelim/round2/subtrees2/fastafromFiles2"

func main() {
	r1, err := rounddiff.ExpandHome(round1Dir)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	r2, err := rounddiff.ExpandHome(round2Dir)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	_, err = rounddiff.Run(rounddiff.Config{Round1Dir: r1, Round2Dir: r2}, os.Stderr)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
