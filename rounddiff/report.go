package rounddiff

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
)

// WriteReport writes one filename per line to output, overwriting any existing file.
func WriteReport(missing []string, output string) {
	var err error
	out := fileio.EasyCreate(output)
	defer cleanup(out)

	for i := range missing {
		_, err = fmt.Fprintln(out, missing[i])
		exception.PanicOnErr(err)
	}
}

func cleanup(out *fileio.EasyWriter) {
	err := out.Close()
	exception.PanicOnErr(err)
}

// Summarize prints the round sizes and the report destination to w.
// expected_missing is the plain difference in file counts, which only matches
// the number of reported files when no identifier is shared by several files.
func Summarize(w io.Writer, r Result) {
	fmt.Fprintf(w, "# R1(%s)=%d  R2(%s)=%d  expected_missing=%d\n", Ext, r.Round1, Ext, r.Round2, r.Round1-r.Round2)
	fmt.Fprintf(w, "# wrote %d lines -> %s\n", len(r.Missing), r.Output)
}
