package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/viniciusth/suffixrank"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sufarr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fileName := fs.String("f", "", "Read the text from this file instead of stdin")
	alphabet := fs.Int("alphabet", suffixrank.DefaultAlphabetMax, "Largest symbol code accepted")
	compact := fs.Bool("compact", false, "Remap the symbols in use to a dense alphabet before sorting")
	inverse := fs.Bool("inverse", false, "Also print the inverse suffix array")
	lcp := fs.Bool("lcp", false, "Also print the LCP array")
	zero := fs.Bool("zero", false, "Print zero-based positions")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var text []byte
	var err error
	if *fileName != "" {
		text, err = os.ReadFile(*fileName)
	} else {
		text, err = io.ReadAll(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "sufarr: reading input: %v\n", err)
		return 1
	}
	// The last line terminator ends the text, it isn't part of it.
	text = bytes.TrimSuffix(text, []byte("\n"))

	builder := suffixrank.NewBuilder().WithAlphabetMax(*alphabet)
	if *compact {
		builder = builder.CompactAlphabet()
	}
	res, err := builder.Build(text)
	if err != nil {
		fmt.Fprintf(stderr, "sufarr: %v\n", err)
		return 1
	}

	offset := 1
	if *zero {
		offset = 0
	}
	w := bufio.NewWriter(stdout)
	writeLine(w, res.SuffixArray, offset)
	if *inverse {
		writeLine(w, res.InverseSuffixArray, offset)
	}
	if *lcp {
		writeLine(w, res.LCP(text), 0)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(stderr, "sufarr: writing output: %v\n", err)
		return 1
	}
	return 0
}

func writeLine(w *bufio.Writer, values []int, offset int) {
	for i, v := range values {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.Itoa(v + offset))
	}
	w.WriteByte('\n')
}
