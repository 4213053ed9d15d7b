package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tngsk/audiotools/internal/batch"
	"github.com/tngsk/audiotools/wave"
)

func main() {
	input := flag.String("input", "", "Input WAV file or directory")
	output := flag.String("output", "", "Optional output file for the report (default stdout)")
	recursive := flag.Bool("recursive", false, "Process directories recursively")
	flag.Parse()

	if *input == "" {
		die("-input is required")
	}

	paths, err := batch.Collect(*input, *recursive, []string{"wav"})
	if err != nil {
		die("failed to collect input files: %v", err)
	}
	if len(paths) == 0 {
		die("no WAV files found under %s", *input)
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			die("failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	for _, path := range paths {
		if err := printInfo(out, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
}

func printInfo(w io.Writer, path string) error {
	size := "unknown size"
	if st, err := os.Stat(path); err == nil {
		size = batch.FormatSize(uint64(st.Size()))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header, err := wave.ReadHeader(f)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "File: %s\nFormat: WAV\nSize: %s\n%s\n\n", path, size, header)
	return err
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
