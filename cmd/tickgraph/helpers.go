package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"
)

// fatal prints an error and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// readInput buffers the whole summary; parsing never starts on a partial document
func readInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if !utf8.Valid(data) {
		return "", errors.New("input is not valid UTF-8")
	}
	return string(data), nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "tickgraph: ", 0)
}
