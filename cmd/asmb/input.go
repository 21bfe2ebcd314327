package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readInput reads the named file, or the command's input when path is
// "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// eachInput runs fn over the named files, or over the command's input
// when no files are given.
func eachInput(cc *cli.Context, args []string, fn func(path string, d []byte) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		d, err := readInput(cc, path)
		if err != nil {
			return err
		}
		if err := fn(path, d); err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
	}
	return nil
}
