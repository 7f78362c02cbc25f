package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type arguments struct {
	outFile     string
	envFile     string
	inputs      []string
	workers     int
	minLength   int
	deduplicate bool
	verbose     bool
}

func (a *arguments) parse(fs *flag.FlagSet, args []string) error {

	// Assign variables
	fs.StringVar(&a.outFile, "out", "replay.jsonl.gz", "output filepath for .jsonl.gz reports")
	fs.StringVar(&a.envFile, "env", "", "environment file, otherwise an optional .env in the working directory")
	fs.IntVar(&a.workers, "workers", 0, "number of concurrent workers, otherwise WEIQI_WORKERS")
	fs.IntVar(&a.minLength, "minlength", 0, "minimum number of moves per game")
	fs.BoolVar(&a.deduplicate, "deduplicate", false, "skip games with duplicate move sequences")
	fs.BoolVar(&a.verbose, "verbose", false, "log every move at debug level")

	// Usage and parse
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: goreplay [options] [-out outfile] [file1.sgf archive2.tgz ... fileN]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.inputs = fs.Args()
	return nil
}

func (a *arguments) check() error {
	if a.workers < 0 {
		return errors.New("workers must not be negative")
	}
	if a.minLength < 0 {
		return errors.New("minlength must not be negative")
	}
	if len(a.inputs) == 0 {
		return errors.New("no sgf files or archives provided")
	}
	if a.outFile == "" {
		return errors.New("no output file provided")
	}
	return nil
}

// confirmOverwrite asks before clobbering an existing output file
func (a *arguments) confirmOverwrite(in io.Reader, out io.Writer) error {
	if _, err := os.Stat(a.outFile); err != nil {
		return nil
	}
	fmt.Fprint(out, "output file already exists, overwrite? (y/n) ")
	r := bufio.NewReader(in)
	overwrite, _ := r.ReadString('\n')
	if strings.TrimSpace(overwrite) != "y" {
		return errors.New("did not overwrite file")
	}
	return nil
}
