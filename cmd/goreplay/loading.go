package main

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// source is the text of one SGF file, named for reports and logs
type source struct {
	name string
	data []byte
}

func isArchive(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".tgz") || strings.HasSuffix(lower, ".tar.gz")
}

func isSGF(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".sgf"
}

// loader sends every SGF file named in inputs, looking inside .tgz archives
func loader(done <-chan struct{}, inputs []string, out chan<- source) error {
	for _, name := range inputs {
		select {
		case <-done:
			return nil
		default:
		}
		var err error
		if isArchive(name) {
			err = loadArchive(done, name, out)
		} else {
			err = loadFile(done, name, out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// send reports false once the run is canceled
func send(done <-chan struct{}, out chan<- source, s source) bool {
	select {
	case out <- s:
		return true
	case <-done:
		return false
	}
}

func loadFile(done <-chan struct{}, name string, out chan<- source) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	send(done, out, source{name: name, data: data})
	return nil
}

func loadArchive(done <-chan struct{}, name string, out chan<- source) error {

	// Open .tar.gz input file stream
	fin, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fin.Close()

	// Decompress input file stream
	gzipReader, err := gzip.NewReader(fin)
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", name, err)
	}
	defer gzipReader.Close()

	// Read from archive and send data for processing
	tarReader := tar.NewReader(gzipReader)
	archiveName := filepath.Base(name)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if header.Typeflag != tar.TypeReg || !isSGF(header.Name) {
			continue
		}
		data, err := io.ReadAll(tarReader)
		if err != nil {
			return fmt.Errorf("failed to read %s in %s: %w", header.Name, name, err)
		}
		if !send(done, out, source{name: archiveName + "/" + header.Name, data: data}) {
			return nil
		}
	}
}
