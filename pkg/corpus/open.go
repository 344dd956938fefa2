package corpus

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Open returns a reader over the uncompressed contents of path.
//
// Exports are usually shipped as .tar.bz2, so the following are handled
// by file name: .gz, .bz2, .tar, .tgz, .tar.gz and .tar.bz2. For tar
// archives the first regular file is read.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(path)
	var r io.Reader = f
	closers := []io.Closer{f}

	switch {
	case strings.HasSuffix(name, ".gz"), strings.HasSuffix(name, ".tgz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		r = gz
		closers = append([]io.Closer{gz}, closers...)
	case strings.HasSuffix(name, ".bz2"):
		r = bzip2.NewReader(f)
	}

	if isTar(name) {
		tr, err := firstRegularFile(tar.NewReader(r))
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		r = tr
	}

	return &readCloser{Reader: r, closers: closers}, nil
}

func isTar(name string) bool {
	for _, ext := range []string{".tar", ".tgz", ".tar.gz", ".tar.bz2"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func firstRegularFile(tr *tar.Reader) (io.Reader, error) {
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("no regular file found in archive")
		}
		if err != nil {
			return nil, fmt.Errorf("error reading tar archive: %w", err)
		}
		if header.Typeflag == tar.TypeReg {
			return tr, nil
		}
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	return closeAll(rc.closers)
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
