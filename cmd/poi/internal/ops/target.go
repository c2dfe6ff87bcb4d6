package ops

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

const (
	dstPerms = 0600
	dstFlags = os.O_CREATE | os.O_RDWR | os.O_TRUNC
)

var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

type targetT struct {
	src   *os.File
	srcSz int64
	cnt   *rdCnt    // raw bytes read from src, for progress
	rd    io.Reader // record stream, decompressed if needed
	lz4   bool
}

// Open 'name' for reading; empty or "-" is stdin.
//
// Record dumps are often archived as lz4 frames; those are
// detected by magic and decompressed on the fly.
func newSource(name string) (*targetT, error) {

	var (
		err   error
		srcFh *os.File
	)

	defer func() {
		if srcFh != nil {
			srcFh.Close()
		}
	}()

	srcSz := int64(-1)
	raw := io.Reader(os.Stdin)

	if name != "" && name != "-" {
		if srcFh, err = os.Open(name); err != nil {
			return nil, fmt.Errorf("cannot open source '%s': %w", name, err)
		}

		// Try to grab size of the source for the progress bar
		if fi, err := srcFh.Stat(); err == nil {
			srcSz = fi.Size()
		}
		raw = srcFh
	}

	var (
		cnt = &rdCnt{Reader: raw}
		br  = bufio.NewReader(cnt)
		tt  = &targetT{srcSz: srcSz, cnt: cnt, rd: br}
	)

	if peek, err := br.Peek(len(lz4Magic)); err == nil && bytes.Equal(peek, lz4Magic) {
		tt.rd = lz4.NewReader(br)
		tt.lz4 = true
	}

	tt.src = srcFh
	srcFh = nil
	return tt, nil
}

func (t *targetT) Name() string {
	if t.src == nil {
		return strStdin
	}
	return t.src.Name()
}

func (t *targetT) Close() error {
	if t.src == nil {
		return nil
	}
	err := t.src.Close()
	t.src = nil
	return err
}

func (t *targetT) Reader() io.Reader {
	return t.rd
}

// Bytes of the underlying source consumed so far.
func (t *targetT) Consumed() int64 {
	return int64(t.cnt.cnt)
}

// Open 'output' for writing; empty or "-" is stdout.
func newOutput(output string, forceOverwrite bool) (io.WriteCloser, error) {
	if output == "" || output == "-" {
		return nopCloser{os.Stdout}, nil
	}

	if fileExists(output) && !forceOverwrite {
		return nil, fmt.Errorf("output file '%s' already exists", output)
	}

	dstFh, err := os.OpenFile(output, dstFlags, dstPerms)
	if err != nil {
		return nil, fmt.Errorf("fail create output file '%s': %w", output, err)
	}
	return dstFh, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return (err == nil) || !errors.Is(err, os.ErrNotExist)
}

type rdCnt struct {
	cnt uint64
	io.Reader
}

func (r *rdCnt) Read(data []byte) (n int, err error) {
	n, err = r.Reader.Read(data)
	if n >= 0 {
		r.cnt += uint64(n)
	}
	return
}
