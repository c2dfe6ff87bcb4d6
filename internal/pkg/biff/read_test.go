package biff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

// BOF, WINDOW2 (short form), EOF
var stream = []byte{
	0x09, 0x08, 0x04, 0x00, 0x00, 0x06, 0x10, 0x00,
	0x3e, 0x02, 0x0a, 0x00, 0x01, 0x00, 0x05, 0x00, 0x03, 0x00, 0xff, 0x00, 0xff, 0x00,
	0x0a, 0x00, 0x00, 0x00,
}

func TestReaderOK(t *testing.T) {

	var (
		rd   = NewReader(bytes.NewReader(stream))
		sids []uint16
		offs []int64
		szs  []int
	)

	for {
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Expected clean input: %v", err)
		}
		sids = append(sids, rec.Sid)
		offs = append(offs, rec.Offset)
		szs = append(szs, rec.Size())
	}

	switch {
	case len(sids) != 3:
		t.Fatalf("Expected 3 records, got %d", len(sids))
	case sids[0] != 0x0809 || sids[1] != 0x023e || sids[2] != 0x000a:
		t.Errorf("Fail sids: %x", sids)
	case offs[0] != 0 || offs[1] != 8 || offs[2] != 22:
		t.Errorf("Fail offsets: %v", offs)
	case szs[0] != 4 || szs[1] != 10 || szs[2] != 0:
		t.Errorf("Fail sizes: %v", szs)
	case rd.Offset() != int64(len(stream)):
		t.Errorf("Fail consumed: %v", rd.Offset())
	}
}

func TestReaderEmpty(t *testing.T) {
	if _, err := ReadRecord(bytes.NewReader(nil)); err != io.EOF {
		t.Errorf("Expected clean EOF, got %v", err)
	}
}

// Any cut inside a record is a read error, never a clean EOF.
func TestReaderShortRead(t *testing.T) {
	for i := 1; i < 22; i++ {
		if i == 8 {
			continue // record boundary
		}

		rd := NewReader(bytes.NewReader(stream[:i]))

		var err error
		for err == nil {
			_, err = rd.Next()
		}

		if !errors.Is(err, zerr.ErrRecordRead) {
			t.Errorf("Expected read error at %d: %v", i, err)
		}
	}
}

func TestReaderOversize(t *testing.T) {
	var (
		hdr = []byte{0x3e, 0x02, 0x21, 0x20} // 8225
		src = append(append(bytes.Clone(hdr), make([]byte, MaxPayloadSz+1)...), stream...)
		rd  = NewReader(bytes.NewReader(src))
	)

	_, err := rd.Next()
	switch {
	case !errors.Is(err, zerr.ErrRecordSize):
		t.Errorf("Expected size error, got %v", err)
	case !errors.Is(err, zerr.ErrRejected):
		t.Errorf("Expected rejected, got %v", err)
	case rd.Offset() != int64(HeaderSz+MaxPayloadSz+1):
		t.Errorf("Expected oversize payload skipped, offset %v", rd.Offset())
	}

	// The reader stays on a record boundary after the error.
	rec, err := rd.Next()
	switch {
	case err != nil:
		t.Fatalf("Expected clean record after oversize: %v", err)
	case rec.Sid != 0x0809 || rec.Offset != int64(HeaderSz+MaxPayloadSz+1):
		t.Errorf("Lost sync: sid %#04x offset %v", rec.Sid, rec.Offset)
	}

	// Payload cut short while skipping is a read error.
	if _, err := ReadRecord(bytes.NewReader(hdr)); !errors.Is(err, zerr.ErrRecordRead) {
		t.Errorf("Expected read error, got %v", err)
	}
}

func TestWriteRecord(t *testing.T) {
	var buf bytes.Buffer

	n, err := WriteRecord(&buf, 0x023e, stream[12:22])
	switch {
	case err != nil:
		t.Fatalf("Expected no error: %v", err)
	case n != 14:
		t.Errorf("Len mismatch: %v", n)
	case !bytes.Equal(buf.Bytes(), stream[8:22]):
		t.Errorf("Written buffer does not match: %x", buf.Bytes())
	}

	_, err = WriteRecord(io.Discard, 0x023e, make([]byte, MaxPayloadSz+1))
	switch {
	case !errors.Is(err, zerr.ErrRecordSize):
		t.Errorf("Expected size error, got %v", err)
	case !errors.Is(err, zerr.ErrRejected):
		t.Errorf("Expected rejected, got %v", err)
	}
}
