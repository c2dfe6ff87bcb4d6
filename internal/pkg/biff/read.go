package biff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

const (
	HeaderSz     = 4
	MaxPayloadSz = 8224 // BIFF8 limit; longer data spills into CONTINUE records
)

// RecordT is one (sid, payload) unit of a BIFF substream.
type RecordT struct {
	Sid    uint16
	Data   []byte
	Offset int64 // stream offset of the record header
}

func (r RecordT) Size() int { return len(r.Data) }

// Reader splits a BIFF substream into records.  CONTINUE
// records are returned as is; nothing is reassembled.
type Reader struct {
	rdr io.Reader
	off int64
	hdr [HeaderSz]byte
}

func NewReader(rdr io.Reader) *Reader {
	return &Reader{rdr: rdr}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// Next returns the next record.  A clean io.EOF is returned
// only when the stream ends on a record boundary.
func (r *Reader) Next() (rec RecordT, err error) {
	rec.Offset = r.off

	n, err := io.ReadFull(r.rdr, r.hdr[:])
	r.off += int64(n)

	if err != nil {
		// Only considered a read error if we got > 0 bytes.
		if err != io.EOF {
			err = errors.Join(zerr.ErrRecordRead, err)
		}
		return
	}

	var (
		sid = binary.LittleEndian.Uint16(r.hdr[0:2])
		sz  = int(binary.LittleEndian.Uint16(r.hdr[2:4]))
	)

	// Skip the payload so the stream stays on a record boundary.
	if sz > MaxPayloadSz {
		var skipped int64
		skipped, err = io.CopyN(io.Discard, r.rdr, int64(sz))
		r.off += skipped

		if err != nil {
			err = errors.Join(zerr.ErrRecordRead, err)
		} else {
			err = zerr.WrapRejected(fmt.Errorf("%w: sid %#04x size %d", zerr.ErrRecordSize, sid, sz))
		}
		return
	}

	data := make([]byte, sz)
	n, err = io.ReadFull(r.rdr, data)
	r.off += int64(n)

	if err != nil {
		err = errors.Join(zerr.ErrRecordRead, err)
		return
	}

	rec.Sid = sid
	rec.Data = data
	return
}

// ReadRecord reads a single record from 'rdr'.
func ReadRecord(rdr io.Reader) (RecordT, error) {
	return NewReader(rdr).Next()
}

// WriteRecord writes a record header followed by 'data'.
func WriteRecord(wr io.Writer, sid uint16, data []byte) (int, error) {
	if len(data) > MaxPayloadSz {
		return 0, zerr.WrapRejected(fmt.Errorf("%w: size %d", zerr.ErrRecordSize, len(data)))
	}

	buf := make([]byte, HeaderSz+len(data))
	binary.LittleEndian.PutUint16(buf[0:2], sid)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(data)))
	copy(buf[HeaderSz:], data)

	n, err := wr.Write(buf)
	if err != nil {
		err = errors.Join(zerr.ErrRecordWrite, err)
	}
	return n, err
}
