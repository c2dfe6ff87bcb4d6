package record

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

// AppendBinary appends the canonical 22 byte record to 'dst'.
//
// Reserved option bits are always written as zero and the reserved
// trailer is always present, whatever form the record was decoded from.
func (r *Window2T) AppendBinary(dst []byte) ([]byte, error) {
	var buf [RecordSz]byte
	r.put(buf[:])
	return append(dst, buf[:]...), nil
}

// Bytes returns the canonical 22 byte record.
func (r *Window2T) Bytes() []byte {
	buf := make([]byte, RecordSz)
	r.put(buf)
	return buf
}

func (r *Window2T) MarshalBinary() ([]byte, error) {
	return r.Bytes(), nil
}

// WriteTo writes the canonical record to 'wr'.
func (r *Window2T) WriteTo(wr io.Writer) (int64, error) {
	var buf [RecordSz]byte
	r.put(buf[:])

	n, err := wr.Write(buf[:])
	if err != nil {
		err = errors.Join(zerr.ErrRecordWrite, err)
	}
	return int64(n), err
}

func (r *Window2T) put(buf []byte) {
	_ = buf[RecordSz-1]

	binary.LittleEndian.PutUint16(buf[0:2], Sid)
	binary.LittleEndian.PutUint16(buf[2:4], PayloadSz)

	p := buf[HeaderSz:]
	binary.LittleEndian.PutUint16(p[offOptions:], uint16(r.Options.Canonical()))
	binary.LittleEndian.PutUint16(p[offTopRow:], uint16(r.TopRow))
	binary.LittleEndian.PutUint16(p[offLeftCol:], uint16(r.LeftCol))
	binary.LittleEndian.PutUint32(p[offHeaderColor:], r.HeaderColor)
	binary.LittleEndian.PutUint16(p[offPageBreakZoom:], r.PageBreakZoom)
	binary.LittleEndian.PutUint16(p[offNormalZoom:], r.NormalZoom)
	binary.LittleEndian.PutUint32(p[offReserved:], r.Reserved)
}
