package record

import (
	"encoding/binary"
	"fmt"

	"github.com/ria-cpu/poi/internal/pkg/options"
	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

// Decode a WINDOW2 payload of 'size' bytes starting at data[offset].
//
// 'size' excludes the 4 byte record header.  Payloads of 10, 14 and 18+
// bytes are accepted; fields beyond a short payload are left at zero.
func Decode(sid uint16, data []byte, offset, size int) (rec Window2T, err error) {

	if err = validate(sid, data, offset, size); err != nil {
		return
	}

	p := data[offset : offset+size]

	rec.Options = options.Options(binary.LittleEndian.Uint16(p[offOptions:]))
	rec.TopRow = int16(binary.LittleEndian.Uint16(p[offTopRow:]))
	rec.LeftCol = int16(binary.LittleEndian.Uint16(p[offLeftCol:]))
	rec.HeaderColor = binary.LittleEndian.Uint32(p[offHeaderColor:])

	if size > MinPayloadSz {
		rec.PageBreakZoom = binary.LittleEndian.Uint16(p[offPageBreakZoom:])
		rec.NormalZoom = binary.LittleEndian.Uint16(p[offNormalZoom:])
	}

	if size > ZoomPayloadSz {
		rec.Reserved = binary.LittleEndian.Uint32(p[offReserved:])
	}

	return
}

// Sid is checked first; no offset is read on a mismatch.
func validate(sid uint16, data []byte, offset, size int) error {

	if sid != Sid {
		return zerr.WrapRejected(fmt.Errorf("%w: sid %#04x, want %#04x", zerr.ErrFormatMismatch, sid, Sid))
	}

	// Thresholds are strict; a size that crosses one must carry the field.
	need := MinPayloadSz
	switch {
	case size > ZoomPayloadSz:
		need = PayloadSz
	case size > MinPayloadSz:
		need = ZoomPayloadSz
	}

	switch {
	case size < need:
		return truncated("payload size %d, need %d", size, need)
	case offset < 0:
		return truncated("negative offset %d", offset)
	case len(data)-offset < size:
		return truncated("buffer holds %d bytes past offset %d, payload size %d", max(len(data)-offset, 0), offset, size)
	}

	return nil
}

func truncated(format string, args ...any) error {
	return zerr.WrapRejected(fmt.Errorf("%w: "+format, append([]any{zerr.ErrTruncatedRecord}, args...)...))
}

// UnmarshalBinary decodes a full record, header included.
func (r *Window2T) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSz {
		return truncated("record holds %d bytes, need %d byte header", len(data), HeaderSz)
	}

	var (
		sid  = binary.LittleEndian.Uint16(data[0:2])
		size = int(binary.LittleEndian.Uint16(data[2:4]))
	)

	rec, err := Decode(sid, data, HeaderSz, size)
	if err != nil {
		return err
	}

	*r = rec
	return nil
}
