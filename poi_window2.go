package poi

import (
	"io"

	"github.com/ria-cpu/poi/internal/pkg/biff"
	"github.com/ria-cpu/poi/internal/pkg/options"
	"github.com/ria-cpu/poi/internal/pkg/record"
)

// Window2 is the BIFF8 WINDOW2 sheet window configuration record.
//
// Fields are set directly; flags are read and written through
// the Options word:
//
//	w.Options.SetFreezePanes(true)
//	w.Options.IsSet(poi.FlagSelected)
type Window2 = record.Window2T

// Options is the WINDOW2 options bit word.
type Options = options.Options

// Flag names one bit of the Options word.
type Flag = options.Flag

// RawRecord is a (sid, payload) pair as split from a BIFF substream.
type RawRecord = biff.RecordT

const (
	// WINDOW2 record identifier
	Sid = record.Sid

	// Encoded size of a WINDOW2 record, header included
	RecordSz = record.RecordSz

	// Canonical payload size
	PayloadSz = record.PayloadSz

	// Smallest payload accepted on decode
	MinPayloadSz = record.MinPayloadSz
)

const (
	FlagDisplayFormulas         = options.DisplayFormulas
	FlagDisplayGridlines        = options.DisplayGridlines
	FlagDisplayRowColHeadings   = options.DisplayRowColHeadings
	FlagFreezePanes             = options.FreezePanes
	FlagDisplayZeros            = options.DisplayZeros
	FlagDefaultHeader           = options.DefaultHeader
	FlagRightToLeft             = options.RightToLeft
	FlagDisplayOutlineSymbols   = options.DisplayOutlineSymbols
	FlagFreezePanesNoSplit      = options.FreezePanesNoSplit
	FlagSelected                = options.Selected
	FlagPaged                   = options.Paged
	FlagSavedInPageBreakPreview = options.SavedInPageBreakPreview
)

// NewWindow2 returns an empty record; every field and flag is zero.
func NewWindow2() *Window2 {
	return record.New()
}

// Decode the WINDOW2 payload of 'size' bytes at data[offset].
//
// The caller has already stripped the 4 byte record header and passes
// its sid and size.  Fails with ErrFormatMismatch if 'sid' is not Sid,
// and with ErrTruncatedRecord if the payload is shorter than the
// 10 byte legacy form or than the buffer allows.
func Decode(sid uint16, data []byte, offset, size int) (*Window2, error) {
	rec, err := record.Decode(sid, data, offset, size)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ReadWindow2 reads one full record, header included, from 'rd'.
func ReadWindow2(rd io.Reader) (*Window2, error) {
	raw, err := biff.ReadRecord(rd)
	if err != nil {
		return nil, err
	}
	return Decode(raw.Sid, raw.Data, 0, raw.Size())
}

// Flags returns every named option flag in bit order.
func Flags() []Flag {
	return options.All()
}

// FlagByName resolves a flag name such as "freezePanes".
func FlagByName(name string) (Flag, error) {
	return options.FlagByName(name)
}
