package record

import (
	"github.com/ria-cpu/poi/internal/pkg/options"
)

// BIFF8 WINDOW2 record identifier.
const Sid = uint16(0x023E)

const (
	HeaderSz  = 4  // sid + payload length
	PayloadSz = 18 // canonical payload
	RecordSz  = HeaderSz + PayloadSz

	// Legacy producers wrote shorter payloads.
	MinPayloadSz  = 10 // no zoom, no reserved
	ZoomPayloadSz = 14 // zoom, no reserved
)

// Payload offsets.
const (
	offOptions       = 0
	offTopRow        = 2
	offLeftCol       = 4
	offHeaderColor   = 6
	offPageBreakZoom = 10
	offNormalZoom    = 12
	offReserved      = 14
)

// Window2T is the per-sheet window configuration record.
//
// The zero value is an empty record ready to be populated.
type Window2T struct {
	Options options.Options

	// Scroll position of the window.
	TopRow  int16
	LeftCol int16

	// Palette index for gridlines and headings; ignored
	// when Options.DefaultHeader() is set.
	HeaderColor uint32

	// Zero means use the application default.
	PageBreakZoom uint16
	NormalZoom    uint16

	// Preserved verbatim, never interpreted.
	Reserved uint32
}

func New() *Window2T {
	return &Window2T{}
}

func (r *Window2T) Sid() uint16 { return Sid }
func (r *Window2T) Size() int   { return RecordSz }

func (r *Window2T) IsFlagSet(f options.Flag) bool  { return r.Options.IsSet(f) }
func (r *Window2T) SetFlag(f options.Flag, v bool) { r.Options.Set(f, v) }

// SetFlagByName updates the flag called 'name', e.g. "freezePanes".
func (r *Window2T) SetFlagByName(name string, v bool) error {
	f, err := options.FlagByName(name)
	if err != nil {
		return err
	}
	r.Options.Set(f, v)
	return nil
}

// IsFlagSetByName reads the flag called 'name'.
func (r *Window2T) IsFlagSetByName(name string) (bool, error) {
	f, err := options.FlagByName(name)
	if err != nil {
		return false, err
	}
	return r.Options.IsSet(f), nil
}

// Canonical returns a copy of the record as it reads back after encoding.
func (r *Window2T) Canonical() Window2T {
	c := *r
	c.Options = c.Options.Canonical()
	return c
}
