package options

import (
	"fmt"
	"strings"

	"github.com/ria-cpu/poi/internal/pkg/zerr"
	"github.com/ria-cpu/poi/pkg/bitfield"
)

// Options is the WINDOW2 options word.  Bits 0-11 are named flags,
// bits 12-15 are reserved.
type Options uint16

// Flag identifies one named bit of the options word.
type Flag uint8

const (
	DisplayFormulas Flag = iota
	DisplayGridlines
	DisplayRowColHeadings
	FreezePanes
	DisplayZeros
	DefaultHeader
	RightToLeft
	DisplayOutlineSymbols
	FreezePanesNoSplit
	Selected
	Paged
	SavedInPageBreakPreview

	NumFlags = int(SavedInPageBreakPreview) + 1
)

const (
	DefinedMask  Options = 0x0FFF
	ReservedMask Options = 0xF000
)

type descT struct {
	name  string // lookup key, also used on the command line
	label string // short label used by the diagnostic dump
	field bitfield.Field[Options]
}

// Indexed by Flag; bit position equals the index.
var flagTable = [NumFlags]descT{
	DisplayFormulas:         {"displayFormulas", "dispformulas", bitfield.Bit[Options](0)},
	DisplayGridlines:        {"displayGridlines", "dispgridlins", bitfield.Bit[Options](1)},
	DisplayRowColHeadings:   {"displayRowColHeadings", "disprcheadin", bitfield.Bit[Options](2)},
	FreezePanes:             {"freezePanes", "freezepanes", bitfield.Bit[Options](3)},
	DisplayZeros:            {"displayZeros", "displayzeros", bitfield.Bit[Options](4)},
	DefaultHeader:           {"defaultHeader", "defaultheadr", bitfield.Bit[Options](5)},
	RightToLeft:             {"rightToLeft", "righttoleft", bitfield.Bit[Options](6)},
	DisplayOutlineSymbols:   {"displayOutlineSymbols", "displayguts", bitfield.Bit[Options](7)},
	FreezePanesNoSplit:      {"freezePanesNoSplit", "frzpnsnosplt", bitfield.Bit[Options](8)},
	Selected:                {"selected", "selected", bitfield.Bit[Options](9)},
	Paged:                   {"paged", "paged", bitfield.Bit[Options](10)},
	SavedInPageBreakPreview: {"savedInPageBreakPreview", "svdinpgbrkpv", bitfield.Bit[Options](11)},
}

var flagByName = func() map[string]Flag {
	m := make(map[string]Flag, NumFlags)
	for i, d := range flagTable {
		m[strings.ToLower(d.name)] = Flag(i)
	}
	return m
}()

// All returns every named flag in bit order.
func All() []Flag {
	flags := make([]Flag, NumFlags)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

func (f Flag) Valid() bool    { return int(f) < NumFlags }
func (f Flag) String() string { return f.desc().name }
func (f Flag) Label() string  { return f.desc().label }
func (f Flag) Mask() Options  { return f.desc().field.Mask() }

func (f Flag) desc() (d descT) {
	if f.Valid() {
		d = flagTable[f]
	} else {
		d.name = "undefined"
		d.label = "undefined"
	}
	return
}

// FlagByName resolves a flag from its name, e.g. "freezePanes".
// Case is ignored.
func FlagByName(name string) (Flag, error) {
	f, ok := flagByName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", zerr.ErrUnknownFlag, name)
	}
	return f, nil
}

// IsSet reports the value of flag 'f'.  Undefined flags read as false.
func (o Options) IsSet(f Flag) bool {
	if !f.Valid() {
		return false
	}
	return flagTable[f].field.IsSet(o)
}

// Set updates flag 'f' in place.  Undefined flags are ignored.
func (o *Options) Set(f Flag, v bool) {
	if f.Valid() {
		flagTable[f].field.SetBooleanIn(o, v)
	}
}

func (o Options) Reserved() bool     { return o&ReservedMask != 0 }
func (o Options) Canonical() Options { return o & DefinedMask }

func (o Options) DisplayFormulas() bool         { return o.IsSet(DisplayFormulas) }
func (o Options) DisplayGridlines() bool        { return o.IsSet(DisplayGridlines) }
func (o Options) DisplayRowColHeadings() bool   { return o.IsSet(DisplayRowColHeadings) }
func (o Options) FreezePanes() bool             { return o.IsSet(FreezePanes) }
func (o Options) DisplayZeros() bool            { return o.IsSet(DisplayZeros) }
func (o Options) DefaultHeader() bool           { return o.IsSet(DefaultHeader) }
func (o Options) RightToLeft() bool             { return o.IsSet(RightToLeft) }
func (o Options) DisplayOutlineSymbols() bool   { return o.IsSet(DisplayOutlineSymbols) }
func (o Options) FreezePanesNoSplit() bool      { return o.IsSet(FreezePanesNoSplit) }
func (o Options) Selected() bool                { return o.IsSet(Selected) }
func (o Options) Paged() bool                   { return o.IsSet(Paged) }
func (o Options) SavedInPageBreakPreview() bool { return o.IsSet(SavedInPageBreakPreview) }

func (o *Options) SetDisplayFormulas(v bool)         { o.Set(DisplayFormulas, v) }
func (o *Options) SetDisplayGridlines(v bool)        { o.Set(DisplayGridlines, v) }
func (o *Options) SetDisplayRowColHeadings(v bool)   { o.Set(DisplayRowColHeadings, v) }
func (o *Options) SetFreezePanes(v bool)             { o.Set(FreezePanes, v) }
func (o *Options) SetDisplayZeros(v bool)            { o.Set(DisplayZeros, v) }
func (o *Options) SetDefaultHeader(v bool)           { o.Set(DefaultHeader, v) }
func (o *Options) SetRightToLeft(v bool)             { o.Set(RightToLeft, v) }
func (o *Options) SetDisplayOutlineSymbols(v bool)   { o.Set(DisplayOutlineSymbols, v) }
func (o *Options) SetFreezePanesNoSplit(v bool)      { o.Set(FreezePanesNoSplit, v) }
func (o *Options) SetSelected(v bool)                { o.Set(Selected, v) }
func (o *Options) SetPaged(v bool)                   { o.Set(Paged, v) }
func (o *Options) SetSavedInPageBreakPreview(v bool) { o.Set(SavedInPageBreakPreview, v) }
