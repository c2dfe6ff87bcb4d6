package options

import (
	"errors"
	"testing"

	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

func TestFlagBits(t *testing.T) {

	tests := map[string]struct {
		flag Flag
		mask Options
	}{
		"displayFormulas":         {DisplayFormulas, 0x0001},
		"displayGridlines":        {DisplayGridlines, 0x0002},
		"displayRowColHeadings":   {DisplayRowColHeadings, 0x0004},
		"freezePanes":             {FreezePanes, 0x0008},
		"displayZeros":            {DisplayZeros, 0x0010},
		"defaultHeader":           {DefaultHeader, 0x0020},
		"rightToLeft":             {RightToLeft, 0x0040},
		"displayOutlineSymbols":   {DisplayOutlineSymbols, 0x0080},
		"freezePanesNoSplit":      {FreezePanesNoSplit, 0x0100},
		"selected":                {Selected, 0x0200},
		"paged":                   {Paged, 0x0400},
		"savedInPageBreakPreview": {SavedInPageBreakPreview, 0x0800},
	}

	if len(tests) != NumFlags {
		t.Fatalf("Expected %d flags under test, got %d", NumFlags, len(tests))
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			switch {
			case tc.flag.Mask() != tc.mask:
				t.Errorf("Expected mask %#04x, got %#04x", tc.mask, tc.flag.Mask())
			case tc.flag.String() != name:
				t.Errorf("Expected name '%s', got '%s'", name, tc.flag.String())
			case !tc.mask.IsSet(tc.flag):
				t.Errorf("Expected flag set on its own mask")
			case Options(0).IsSet(tc.flag):
				t.Errorf("Expected flag clear on zero word")
			}

			f, err := FlagByName(name)
			if err != nil || f != tc.flag {
				t.Errorf("Expected lookup of '%s' to yield %v, got %v: %v", name, tc.flag, f, err)
			}
		})
	}
}

// Toggling one flag must leave every other flag and the reserved bits alone.
func TestFlagIsolation(t *testing.T) {

	seeds := []Options{0x0000, 0xFFFF, 0x06B6, 0xF000, 0x0FFF}

	for _, seed := range seeds {
		for _, flag := range All() {
			for _, v := range []bool{true, false} {
				o := seed
				o.Set(flag, v)

				if o.IsSet(flag) != v {
					t.Errorf("seed %#04x: %v expected %v", seed, flag, v)
				}

				for _, other := range All() {
					if other == flag {
						continue
					}
					if o.IsSet(other) != seed.IsSet(other) {
						t.Errorf("seed %#04x: setting %v disturbed %v", seed, flag, other)
					}
				}

				if o&ReservedMask != seed&ReservedMask {
					t.Errorf("seed %#04x: setting %v disturbed reserved bits", seed, flag)
				}
			}
		}
	}
}

// Named accessors must agree with the table driven ones.
func TestNamedAccessors(t *testing.T) {

	type accessorT struct {
		get func(Options) bool
		set func(*Options, bool)
	}

	accessors := map[Flag]accessorT{
		DisplayFormulas:         {Options.DisplayFormulas, (*Options).SetDisplayFormulas},
		DisplayGridlines:        {Options.DisplayGridlines, (*Options).SetDisplayGridlines},
		DisplayRowColHeadings:   {Options.DisplayRowColHeadings, (*Options).SetDisplayRowColHeadings},
		FreezePanes:             {Options.FreezePanes, (*Options).SetFreezePanes},
		DisplayZeros:            {Options.DisplayZeros, (*Options).SetDisplayZeros},
		DefaultHeader:           {Options.DefaultHeader, (*Options).SetDefaultHeader},
		RightToLeft:             {Options.RightToLeft, (*Options).SetRightToLeft},
		DisplayOutlineSymbols:   {Options.DisplayOutlineSymbols, (*Options).SetDisplayOutlineSymbols},
		FreezePanesNoSplit:      {Options.FreezePanesNoSplit, (*Options).SetFreezePanesNoSplit},
		Selected:                {Options.Selected, (*Options).SetSelected},
		Paged:                   {Options.Paged, (*Options).SetPaged},
		SavedInPageBreakPreview: {Options.SavedInPageBreakPreview, (*Options).SetSavedInPageBreakPreview},
	}

	for flag, acc := range accessors {
		var o Options
		acc.set(&o, true)
		switch {
		case o != flag.Mask():
			t.Errorf("%v: expected word %#04x, got %#04x", flag, flag.Mask(), o)
		case !acc.get(o):
			t.Errorf("%v: named getter disagrees", flag)
		}

		acc.set(&o, false)
		if o != 0 || acc.get(o) {
			t.Errorf("%v: expected clear, got %#04x", flag, o)
		}
	}
}

func TestReserved(t *testing.T) {
	o := Options(0xA5A5)

	switch {
	case !o.Reserved():
		t.Errorf("Expected reserved bits reported")
	case o.Canonical() != 0x05A5:
		t.Errorf("Expected canonical 0x05a5, got %#04x", o.Canonical())
	case o.Canonical().Reserved():
		t.Errorf("Expected canonical word without reserved bits")
	}
}

func TestUndefinedFlag(t *testing.T) {
	var (
		bad = Flag(NumFlags)
		o   = Options(0xFFFF)
	)

	if o.IsSet(bad) {
		t.Errorf("Expected undefined flag to read false")
	}

	o.Set(bad, false)
	if o != 0xFFFF {
		t.Errorf("Expected undefined flag set to be ignored, got %#04x", o)
	}

	if bad.String() != "undefined" {
		t.Errorf("Expected undefined name, got '%s'", bad.String())
	}

	if _, err := FlagByName("arabic"); !errors.Is(err, zerr.ErrUnknownFlag) {
		t.Errorf("Expected unknown flag error, got %v", err)
	}
}
