package bitfield

import (
	"testing"
)

func TestIsSet(t *testing.T) {

	tests := map[string]struct {
		mask uint16
		word uint16
		set  bool
	}{
		"bit0_set":       {mask: 0x0001, word: 0x0001, set: true},
		"bit0_clear":     {mask: 0x0001, word: 0xFFFE, set: false},
		"bit11_set":      {mask: 0x0800, word: 0x0800, set: true},
		"multi_one_of":   {mask: 0x0030, word: 0x0010, set: true},
		"multi_none_of":  {mask: 0x0030, word: 0xFFCF, set: false},
		"zero_word":      {mask: 0x8000, word: 0x0000, set: false},
		"high_bit_alone": {mask: 0x8000, word: 0x8000, set: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := New(tc.mask).IsSet(tc.word); got != tc.set {
				t.Errorf("Expected IsSet %v, got %v", tc.set, got)
			}
		})
	}
}

// SetBoolean must never disturb bits outside the mask.
func TestSetBooleanIsolation(t *testing.T) {

	words := []uint16{0x0000, 0xFFFF, 0xA5A5, 0x5A5A, 0x0F0F}

	for pos := uint8(0); pos < 16; pos++ {
		f := Bit[uint16](pos)
		for _, w := range words {
			on := f.SetBoolean(w, true)
			off := f.SetBoolean(w, false)

			switch {
			case !f.IsSet(on):
				t.Errorf("bit %d: expected set on %#04x", pos, on)
			case f.IsSet(off):
				t.Errorf("bit %d: expected clear on %#04x", pos, off)
			case on&^f.Mask() != w&^f.Mask():
				t.Errorf("bit %d: set disturbed other bits %#04x -> %#04x", pos, w, on)
			case off&^f.Mask() != w&^f.Mask():
				t.Errorf("bit %d: clear disturbed other bits %#04x -> %#04x", pos, w, off)
			}
		}
	}
}

func TestSetBooleanIn(t *testing.T) {
	var (
		f    = New[uint8](0x40)
		word = uint8(0x81)
	)

	f.SetBooleanIn(&word, true)
	if word != 0xC1 {
		t.Errorf("Expected 0xC1, got %#02x", word)
	}

	f.SetBooleanIn(&word, false)
	if word != 0x81 {
		t.Errorf("Expected 0x81, got %#02x", word)
	}
}

func TestNamedWordType(t *testing.T) {
	type opts uint16

	f := Bit[opts](3)
	if got := f.Set(0); got != 8 {
		t.Errorf("Expected 8, got %v", got)
	}
	if got := f.Clear(0xFFFF); got != 0xFFF7 {
		t.Errorf("Expected 0xFFF7, got %#04x", got)
	}
}
