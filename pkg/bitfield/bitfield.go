// Package bitfield names a group of bits inside an unsigned word.
//
// A Field never touches bits outside its mask.  Fields are plain values;
// declare them once at package level and share them freely.
package bitfield

// Word is any unsigned integer that can carry flags.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Field[W Word] struct {
	mask W
}

// New returns a field covering 'mask'.
func New[W Word](mask W) Field[W] {
	return Field[W]{mask: mask}
}

// Bit returns a single bit field at position 'pos' (0 is least significant).
func Bit[W Word](pos uint8) Field[W] {
	return Field[W]{mask: W(1) << pos}
}

func (f Field[W]) Mask() W { return f.mask }

// Returns true if any masked bit is set in 'word'.
func (f Field[W]) IsSet(word W) bool {
	return word&f.mask != 0
}

func (f Field[W]) Set(word W) W   { return word | f.mask }
func (f Field[W]) Clear(word W) W { return word &^ f.mask }

// Returns 'word' with the masked bits set when v is true, cleared otherwise.
func (f Field[W]) SetBoolean(word W, v bool) W {
	if v {
		return f.Set(word)
	}
	return f.Clear(word)
}

// Same as SetBoolean but updates the word in place.
func (f Field[W]) SetBooleanIn(word *W, v bool) {
	*word = f.SetBoolean(*word, v)
}
