package poi

import (
	"errors"

	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

//  Forward declare internal errors

const (
	ErrRejected        = zerr.ErrRejected
	ErrFormatMismatch  = zerr.ErrFormatMismatch
	ErrTruncatedRecord = zerr.ErrTruncatedRecord
	ErrReservedBits    = zerr.ErrReservedBits
	ErrUnknownFlag     = zerr.ErrUnknownFlag
	ErrRecordRead      = zerr.ErrRecordRead
	ErrRecordSize      = zerr.ErrRecordSize
	ErrRecordWrite     = zerr.ErrRecordWrite
)

// Returns true if 'err' indicates that a record was refused by the codec.
// Rejections are deterministic; retrying the same bytes will fail again.
func Rejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
