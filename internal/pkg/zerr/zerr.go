package zerr

import "fmt"

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrRejected        constError = "poi record rejected"
	ErrFormatMismatch  constError = "poi record type mismatch"
	ErrTruncatedRecord constError = "poi record truncated"
	ErrReservedBits    constError = "poi reserved option bits set"
	ErrUnknownFlag     constError = "poi unknown option flag"
	ErrRecordRead      constError = "poi fail read record"
	ErrRecordSize      constError = "poi record size overflow"
	ErrRecordWrite     constError = "poi fail write record"
)

func WrapRejected(err error) error {
	return fmt.Errorf("%w: %w", ErrRejected, err)
}
