package binwire

import "errors"

var (
	// ErrBufferExhausted reports a checked-mode read or write that would
	// cross the instance's limit.
	ErrBufferExhausted = errors.New("binwire: unexpected end of buffer")

	// ErrInvalidTag reports an optional tag byte outside {0,1}.
	ErrInvalidTag = errors.New("binwire: invalid option tag")

	// ErrInvalidBool reports a boolean byte outside {0,1}.
	ErrInvalidBool = errors.New("binwire: invalid boolean")

	// ErrInvalidChar reports a char code point in the surrogate range or
	// above 0x10FFFF.
	ErrInvalidChar = errors.New("binwire: invalid unicode scalar")

	// ErrInvalidDuration reports a duration whose nanosecond remainder is
	// not below one second.
	ErrInvalidDuration = errors.New("binwire: invalid duration")

	// ErrSizeMismatch reports a nested record decode that consumed a
	// different byte count than its measured or declared size.
	ErrSizeMismatch = errors.New("binwire: record size mismatch")

	// ErrDecodeFailure wraps an error raised inside a user record's
	// DecodeBin.
	ErrDecodeFailure = errors.New("binwire: record decode failed")

	// ErrStringTooLong reports a fixed-string write whose value exceeds the
	// declared width.
	ErrStringTooLong = errors.New("binwire: string exceeds fixed width")
)
