package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when encoding/decoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned when a codec is asked to process no data
	ErrEmptyInput = errors.New("no data to process")

	// ErrTruncatedStream is returned when a compressed stream ends before
	// its terminating code
	ErrTruncatedStream = errors.New("unexpected end of compressed stream")

	// ErrMalformedCode is returned when a decoded code falls outside the
	// dictionary's valid range
	ErrMalformedCode = errors.New("code outside dictionary range")

	// ErrCapacityExceeded is returned when a dictionary insert would pass
	// the table bound. A well-formed stream resets before this point; if
	// it surfaces the stream is defective.
	ErrCapacityExceeded = errors.New("dictionary capacity exceeded")

	// ErrUnsupported is returned by every compress or decompress call a
	// codec does not implement
	ErrUnsupported = errors.New("operation not supported by this codec")
)

// Error associates a failure with the codec that produced it while
// preserving the underlying kind for errors.Is / errors.As.
type Error struct {
	Codec string
	Err   error
}

func (e *Error) Error() string { return e.Codec + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with the codec name. A nil err stays nil.
func Wrap(codecName string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Codec: codecName, Err: err}
}
