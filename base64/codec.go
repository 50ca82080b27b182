// Package base64 adapts standard base64 encoding to the codec
// contract. It is not a compressor; it exists so containers that
// store pixel data as base64 text can be read and written through the
// same interface.
package base64

import (
	b64 "encoding/base64"
	"io"

	"github.com/cocosip/go-image-codec/codec"
)

const codecName = "base64"

var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec contract for base64.
type Codec struct{}

// New creates a new base64 codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress encodes data as standard base64. Options are accepted for
// contract symmetry; no field affects encoding.
func (c *Codec) Compress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	out := make([]byte, b64.StdEncoding.EncodedLen(len(data)))
	b64.StdEncoding.Encode(out, data)
	return out, nil
}

// CompressChannels concatenates channels into one logical stream and
// encodes it.
func (c *Codec) CompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Compress(codec.ConcatChannels(channels), opts)
}

// Decompress decodes standard base64 text back to bytes.
func (c *Codec) Decompress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	out := make([]byte, b64.StdEncoding.DecodedLen(len(data)))
	n, err := b64.StdEncoding.Decode(out, data)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return out[:n], nil
}

// DecompressChannels concatenates channels into one logical stream
// and decodes it.
func (c *Codec) DecompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Decompress(codec.ConcatChannels(channels), opts)
}

// DecompressStream reads r to EOF and decodes the result.
func (c *Codec) DecompressStream(r io.Reader, opts *codec.CodecOptions) ([]byte, error) {
	data, err := codec.ReadStream(r)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return c.Decompress(data, opts)
}

func init() {
	codec.Register(New())
}
