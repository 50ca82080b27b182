// Package zlib adapts zlib (RFC 1950) compression to the codec
// contract, delegating to github.com/klauspost/compress/zlib.
package zlib

import (
	"bytes"
	"io"

	kzlib "github.com/klauspost/compress/zlib"

	"github.com/cocosip/go-image-codec/codec"
)

const codecName = "zlib"

var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec contract for zlib.
type Codec struct{}

// New creates a new zlib codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress compresses data as a zlib stream. Options are accepted for
// contract symmetry; no field affects encoding.
func (c *Codec) Compress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	var buf bytes.Buffer
	zw := kzlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	if err := zw.Close(); err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return buf.Bytes(), nil
}

// CompressChannels concatenates channels into one logical stream and
// compresses it.
func (c *Codec) CompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Compress(codec.ConcatChannels(channels), opts)
}

// Decompress decompresses a zlib stream. The stream self-terminates,
// so opts.MaxBytes is only a buffer-sizing hint.
func (c *Codec) Decompress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	return c.DecompressStream(bytes.NewReader(data), opts)
}

// DecompressChannels concatenates channels into one logical stream
// and decompresses it.
func (c *Codec) DecompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Decompress(codec.ConcatChannels(channels), opts)
}

// DecompressStream decompresses a zlib stream read from r.
func (c *Codec) DecompressStream(r io.Reader, opts *codec.CodecOptions) ([]byte, error) {
	zr, err := kzlib.NewReader(r)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	defer zr.Close()

	var out bytes.Buffer
	if opts != nil && opts.MaxBytes > 0 {
		out.Grow(opts.MaxBytes)
	}
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return out.Bytes(), nil
}

func init() {
	codec.Register(New())
}
