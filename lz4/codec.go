// Package lz4 adapts LZ4 compression to the codec contract. The
// match-finding is delegated to github.com/pierrec/lz4/v4. The frame
// format is used rather than raw blocks so that incompressible input
// still produces a self-describing stream.
package lz4

import (
	"bytes"
	"io"

	lz4lib "github.com/pierrec/lz4/v4"

	"github.com/cocosip/go-image-codec/codec"
)

const codecName = "lz4"

var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec contract for LZ4.
type Codec struct{}

// New creates a new LZ4 codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress compresses data as an LZ4 frame. Options are accepted for
// contract symmetry; no field affects encoding.
func (c *Codec) Compress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	var buf bytes.Buffer
	zw := lz4lib.NewWriter(&buf)
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

// Decompress decompresses an LZ4 frame. opts.MaxBytes, when set,
// sizes the output buffer up front.
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

// DecompressStream decompresses an LZ4 frame read from r.
func (c *Codec) DecompressStream(r io.Reader, opts *codec.CodecOptions) ([]byte, error) {
	zr := lz4lib.NewReader(r)
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
