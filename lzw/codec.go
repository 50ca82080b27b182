// Package lzw implements the adaptive-dictionary LZW codec used for
// raster pixel data in TIFF-like containers: variable-width 9- to
// 12-bit codes packed MSB first, code 256 reserved for dictionary
// clear and code 257 for end of information, with the early-change
// width convention.
//
// Unlike compress/lzw, this variant emits a leading clear code and
// widens codes one index before the power-of-two boundary, which is
// what TIFF readers and writers expect.
package lzw

import (
	"io"

	"github.com/cocosip/go-image-codec/codec"
)

const codecName = "lzw"

var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec contract for LZW. All state is
// call-local; a single Codec value is safe for concurrent use.
type Codec struct{}

// New creates a new LZW codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress encodes data as a packed LZW code stream. Options are
// accepted for contract symmetry; no field affects encoding.
func (c *Codec) Compress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	out, err := compress(data)
	return out, codec.Wrap(codecName, err)
}

// CompressChannels concatenates channels into one logical stream and
// compresses it. Channel boundaries carry no meaning to LZW.
func (c *Codec) CompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Compress(codec.ConcatChannels(channels), opts)
}

// Decompress decodes a packed LZW code stream. opts.MaxBytes bounds
// the output for streams whose end-of-information code was dropped by
// the container; it is also used to size the output buffer.
func (c *Codec) Decompress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	maxBytes := 0
	if opts != nil {
		maxBytes = opts.MaxBytes
	}
	out, err := decompress(data, maxBytes)
	return out, codec.Wrap(codecName, err)
}

// DecompressChannels concatenates channels into one logical stream
// and decompresses it.
func (c *Codec) DecompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Decompress(codec.ConcatChannels(channels), opts)
}

// DecompressStream reads r to EOF and decompresses the result.
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
