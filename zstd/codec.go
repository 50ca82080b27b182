// Package zstd adapts Zstandard compression to the codec contract.
// The match-finding and entropy coding are delegated to
// github.com/klauspost/compress/zstd.
package zstd

import (
	"io"

	kzstd "github.com/klauspost/compress/zstd"

	"github.com/cocosip/go-image-codec/codec"
)

const codecName = "zstd"

var _ codec.Codec = (*Codec)(nil)

// encoder and decoder are reused across calls to avoid repeated
// initialization overhead; both are safe for concurrent use.
var (
	encoder *kzstd.Encoder
	decoder *kzstd.Decoder
)

func init() {
	var err error
	encoder, err = kzstd.NewWriter(nil, kzstd.WithEncoderLevel(kzstd.SpeedDefault))
	if err != nil {
		panic("zstd: encoder initialization failed: " + err.Error())
	}
	decoder, err = kzstd.NewReader(nil)
	if err != nil {
		panic("zstd: decoder initialization failed: " + err.Error())
	}

	codec.Register(New())
}

// Codec implements the codec.Codec contract for Zstandard.
type Codec struct{}

// New creates a new Zstandard codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress compresses data as a Zstandard frame. Options are accepted
// for contract symmetry; no field affects encoding.
func (c *Codec) Compress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	return encoder.EncodeAll(data, nil), nil
}

// CompressChannels concatenates channels into one logical stream and
// compresses it.
func (c *Codec) CompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	return c.Compress(codec.ConcatChannels(channels), opts)
}

// Decompress decompresses a Zstandard frame. The frame carries its
// own content size, so opts.MaxBytes is only a buffer-sizing hint.
func (c *Codec) Decompress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	var dst []byte
	if opts != nil && opts.MaxBytes > 0 {
		dst = make([]byte, 0, opts.MaxBytes)
	}
	out, err := decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return out, nil
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
