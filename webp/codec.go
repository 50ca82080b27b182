// Package webp adapts WebP compression to the codec contract,
// delegating to the pure-Go github.com/gen2brain/webp encoder and
// decoder. Quality of exactly 1 selects lossless mode.
package webp

import (
	"bytes"
	"io"

	webplib "github.com/gen2brain/webp"

	"github.com/cocosip/go-image-codec/codec"
	"github.com/cocosip/go-image-codec/raster"
)

const codecName = "webp"

var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec contract for WebP.
type Codec struct{}

// New creates a new WebP codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress encodes pixel data as WebP. The options must describe the
// raster: Width, Height, Channels, BitsPerSample and Interleaved.
// Quality in (0, 1) selects lossy quality; exactly 1 selects lossless
// mode; 0 selects the default lossy quality of 0.75.
func (c *Codec) Compress(data []byte, opts *codec.CodecOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.Wrap(codecName, codec.ErrEmptyInput)
	}
	if opts == nil {
		opts = codec.DefaultOptions()
	}
	if opts.BitsPerSample > 8 {
		return nil, codec.Wrap(codecName, codec.ErrInvalidParameter)
	}

	img, err := raster.FromBytes(data, opts)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}

	q := opts.Quality
	if q <= 0 {
		q = 0.75
	}
	wopts := webplib.Options{
		Lossless: q >= 1,
		Quality:  int(q * 100),
	}

	var buf bytes.Buffer
	if err := webplib.Encode(&buf, img, wopts); err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return buf.Bytes(), nil
}

// CompressChannels concatenates planar channel buffers and compresses
// them; Interleaved is forced off since the channels arrive separately.
func (c *Codec) CompressChannels(channels [][]byte, opts *codec.CodecOptions) ([]byte, error) {
	if opts != nil && opts.Interleaved {
		planar := *opts
		planar.Interleaved = false
		opts = &planar
	}
	return c.Compress(codec.ConcatChannels(channels), opts)
}

// Decompress decodes a WebP stream to flat sample bytes. Channels and
// Interleaved in opts control the output layout.
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

// DecompressStream decodes a WebP stream read from r.
func (c *Codec) DecompressStream(r io.Reader, opts *codec.CodecOptions) ([]byte, error) {
	img, err := webplib.Decode(r)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	var layout codec.CodecOptions
	if opts != nil {
		layout = *opts
	}
	out, err := raster.ToBytes(img, &layout)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	return out, nil
}

func init() {
	codec.Register(New())
}
