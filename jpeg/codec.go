// Package jpeg adapts the platform JPEG codec (image/jpeg) to the
// codec contract. DCT and entropy coding are entirely the platform's;
// this package only reshapes sample bytes to and from images.
package jpeg

import (
	"bytes"
	gojpeg "image/jpeg"
	"io"

	"github.com/cocosip/go-image-codec/codec"
	"github.com/cocosip/go-image-codec/raster"
)

const codecName = "jpeg"

var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec contract for JPEG.
type Codec struct{}

// New creates a new JPEG codec.
func New() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// Compress encodes pixel data as JPEG. The options must describe the
// raster: Width, Height, Channels, BitsPerSample and Interleaved.
// Quality in (0, 1] selects the compression quality, clamped to
// [0.25, 1]; 0 selects the default of 0.75. Samples wider than 8 bits
// cannot be compressed with JPEG.
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

	var buf bytes.Buffer
	err = gojpeg.Encode(&buf, img, &gojpeg.Options{Quality: quality(opts.Quality)})
	if err != nil {
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

// Decompress decodes a JPEG stream to flat sample bytes. Channels,
// Interleaved and YCbCr in opts control the output layout; with YCbCr
// set, raw luma/chroma samples are emitted instead of RGB.
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

// DecompressStream decodes a JPEG stream read from r.
func (c *Codec) DecompressStream(r io.Reader, opts *codec.CodecOptions) ([]byte, error) {
	img, err := gojpeg.Decode(r)
	if err != nil {
		return nil, codec.Wrap(codecName, err)
	}
	// A zero Channels lets raster infer the count from the decoded
	// image.
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

// quality maps the contract's [0, 1] quality to image/jpeg's 1-100
// scale, defaulting to 0.75 and clamping to [0.25, 1] as the format
// layer expects.
func quality(q float64) int {
	if q <= 0 {
		q = 0.75
	}
	if q < 0.25 {
		q = 0.25
	}
	if q > 1 {
		q = 1
	}
	return int(q * 100)
}

func init() {
	codec.Register(New())
}
