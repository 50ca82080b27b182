package codec

// CodecOptions carries per-call tuning values shared by every codec.
//
// Options are immutable for the duration of a call. Each codec reads
// only the fields it needs and ignores the rest; an irrelevant field
// never causes a failure.
type CodecOptions struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Channels is the number of color components per pixel
	// (1 = grayscale, 3 = RGB).
	Channels int

	// BitsPerSample is the number of bits per channel sample.
	BitsPerSample int

	// Interleaved indicates pixel-interleaved channel layout
	// (RGBRGB...) rather than planar (RRR...GGG...BBB...).
	Interleaved bool

	// LittleEndian indicates little-endian sample byte order for
	// samples wider than 8 bits.
	LittleEndian bool

	// Signed indicates signed sample values.
	Signed bool

	// MaxBytes is an upper bound on the decompressed output size.
	// It is required by codecs whose stream format carries no total
	// length and therefore cannot self-terminate.
	MaxBytes int

	// Quality is the lossy compression quality in [0, 1]. Used only
	// by lossy codecs; 0 selects the codec's default.
	Quality float64

	// YCbCr requests YCbCr color output from JPEG-like codecs
	// instead of RGB.
	YCbCr bool
}

// DefaultOptions returns the documented option defaults: a single
// 8-bit grayscale channel, planar big-endian unsigned samples, no
// output-size bound, and codec-default quality.
func DefaultOptions() *CodecOptions {
	return &CodecOptions{
		Channels:      1,
		BitsPerSample: 8,
	}
}
