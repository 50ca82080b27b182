package codec

import "io"

// Codec is the universal interface for all byte-stream codecs.
//
// Data is presented to a codec as a flat byte slice, optionally split
// into per-channel slices, together with a CodecOptions describing the
// raster the bytes came from. A codec ignores any option field that is
// irrelevant to it; passing options a codec does not need must never
// cause a failure.
//
// A codec implementing compression must also implement decompression
// and vice versa. A codec that cannot compress must fail every
// compress call with ErrUnsupported, never silently no-op.
type Codec interface {
	// Name returns the registry name of the codec (e.g. "lzw").
	Name() string

	// Compress compresses a block of data.
	Compress(data []byte, opts *CodecOptions) ([]byte, error)

	// CompressChannels compresses per-channel buffers as one logical
	// stream. Channel boundaries carry no meaning to byte-stream
	// codecs; the default behavior is concatenation.
	CompressChannels(channels [][]byte, opts *CodecOptions) ([]byte, error)

	// Decompress decompresses a block of data.
	Decompress(data []byte, opts *CodecOptions) ([]byte, error)

	// DecompressChannels decompresses per-channel buffers as one
	// logical stream, symmetric with CompressChannels.
	DecompressChannels(channels [][]byte, opts *CodecOptions) ([]byte, error)

	// DecompressStream reads compressed data from r until EOF and
	// decompresses it.
	DecompressStream(r io.Reader, opts *CodecOptions) ([]byte, error)
}

// ConcatChannels flattens per-channel buffers into one logical byte
// stream. It is the shared default used by CompressChannels and
// DecompressChannels implementations.
func ConcatChannels(channels [][]byte) []byte {
	total := 0
	for _, c := range channels {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range channels {
		out = append(out, c...)
	}
	return out
}

// ReadStream drains r completely. It is the shared default used by
// DecompressStream implementations, which decompress the drained
// bytes as a single block.
func ReadStream(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
