package lzw

import "github.com/cocosip/go-image-codec/codec"

// bitWriter packs variable-width codes into a byte stream, most
// significant bit first. Complete bytes are flushed to the buffer as
// the accumulator fills.
type bitWriter struct {
	buf   []byte
	acc   uint32
	nbits uint
}

func newBitWriter(sizeHint int) *bitWriter {
	if sizeHint < 2 {
		sizeHint = 2
	}
	return &bitWriter{buf: make([]byte, 0, sizeHint)}
}

// writeCode appends width bits of code, MSB first. width must be in
// [1, 16] and code must fit in width bits.
func (w *bitWriter) writeCode(code uint16, width uint) {
	w.acc = w.acc<<width | uint32(code)
	w.nbits += width
	for w.nbits >= 8 {
		w.nbits -= 8
		w.buf = append(w.buf, byte(w.acc>>w.nbits))
	}
}

// finish zero-pads any partially filled trailing byte and returns the
// packed stream.
func (w *bitWriter) finish() []byte {
	if w.nbits > 0 {
		w.buf = append(w.buf, byte(w.acc<<(8-w.nbits)))
		w.acc = 0
		w.nbits = 0
	}
	return w.buf
}

// bitReader consumes variable-width codes from a byte stream, most
// significant bit first.
type bitReader struct {
	data  []byte
	pos   int
	acc   uint32
	nbits uint
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// readCode consumes exactly width bits. It fails with
// codec.ErrTruncatedStream when fewer bits remain than requested.
func (r *bitReader) readCode(width uint) (uint16, error) {
	for r.nbits < width {
		if r.pos >= len(r.data) {
			return 0, codec.ErrTruncatedStream
		}
		r.acc = r.acc<<8 | uint32(r.data[r.pos])
		r.pos++
		r.nbits += 8
	}
	r.nbits -= width
	return uint16(r.acc >> r.nbits & (1<<width - 1)), nil
}
