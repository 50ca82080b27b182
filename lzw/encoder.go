package lzw

import "github.com/cocosip/go-image-codec/codec"

// compress encodes data as a TIFF-variant LZW code stream: a leading
// clear code, greedy longest-match against the dictionary, 9- to
// 12-bit codes widened one code before each power-of-two boundary
// (early change), a clear code whenever the table fills, and a
// trailing end-of-information code zero-padded to a byte.
func compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.ErrEmptyInput
	}

	w := newBitWriter(9*len(data)/8 + 2)
	dict := newDictionary()
	width := uint(minWidth)

	w.writeCode(clearCode, width)

	prefix := uint16(data[0])
	for _, b := range data[1:] {
		if code, ok := dict.lookup(prefix, b); ok {
			prefix = code
			continue
		}
		w.writeCode(prefix, width)
		dict.insert(prefix, b)
		switch {
		case dict.nextCode == resetThreshold:
			w.writeCode(clearCode, width)
			dict.reset()
			width = minWidth
		case dict.nextCode == 1<<width-1:
			// Early change: widen as soon as the next code to be
			// assigned needs the extra bit, not one code later.
			width++
		}
		prefix = uint16(b)
	}

	w.writeCode(prefix, width)
	// The decoder inserts one more entry when it processes this final
	// code, so its width rule can fire before it reads the terminator.
	// Mirror that here or the end-of-information code misaligns.
	if dict.nextCode == 1<<width-2 && width < maxWidth {
		width++
	}
	w.writeCode(eoiCode, width)
	return w.finish(), nil
}
