package lzw

import "github.com/cocosip/go-image-codec/codec"

// decompress reconstructs the byte stream encoded by compress. The
// decoder rebuilds the encoder's dictionary symbol by symbol; its
// next-code counter trails the encoder's by exactly one entry, so the
// width grows at 1<<width - 2 where the encoder grows at 1<<width - 1.
//
// maxBytes bounds the output for streams whose terminating code was
// dropped by the container (common for TIFF strips); 0 means no bound.
func decompress(data []byte, maxBytes int) ([]byte, error) {
	if len(data) == 0 {
		return nil, codec.ErrEmptyInput
	}

	r := newBitReader(data)
	dict := newDictionary()
	width := uint(minWidth)

	var out []byte
	if maxBytes > 0 {
		out = make([]byte, 0, maxBytes)
	}

	// Code of the previously decoded string; -1 right after a clear
	// code, when the next code must be a literal.
	prev := -1

	for {
		code, err := r.readCode(width)
		if err != nil {
			if maxBytes > 0 && len(out) >= maxBytes {
				// The caller's byte count is satisfied; the stream
				// simply omitted the terminating code.
				return out[:maxBytes], nil
			}
			return nil, err
		}

		switch {
		case code == eoiCode:
			return out, nil

		case code == clearCode:
			dict.reset()
			width = minWidth
			prev = -1

		case prev < 0:
			if code > 255 {
				return nil, codec.ErrMalformedCode
			}
			out = append(out, byte(code))
			if maxBytes > 0 && len(out) >= maxBytes {
				return out[:maxBytes], nil
			}
			prev = int(code)

		default:
			var entry []byte
			switch {
			case code < dict.nextCode:
				entry = dict.stringFor(code)
			case code == dict.nextCode:
				// The code the encoder is about to create: its string
				// is the previous string extended by its own first
				// byte.
				s := dict.stringFor(uint16(prev))
				entry = make([]byte, len(s)+1)
				copy(entry, s)
				entry[len(s)] = s[0]
			default:
				return nil, codec.ErrMalformedCode
			}

			out = append(out, entry...)
			if maxBytes > 0 && len(out) >= maxBytes {
				return out[:maxBytes], nil
			}

			if dict.nextCode >= resetThreshold {
				// A well-formed stream carries a clear code before
				// this point.
				return nil, codec.ErrCapacityExceeded
			}
			dict.insert(uint16(prev), entry[0])
			if dict.nextCode == 1<<width-2 && width < maxWidth {
				width++
			}
			prev = int(code)
		}
	}
}
