package lzw

// Code space layout. Codes 0-255 are single-byte literals; two codes
// are reserved; dynamic entries start at 258.
const (
	clearCode = 256 // full dictionary reset
	eoiCode   = 257 // end of information
	firstCode = 258 // first dynamic code

	tableSize = 4096 // 12-bit code space

	// resetThreshold is the next-code value at which the encoder must
	// emit clearCode and both sides must reset. Keeping the last two
	// 12-bit codes unassigned preserves the decoder's one-entry lag
	// and the code == nextCode special case.
	resetThreshold = tableSize - 2

	minWidth = 9
	maxWidth = 12
)

// dictionary is a string-interning table bounded to the 12-bit code
// space: a flat code -> byte-string table plus the inverse
// (prefix, byte) -> code index used by the encoder's longest-match
// search.
type dictionary struct {
	entries  [tableSize][]byte
	codes    map[uint32]uint16
	nextCode uint16
}

func newDictionary() *dictionary {
	d := &dictionary{codes: make(map[uint32]uint16, tableSize)}
	for i := 0; i < 256; i++ {
		d.entries[i] = []byte{byte(i)}
	}
	d.nextCode = firstCode
	return d
}

// reset clears all dynamic entries and returns the next-assignable
// code to firstCode. The 256 single-byte entries are permanent.
func (d *dictionary) reset() {
	for i := firstCode; i < int(d.nextCode); i++ {
		d.entries[i] = nil
	}
	clear(d.codes)
	d.nextCode = firstCode
}

// lookup returns the code for the string formed by appending next to
// the string represented by prefix, if present.
func (d *dictionary) lookup(prefix uint16, next byte) (uint16, bool) {
	code, ok := d.codes[uint32(prefix)<<8|uint32(next)]
	return code, ok
}

// insert assigns the next code, post-increment, to the string
// prefix+next. Capacity checks are the caller's responsibility.
func (d *dictionary) insert(prefix uint16, next byte) uint16 {
	code := d.nextCode
	d.codes[uint32(prefix)<<8|uint32(next)] = code
	s := d.entries[prefix]
	entry := make([]byte, len(s)+1)
	copy(entry, s)
	entry[len(s)] = next
	d.entries[code] = entry
	d.nextCode++
	return code
}

// stringFor returns the literal bytes represented by code. Used only
// by the decoder; callers must not mutate the result.
func (d *dictionary) stringFor(code uint16) []byte {
	return d.entries[code]
}
