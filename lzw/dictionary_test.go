package lzw

import (
	"bytes"
	"testing"
)

func TestDictionaryInitialState(t *testing.T) {
	d := newDictionary()

	if d.nextCode != firstCode {
		t.Errorf("nextCode = %d, want %d", d.nextCode, firstCode)
	}
	for i := 0; i < 256; i++ {
		if s := d.stringFor(uint16(i)); len(s) != 1 || s[0] != byte(i) {
			t.Fatalf("stringFor(%d) = % x, want single byte %#x", i, s, i)
		}
	}
}

func TestDictionaryInsertAssignsIncreasingCodes(t *testing.T) {
	d := newDictionary()

	if code := d.insert('a', 'b'); code != firstCode {
		t.Errorf("first insert = %d, want %d", code, firstCode)
	}
	if code := d.insert('b', 'c'); code != firstCode+1 {
		t.Errorf("second insert = %d, want %d", code, firstCode+1)
	}
	if got := d.stringFor(firstCode); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("stringFor(%d) = %q, want %q", firstCode, got, "ab")
	}
}

func TestDictionaryLookup(t *testing.T) {
	d := newDictionary()
	code := d.insert('a', 'b')

	got, ok := d.lookup('a', 'b')
	if !ok || got != code {
		t.Errorf("lookup('a','b') = %d, %v; want %d, true", got, ok, code)
	}
	if _, ok := d.lookup('a', 'c'); ok {
		t.Error("lookup('a','c') unexpectedly present")
	}

	// Multi-byte prefixes chain through assigned codes.
	longer := d.insert(code, 'c')
	if got := d.stringFor(longer); !bytes.Equal(got, []byte("abc")) {
		t.Errorf("stringFor(%d) = %q, want %q", longer, got, "abc")
	}
}

func TestDictionaryReset(t *testing.T) {
	d := newDictionary()
	d.insert('a', 'b')
	d.insert('b', 'c')
	d.reset()

	if d.nextCode != firstCode {
		t.Errorf("nextCode after reset = %d, want %d", d.nextCode, firstCode)
	}
	if _, ok := d.lookup('a', 'b'); ok {
		t.Error("lookup survives reset")
	}
	if s := d.stringFor(firstCode); s != nil {
		t.Errorf("stringFor(%d) after reset = % x, want nil", firstCode, s)
	}
	// Single-byte entries are permanent.
	if s := d.stringFor('a'); !bytes.Equal(s, []byte{'a'}) {
		t.Errorf("stringFor('a') after reset = % x", s)
	}
}
