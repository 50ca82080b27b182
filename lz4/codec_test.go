package lz4

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/cocosip/go-image-codec/codec"
)

func TestRoundTrip(t *testing.T) {
	c := New()
	tests := []struct {
		name string
		data []byte
	}{
		{"single byte", []byte{0x42}},
		{"text", []byte("hello, lz4 world")},
		{"repetitive", bytes.Repeat([]byte{0x01, 0x02, 0x03}, 4000)},
		// Random data is incompressible; the frame format must still
		// roundtrip it.
		{"random", randomBytes(50000, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, err := c.Compress(tt.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			opts := codec.DefaultOptions()
			opts.MaxBytes = len(tt.data)
			got, err := c.Decompress(comp, opts)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("roundtrip mismatch: got %d bytes, want %d", len(got), len(tt.data))
			}
		})
	}
}

func TestCompressProducesFrameMagic(t *testing.T) {
	c := New()
	comp, err := c.Compress([]byte("frame check"), nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	magic := []byte{0x04, 0x22, 0x4d, 0x18}
	if len(comp) < 4 || !bytes.Equal(comp[:4], magic) {
		t.Errorf("output does not start with LZ4 frame magic: % x", comp[:min(4, len(comp))])
	}
}

func TestEmptyInput(t *testing.T) {
	c := New()
	if _, err := c.Compress(nil, nil); !errors.Is(err, codec.ErrEmptyInput) {
		t.Errorf("Compress(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := c.Decompress(nil, nil); !errors.Is(err, codec.ErrEmptyInput) {
		t.Errorf("Decompress(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestCompressChannelsMatchesConcat(t *testing.T) {
	c := New()
	channels := [][]byte{
		randomBytes(4096, 1),
		randomBytes(4096, 2),
		randomBytes(4096, 3),
	}

	fromChannels, err := c.CompressChannels(channels, nil)
	if err != nil {
		t.Fatalf("CompressChannels failed: %v", err)
	}
	fromConcat, err := c.Compress(codec.ConcatChannels(channels), nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(fromChannels, fromConcat) {
		t.Error("CompressChannels differs from Compress of concatenation")
	}
}

func TestDecompressStream(t *testing.T) {
	c := New()
	data := randomBytes(10000, 7)
	comp, err := c.Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	got, err := c.DecompressStream(bytes.NewReader(comp), nil)
	if err != nil {
		t.Fatalf("DecompressStream failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("DecompressStream mismatch")
	}
}

func TestDecompressGarbage(t *testing.T) {
	c := New()
	if _, err := c.Decompress([]byte("not an lz4 frame"), nil); err == nil {
		t.Error("Decompress of garbage succeeded")
	}
}

func randomBytes(n int, seed int64) []byte {
	data := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}
