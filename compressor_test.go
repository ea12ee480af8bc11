package lz78

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

var goldenStreams = []struct {
	name       string
	data       []byte
	compressed []byte
	written    int // bytes written by Compress
	finalized  int // bytes written by Finalize
}{
	{
		name:       "one byte",
		data:       []byte("a"),
		compressed: []byte{0b0110_0001},
		finalized:  1,
	},
	{
		name:       "two equal bytes",
		data:       []byte("aa"),
		compressed: []byte{0b0110_0001, 0b1000_0000},
		finalized:  2,
	},
	{
		name:       "three equal bytes",
		data:       []byte("aaa"),
		compressed: []byte{0b0110_0001, 0b1011_0000, 0b1000_0000},
		finalized:  3,
	},
	{
		name:       "four equal bytes",
		data:       []byte("aaaa"),
		compressed: []byte{0b0110_0001, 0b1011_0000, 0b1010_0000},
		finalized:  3,
	},
	{
		name: "zero through six",
		data: []byte{0, 1, 2, 3, 4, 5, 6},
		compressed: []byte{
			0b00000000,
			0b0_0000000,
			0b1_00_00000,
			0b010_00_000,
			0b00011_000,
			0b00000100,
			0b000_00000,
			0b101_000_00,
			0b000110_00,
		},
		written:   8,
		finalized: 1,
	},
	{
		name:       "zero forty forty",
		data:       []byte{0, 40, 40},
		compressed: []byte{0b00000000, 0b0_0010100, 0b0_10_00000},
		finalized:  3,
	},
	{
		name:       "empty",
		data:       []byte{},
		compressed: []byte{},
	},
	{
		// 62 bits are pending when the 5-bit trailing code arrives, so it
		// pushes out 8 bytes before the final drain.
		name: "trailing code over 64 bits",
		data: []byte("or be more violet glass. "),
		compressed: []byte{
			0x6F, 0x39, 0x04, 0x03, 0x10, 0x65, 0x6D, 0xA5,
			0xCA, 0x90, 0x03, 0xB0, 0x34, 0x8B, 0x62, 0xBA,
			0x1B, 0x38, 0x36, 0x03, 0x08, 0x39, 0xC0, 0xB8,
			0x60,
		},
		written:   16,
		finalized: 1,
	},
}

func TestCompressGolden(t *testing.T) {
	for _, g := range goldenStreams {
		t.Run(g.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewCompressor(&out)
			n, err := c.Compress(g.data)
			if err != nil {
				t.Fatal(err)
			}
			if n != g.written {
				t.Errorf("Compress wrote %d bytes, want %d", n, g.written)
			}
			n, err = c.Finalize()
			if err != nil {
				t.Fatal(err)
			}
			if n != g.finalized {
				t.Errorf("Finalize wrote %d bytes, want %d", n, g.finalized)
			}
			if !bytes.Equal(out.Bytes(), g.compressed) {
				t.Fatalf("got %08b, want %08b", out.Bytes(), g.compressed)
			}
		})
	}
}

func TestCompressByteAtATime(t *testing.T) {
	for _, g := range goldenStreams {
		var out bytes.Buffer
		c := NewCompressor(&out)
		written := 0
		for i := range g.data {
			n, err := c.Compress(g.data[i : i+1])
			if err != nil {
				t.Fatal(err)
			}
			written += n
		}
		if written != g.written {
			t.Errorf("%s: Compress wrote %d bytes in total, want %d", g.name, written, g.written)
		}
		if _, err := c.Finalize(); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out.Bytes(), g.compressed) {
			t.Errorf("%s: got %08b, want %08b", g.name, out.Bytes(), g.compressed)
		}
	}
}

func TestCompressAfterFinalize(t *testing.T) {
	var out bytes.Buffer
	c := NewCompressor(&out)
	c.Compress([]byte("abc"))
	if _, err := c.Finalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compress([]byte("d")); err != ErrFinalized {
		t.Fatalf("Compress after Finalize returned %v, want ErrFinalized", err)
	}
	if _, err := c.Finalize(); err != ErrFinalized {
		t.Fatalf("second Finalize returned %v, want ErrFinalized", err)
	}
}

func TestCompressorReset(t *testing.T) {
	var first, second bytes.Buffer
	c := NewCompressor(&first)
	c.Compress([]byte("abababab"))
	c.Finalize()

	c.Reset(&second)
	c.Compress([]byte("abababab"))
	if _, err := c.Finalize(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("stream after Reset = %x, want %x", second.Bytes(), first.Bytes())
	}
}

// failingWriter accepts limit bytes, then fails.
type failingWriter struct {
	limit int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, w.err
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestCompressWriteError(t *testing.T) {
	errDisk := errors.New("disk full")
	c := NewCompressor(&failingWriter{limit: 4, err: errDisk})

	data := make([]byte, 1024)
	rand.New(rand.NewSource(1)).Read(data)
	if _, err := c.Compress(data); err != errDisk {
		t.Fatalf("Compress returned %v, want %v", err, errDisk)
	}
	if _, err := c.Compress(data); err != errDisk {
		t.Fatalf("second Compress returned %v, want %v", err, errDisk)
	}
	if _, err := c.Finalize(); err != errDisk {
		t.Fatalf("Finalize returned %v, want %v", err, errDisk)
	}
}

func TestCompressDictionaryFull(t *testing.T) {
	data := make([]byte, 1<<20)
	rand.New(rand.NewSource(2)).Read(data)

	c := NewCompressor(new(bytes.Buffer))
	_, err := c.Compress(data)
	if err != ErrDictionaryFull {
		t.Fatalf("Compress returned %v, want ErrDictionaryFull", err)
	}
	if c.maxCode != MaxCode {
		t.Fatalf("maxCode = %d when the dictionary filled up", c.maxCode)
	}
	if c.dict.len() != int(MaxCode)+1 {
		t.Fatalf("dictionary holds %d entries, want %d", c.dict.len(), int(MaxCode)+1)
	}
}

// pairsInput returns every byte value once, followed by the first n of the
// 65536 two-byte sequences. Each single byte and each pair becomes exactly
// one dictionary entry.
func pairsInput(n int) []byte {
	data := make([]byte, 0, 256+2*n)
	for b := 0; b < 256; b++ {
		data = append(data, byte(b))
	}
	for i := 0; i < n; i++ {
		data = append(data, byte(i>>8), byte(i))
	}
	return data
}

func TestDictionaryBoundary(t *testing.T) {
	fits := int(MaxCode) - 256
	data := pairsInput(fits)
	compressed, err := Encode(data)
	if err != nil {
		t.Fatalf("%d entries: %v", fits+256, err)
	}
	decompressed, err := Decode(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("decompressed output doesn't match")
	}

	if _, err := Encode(pairsInput(fits + 1)); err != ErrDictionaryFull {
		t.Fatalf("one entry too many: got %v, want ErrDictionaryFull", err)
	}
}
