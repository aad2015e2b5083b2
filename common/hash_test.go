package common

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestBytesToHash(t *testing.T) {
	h := BytesToHash([]byte{1, 2, 3})
	want := make([]byte, HashLength)
	want[29], want[30], want[31] = 1, 2, 3
	if !bytes.Equal(h.Bytes(), want) {
		t.Errorf("short input not right-aligned: got %x, want %x", h.Bytes(), want)
	}

	full := make([]byte, HashLength)
	for i := range full {
		full[i] = byte(i)
	}
	if got := BytesToHash(full).Bytes(); !bytes.Equal(got, full) {
		t.Errorf("full-width input altered: got %x, want %x", got, full)
	}
}

func TestHexToHashRoundTrip(t *testing.T) {
	hex := "0x1111000000000000000000000000000000000000000000000000000000002222"
	h := HexToHash(hex)
	if h.Hex() != hex {
		t.Errorf("Hex() = %s, want %s", h.Hex(), hex)
	}
	if h2 := HexToHash(h.Hex()); h2 != h {
		t.Errorf("round trip changed hash: %s -> %s", h.Hex(), h2.Hex())
	}
}

func TestHashShortString(t *testing.T) {
	h := HexToHash("0x1111000000000000000000000000000000000000000000000000000000002222")
	if got := h.ShortString(); got != "1111..2222" {
		t.Errorf("ShortString() = %s, want 1111..2222", got)
	}
}

func TestHashIsZero(t *testing.T) {
	if !(Hash{}).IsZero() {
		t.Error("zero hash not reported as zero")
	}
	if HexToHash("0x01").IsZero() {
		t.Error("nonzero hash reported as zero")
	}
}

func TestHashJSON(t *testing.T) {
	h := HexToHash("0x1111000000000000000000000000000000000000000000000000000000002222")
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `"` + h.Hex() + `"`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var back Hash
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != h {
		t.Errorf("round trip changed hash: %s -> %s", h.Hex(), back.Hex())
	}
}

func TestUint64ToBytes(t *testing.T) {
	if got := Uint64ToBytes(1); !bytes.Equal(got, []byte{0, 0, 0, 0, 0, 0, 0, 1}) {
		t.Errorf("encoding not big-endian: got %x", got)
	}
	if got := Uint64ToBytes(0x0102030405060708); !bytes.Equal(got, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("encoding not big-endian: got %x", got)
	}
	for _, val := range []uint64{0, 1, 255, 256, 1 << 40, ^uint64(0)} {
		if got := BytesToUint64(Uint64ToBytes(val)); got != val {
			t.Errorf("round trip: got %d, want %d", got, val)
		}
	}
}

func TestBytesToUint64Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic on short input")
		}
	}()
	BytesToUint64([]byte{1, 2, 3})
}
