package bytefield

import "testing"

func TestReadWriteU32BigEndian(t *testing.T) {
	buf := make([]byte, 8)
	if err := WriteU32(buf, 2, 0x01020304, true); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	got, err := ReadU32(buf, 2, true)
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0x01020304 {
		t.Fatalf("got %#x, want %#x", got, 0x01020304)
	}
}

func TestReadWriteU32LittleEndianMSBConvention(t *testing.T) {
	buf := make([]byte, 8)
	// Index 5 is the MSB position for a 4-byte LE field occupying buf[2:6].
	if err := WriteU32(buf, 5, 0x01020304, false); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	got, err := ReadU32(buf, 2, false)
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0x01020304 {
		t.Fatalf("got %#x, want %#x", got, 0x01020304)
	}
}

func TestReadU16OutOfBounds(t *testing.T) {
	buf := make([]byte, 1)
	if _, err := ReadU16(buf, 0, true); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestFindSignature(t *testing.T) {
	buf := []byte{0, 1, 2, 0x50, 0x4B, 0x03, 0x04, 9}
	idx := FindSignature(buf, 0, []byte{0x50, 0x4B, 0x03, 0x04})
	if idx != 3 {
		t.Fatalf("got %d, want 3", idx)
	}
	if FindSignature(buf, 4, []byte{0x50, 0x4B, 0x03, 0x04}) != -1 {
		t.Fatal("expected no match starting after the signature")
	}
}

func TestFindSignatureReverse(t *testing.T) {
	buf := []byte{0x50, 0x4B, 0x05, 0x06, 1, 2, 0x50, 0x4B, 0x05, 0x06}
	idx := FindSignatureReverse(buf, []byte{0x50, 0x4B, 0x05, 0x06})
	if idx != 6 {
		t.Fatalf("got %d, want 6 (the last occurrence)", idx)
	}
}
