package chunk

import "testing"

func TestBytesRoundTrip(t *testing.T) {
	c := &Chunk{Type: TypeiCCP, Data: []byte("DVZIP__\x00\x00hello")}
	encoded := c.Bytes()

	decoded, next, err := ReadAt(encoded, 0)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if next != len(encoded) {
		t.Fatalf("next = %d, want %d", next, len(encoded))
	}
	if decoded.Type != TypeiCCP {
		t.Fatalf("Type = %v, want iCCP", decoded.Type)
	}
	if string(decoded.Data) != string(c.Data) {
		t.Fatalf("Data = %q, want %q", decoded.Data, c.Data)
	}
	if !VerifyCRC(decoded) {
		t.Fatalf("VerifyCRC failed on round-tripped chunk")
	}
}

func TestIsCritical(t *testing.T) {
	if !TypeIHDR.IsCritical() {
		t.Error("IHDR should be critical")
	}
	if TypeiCCP.IsCritical() {
		t.Error("iCCP should be ancillary")
	}
}

func TestReadAllSignatureRequired(t *testing.T) {
	_, err := ReadAll([]byte("not a png"))
	if err == nil {
		t.Fatal("expected error for missing signature")
	}
}
