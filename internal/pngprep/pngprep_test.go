package pngprep

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestPrepareIndexedDowngrade(t *testing.T) {
	const w, h = 100, 100
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	palette := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, palette[(x+y)%len(palette)])
		}
	}
	raw := encodeTestPNG(t, img)

	out, err := Prepare(raw)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if !bytes.Equal(out[:8], []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}) {
		t.Fatalf("missing PNG signature on output")
	}
	if out[25] != ColorTypeIndexed {
		t.Fatalf("color type = %d, want indexed (3)", out[25])
	}
}

func TestPrepareRejectsTooSmall(t *testing.T) {
	if _, err := Prepare([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for tiny input")
	}
}

func TestPrepareRejectsBadDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	raw := encodeTestPNG(t, img)
	if _, err := Prepare(raw); err == nil {
		t.Fatal("expected error for undersized truecolor image")
	}
}
