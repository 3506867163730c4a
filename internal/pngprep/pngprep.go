// Package pngprep is the image preparer (component C): it validates the
// cover PNG's signature, size, color type and dimensions; downgrades
// over-colored truecolor images to indexed color when the image uses
// 256 or fewer unique colors; iteratively downscales by one pixel until the
// IHDR region carries no hostile byte; and prunes every chunk except
// IHDR/PLTE/tRNS/IDAT*/IEND.
package pngprep

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/CleasbyCode/pdvzip-go/internal/chunk"
	"github.com/CleasbyCode/pdvzip-go/internal/hostile"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

const (
	minFileSize = 87
	maxFileSize = 4 * 1024 * 1024

	colorTypeGrey    = 0
	ColorTypeRGB     = 2
	ColorTypeIndexed = 3
	colorTypeGreyA   = 4
	ColorTypeRGBA    = 6

	rgbMinDim     = 68
	rgbMaxDim     = 900
	indexedMinDim = 68
	indexedMaxDim = 4096
)

// Prepare runs the full image-preparer algorithm (spec.md §4.C) over raw
// cover-PNG bytes and returns a normalized buffer satisfying the invariant:
// no byte of the hostile set appears in positions 18..=32.
func Prepare(raw []byte) ([]byte, error) {
	if err := checkSizeAndTrailer(raw); err != nil {
		return nil, err
	}
	ihdr, err := readIHDR(raw)
	if err != nil {
		return nil, err
	}
	effectiveColorType := ihdr.ColorType
	if effectiveColorType == ColorTypeRGBA {
		effectiveColorType = ColorTypeRGB
	}
	if err := checkColorAndDimensions(effectiveColorType, ihdr.Width, ihdr.Height); err != nil {
		return nil, err
	}

	hadAlpha := ihdr.ColorType == ColorTypeRGBA

	if ihdr.ColorType == ColorTypeRGB || ihdr.ColorType == ColorTypeRGBA {
		downgraded, ok, err := downgradeToIndexed(raw)
		if err != nil {
			return nil, err
		}
		if ok {
			raw = downgraded
			hadAlpha = false // indexed output carries its own tRNS, not treated as RGBA downstream
		}
	}

	raw, err = sanitizeIHDRRegion(raw)
	if err != nil {
		return nil, err
	}

	return pruneChunks(raw, hadAlpha)
}

func checkSizeAndTrailer(raw []byte) error {
	if len(raw) < minFileSize {
		return pdverr.Newf(pdverr.BadImage, "cover image too small: %d bytes", len(raw))
	}
	if len(raw) > maxFileSize {
		return pdverr.Newf(pdverr.BadImage, "cover image too large: %d bytes", len(raw))
	}
	if !bytes.Equal(raw[:8], chunk.Signature[:]) {
		return pdverr.New(pdverr.BadImage, "missing PNG signature")
	}
	if !bytes.Equal(raw[len(raw)-12:], chunk.IENDBytes[:]) {
		return pdverr.New(pdverr.BadImage, "missing IEND trailer")
	}
	return nil
}

func readIHDR(raw []byte) (chunk.IHDR, error) {
	c, _, err := chunk.ReadAt(raw, 8)
	if err != nil {
		return chunk.IHDR{}, pdverr.Wrap(pdverr.BadImage, err, "reading IHDR")
	}
	if c.Type != chunk.TypeIHDR {
		return chunk.IHDR{}, pdverr.New(pdverr.BadImage, "first chunk is not IHDR")
	}
	return chunk.ParseIHDR(c)
}

func checkColorAndDimensions(colorType uint8, w, h uint32) error {
	switch colorType {
	case ColorTypeRGB:
		if w < rgbMinDim || w > rgbMaxDim || h < rgbMinDim || h > rgbMaxDim {
			return pdverr.Newf(pdverr.BadImage, "truecolor dimensions out of range: %dx%d", w, h)
		}
	case ColorTypeIndexed:
		if w < indexedMinDim || w > indexedMaxDim || h < indexedMinDim || h > indexedMaxDim {
			return pdverr.Newf(pdverr.BadImage, "indexed dimensions out of range: %dx%d", w, h)
		}
	default:
		return pdverr.Newf(pdverr.BadImage, "unsupported color type: %d", colorType)
	}
	return nil
}

// downgradeToIndexed decodes raw, counts unique RGBA colors, and — if there
// are 256 or fewer — re-encodes as an indexed PNG using the exact unique set
// as the palette. The bit depth is the one image/png picks from the palette
// size (1, 2, 4 or 8 bits for up to 2, 4, 16 or 256 entries), so palettes of
// 16 or fewer colors are not written at 8 bits. Hosting platforms that would otherwise
// transcode a low-color truecolor PNG to lossy JPEG tend to leave indexed
// PNGs alone, which is the reason for this step.
func downgradeToIndexed(raw []byte) ([]byte, bool, error) {
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false, pdverr.Wrap(pdverr.BadImage, err, "decoding cover image")
	}

	bounds := img.Bounds()
	seen := make(map[color.RGBA]int, 256)
	var palette color.Palette
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			if _, ok := seen[c]; !ok {
				if len(palette) >= 256 {
					return nil, false, nil
				}
				seen[c] = len(palette)
				palette = append(palette, c)
			}
		}
	}

	paletted := image.NewPaletted(bounds, palette)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			paletted.SetColorIndex(x-bounds.Min.X, y-bounds.Min.Y, uint8(seen[c]))
		}
	}

	var out bytes.Buffer
	if err := png.Encode(&out, paletted); err != nil {
		return nil, false, pdverr.Wrap(pdverr.BadImage, err, "re-encoding indexed image")
	}
	return out.Bytes(), true, nil
}

// sanitizeIHDRRegion inspects bytes 18..=32 (width, height, bit depth,
// color type, compression, filter, interlace, IHDR CRC) and, while any byte
// there is hostile, downscales the image by one pixel in each dimension and
// re-encodes. Nearest-neighbor is used for indexed images (to avoid
// introducing new palette entries), bilinear for truecolor. The state
// machine terminates in Clean (return) or Failed (BadImage) when a hostile
// byte remains and either dimension has already reached 1.
func sanitizeIHDRRegion(raw []byte) ([]byte, error) {
	for {
		if len(raw) < 33 {
			return nil, pdverr.New(pdverr.Invariant, "buffer too small for IHDR region")
		}
		if !hostile.Contains(raw[18:33]) {
			return raw, nil
		}

		ihdr, err := readIHDR(raw)
		if err != nil {
			return nil, err
		}
		if ihdr.Width <= 1 || ihdr.Height <= 1 {
			return nil, pdverr.New(pdverr.BadImage, "cannot clear hostile IHDR bytes: reached 1x1")
		}

		img, err := png.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, pdverr.Wrap(pdverr.BadImage, err, "decoding image for downscale")
		}

		newW := int(ihdr.Width) - 1
		newH := int(ihdr.Height) - 1
		dr := image.Rect(0, 0, newW, newH)

		var dst draw.Image
		var scaler draw.Interpolator
		if ihdr.ColorType == ColorTypeIndexed {
			p, ok := img.(*image.Paletted)
			if !ok {
				return nil, pdverr.New(pdverr.Invariant, "indexed IHDR but decoded image is not Paletted")
			}
			dst = image.NewPaletted(dr, p.Palette)
			scaler = draw.NearestNeighbor
		} else {
			dst = image.NewRGBA(dr)
			scaler = draw.BiLinear
		}
		scaler.Scale(dst, dr, img, img.Bounds(), draw.Src, nil)

		var out bytes.Buffer
		if err := png.Encode(&out, dst); err != nil {
			return nil, pdverr.Wrap(pdverr.BadImage, err, "re-encoding downscaled image")
		}
		raw = out.Bytes()
	}
}

// pruneChunks drops every ancillary chunk except tRNS, keeping: the first 33
// bytes (signature + IHDR), PLTE (indexed only), tRNS (indexed, or the image
// was originally color type 6), every IDAT in order, and a fresh IEND.
func pruneChunks(raw []byte, hadAlpha bool) ([]byte, error) {
	chunks, err := chunk.ReadAll(raw)
	if err != nil {
		return nil, pdverr.Wrap(pdverr.BadImage, err, "reading chunks for pruning")
	}

	ihdr, err := readIHDR(raw)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 33)
	copy(out, raw[:33])

	var foundPLTE bool
	for _, c := range chunks {
		switch c.Type {
		case chunk.TypeIHDR:
			continue
		case chunk.TypePLTE:
			if ihdr.ColorType == ColorTypeIndexed {
				out = append(out, c.Bytes()...)
				foundPLTE = true
			}
		case chunk.TypetRNS:
			if ihdr.ColorType == ColorTypeIndexed || hadAlpha {
				out = append(out, c.Bytes()...)
			}
		case chunk.TypeIDAT:
			out = append(out, c.Bytes()...)
		}
	}

	if ihdr.ColorType == ColorTypeIndexed && !foundPLTE {
		return nil, pdverr.New(pdverr.BadImage, "indexed image missing PLTE chunk")
	}

	out = append(out, chunk.IENDBytes[:]...)
	return out, nil
}
