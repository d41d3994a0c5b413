package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

// noisyJpeg produces a carrier with plenty of nonzero coefficients.
func noisyJpeg( t *testing.T, width, height int ) []byte {
	t.Helper()
	img := image.NewRGBA( image.Rect( 0, 0, width, height ) )
	seed := uint32(0x12345678)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			seed = seed * 1664525 + 1013904223
			img.Set( x, y, color.RGBA{
				uint8(seed >> 8), uint8(seed >> 16), uint8(seed >> 24), 255,
			})
		}
	}
	buf := new(bytes.Buffer)
	if err := jpeg.Encode( buf, img, nil ); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestHideRevealJpeg( t *testing.T ) {
	carrier := noisyJpeg( t, 256, 256 )
	payload := []byte("hidden in the coefficient domain")

	capacity, err := JpegCapacity( carrier )
	if err != nil {
		t.Fatalf("Failed to compute capacity: %v", err)
	}
	if capacity < len(payload) {
		t.Skipf("carrier too small for payload ( %d < %d )", capacity, len(payload))
	}

	encoded, err := HideJpeg( carrier, payload )
	if err != nil {
		t.Fatalf("Failed to hide data: %v", err)
	}
	revealed, err := RevealJpeg( encoded )
	if err != nil {
		t.Fatalf("Failed to reveal data: %v", err)
	}
	if !bytes.Equal( revealed, payload ) {
		t.Errorf("Steganography spoiled the data. %v != %v", payload, revealed)
	}
}

func TestHideJpegRejectsOversizedPayload( t *testing.T ) {
	carrier := noisyJpeg( t, 16, 16 )
	capacity, err := JpegCapacity( carrier )
	if err != nil {
		t.Fatalf("Failed to compute capacity: %v", err)
	}
	payload := bytes.Repeat( []byte{ 0x41 }, capacity + 1 )
	if _, err := HideJpeg( carrier, payload ); err == nil {
		t.Error("oversized payload was accepted")
	}
}

func TestRevealJpegEmptyInput( t *testing.T ) {
	if _, err := RevealJpeg( nil ); err == nil {
		t.Error("empty input was accepted")
	}
}
