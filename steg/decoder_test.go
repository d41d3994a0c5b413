package steg

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"pixveil/codec"
)

func TestDecodeRoundTripWithMarker( t *testing.T ) {
	verses := []byte("Midway upon the journey of our life I found myself within a forest dark")
	marker := []byte("--")
	payload := append( append( []byte{}, verses... ), marker... )

	for _, bits := range []int{ 1, 2, 4, 8 } {
		src := testBuffer( 32, 32 )
		opts := DefaultOptions()
		opts.BitsPerPixel = bits

		result, err := Encode( payload, opts, src )
		if err != nil {
			t.Fatalf("bits=%d: failed to encode: %v", bits, err)
		}

		opts.Marker = marker
		decoded, err := Decode( opts, result.Image() )
		if err != nil {
			t.Fatalf("bits=%d: failed to extract: %v", bits, err)
		}
		if !decoded.HitMarker() {
			t.Errorf("bits=%d: marker was not hit", bits)
		}
		// the marker stays in the raw data and nothing trails it
		if !bytes.Equal( decoded.Data(), payload ) {
			t.Errorf("bits=%d: steganography spoiled the data. %v != %v",
				bits, payload, decoded.Data())
		}
		if !bytes.Equal( decoded.DataTrimmed(), verses ) {
			t.Errorf("bits=%d: trimmed view kept the marker", bits)
		}
	}
}

func TestDecodeRoundTripPartialChunks( t *testing.T ) {
	// widths that do not divide 8 pay a final partial chunk per byte
	// but still round-trip exactly
	for _, bits := range []int{ 3, 5, 6, 7 } {
		src := testBuffer( 32, 32 )
		opts := DefaultOptions()
		opts.BitsPerPixel = bits

		payload := []byte("partial chunk payload")
		result, err := Encode( payload, opts, src )
		if err != nil {
			t.Fatalf("bits=%d: failed to encode: %v", bits, err)
		}
		decoded, err := Decode( opts, result.Image() )
		if err != nil {
			t.Fatalf("bits=%d: failed to extract: %v", bits, err)
		}
		if !bytes.Equal( decoded.Data()[:len(payload)], payload ) {
			t.Errorf("bits=%d: steganography spoiled the data. %v != %v",
				bits, payload, decoded.Data()[:len(payload)])
		}
	}
}

func TestDecodeRoundTripTraversalVariants( t *testing.T ) {
	payload := []byte("pp")
	variants := []Options{
		{ BitsPerPixel: 1, Channel: Red, PixelStride: 1 },
		{ BitsPerPixel: 2, Channel: Green, PixelStride: 3 },
		{ BitsPerPixel: 1, Channel: Blue, PixelStride: 1, PixelOffset: 5 },
		{ BitsPerPixel: 1, Channel: Blue, PixelStride: 2, Start: Start{ Position: Center } },
		{ BitsPerPixel: 2, Channel: Blue, PixelStride: 1, Start: AtPixel( 2, 2 ) },
		{ BitsPerPixel: 1, Channel: Blue, PixelStride: 1, Start: Start{ Position: BottomRight } },
	}
	for i, opts := range variants {
		src := testBuffer( 16, 16 )
		result, err := Encode( payload, opts, src )
		if err != nil {
			t.Fatalf("variant %d: failed to encode: %v", i, err)
		}
		decoded, err := Decode( opts, result.Image() )
		if err != nil {
			t.Fatalf("variant %d: failed to extract: %v", i, err)
		}
		if !bytes.Equal( decoded.Data()[:len(payload)], payload ) {
			t.Errorf("variant %d: steganography spoiled the data. %v != %v",
				i, payload, decoded.Data()[:len(payload)])
		}
	}
}

func TestDecodeNoMarkerRunsToExhaustion( t *testing.T ) {
	// 16 pixels at 1 bpp: exactly floor(16 / 8) = 2 bytes come back
	src := codec.NewPixelBuffer( 4, 4 )
	decoded, err := Decode( DefaultOptions(), src )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	if decoded.HitMarker() {
		t.Error("hit a marker that was never configured")
	}
	if len(decoded.Data()) != 2 {
		t.Errorf("decoded %d bytes, want 2", len(decoded.Data()))
	}
}

func TestDecodeMarkerAbsent( t *testing.T ) {
	src := testBuffer( 16, 16 )
	opts := DefaultOptions()
	result, err := Encode( []byte("no terminator here"), opts, src )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}
	opts.Marker = []byte("\x00\xff\x00\xff")
	decoded, err := Decode( opts, result.Image() )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	if decoded.HitMarker() {
		t.Error("reported a marker hit for an absent marker")
	}
	if len(decoded.Data()) != 32 {
		t.Errorf("decoded %d bytes, want all 32 the image holds", len(decoded.Data()))
	}
}

func TestDecodeStopsRightAfterMarker( t *testing.T ) {
	src := testBuffer( 32, 32 )
	payload := []byte("head--tail")
	result, err := Encode( payload, DefaultOptions(), src )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}
	opts := DefaultOptions()
	opts.Marker = []byte("--")
	decoded, err := Decode( opts, result.Image() )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	if !decoded.HitMarker() {
		t.Fatal("marker was not hit")
	}
	if !bytes.Equal( decoded.Data(), []byte("head--") ) {
		t.Errorf("decoding did not stop at the marker: %q", decoded.Data())
	}
}

func TestDecodedTextViews( t *testing.T ) {
	src := testBuffer( 16, 16 )
	result, err := Encode( []byte{ 0xff, 0xfe, 0xfd }, DefaultOptions(), src )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}
	opts := DefaultOptions()
	opts.Marker = []byte{ 0xfd }
	decoded, err := Decode( opts, result.Image() )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	if _, err := decoded.Text(); !errors.Is( err, ErrInvalidUTF8 ) {
		t.Errorf("Text() on invalid utf-8: got %v, want ErrInvalidUTF8", err)
	}
	raw := decoded.RawText()
	if raw == "" {
		t.Error("RawText() must always produce a view")
	}
	if !utf8.ValidString( raw ) {
		t.Errorf("RawText() must be valid utf-8, got %q", raw)
	}
	if !strings.Contains( raw, "�" ) {
		t.Errorf("invalid bytes must surface as U+FFFD, got %q", raw)
	}

	src = testBuffer( 16, 16 )
	result, err = Encode( []byte("héllo--"), DefaultOptions(), src )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}
	opts.Marker = []byte("--")
	decoded, err = Decode( opts, result.Image() )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	text, err := decoded.Text()
	if err != nil {
		t.Fatalf("Text() on valid utf-8 failed: %v", err)
	}
	if text != "héllo--" {
		t.Errorf("Text() = %q, want %q", text, "héllo--")
	}
}

func TestDecodeInvalidChannel( t *testing.T ) {
	opts := DefaultOptions()
	opts.Channel = Channel(-1)
	_, err := Decode( opts, codec.NewPixelBuffer( 4, 4 ) )
	if !errors.Is( err, ErrInvalidChannel ) {
		t.Errorf("got %v, want ErrInvalidChannel", err)
	}
}
