package steg

import (
	"testing"
)

func TestMarkerScannerMatchesTrailingWindow( t *testing.T ) {
	s := newMarkerScanner( []byte("ab") )
	feed := []byte("xaxab")
	want := []bool{ false, false, false, false, true }
	for i, b := range feed {
		if got := s.push( b ); got != want[i] {
			t.Errorf("push %d (%q): got %v, want %v", i, b, got, want[i])
		}
	}
}

func TestMarkerScannerNeedsFullWindow( t *testing.T ) {
	s := newMarkerScanner( []byte("abc") )
	if s.push( 'a' ) || s.push( 'b' ) {
		t.Error("matched before the window was full")
	}
	if !s.push( 'c' ) {
		t.Error("did not match a full window equal to the marker")
	}
}

func TestMarkerScannerEvictsOldest( t *testing.T ) {
	s := newMarkerScanner( []byte("bc") )
	for _, b := range []byte("abc") {
		s.push( b )
	}
	// window is now "bc"; one more unrelated byte must not match
	if s.push( 'x' ) {
		t.Error("matched after the marker bytes were evicted")
	}
}

func TestMarkerScannerDisabledWhenEmpty( t *testing.T ) {
	s := newMarkerScanner( nil )
	for _, b := range []byte("anything at all") {
		if s.push( b ) {
			t.Fatal("an absent marker must never match")
		}
	}
}
